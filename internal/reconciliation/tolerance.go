package reconciliation

import "github.com/shopspring/decimal"

// Tolerances holds the per-field comparison thresholds for one
// reconciliation run. Percentage fields are expressed in percent (1.0 means
// 1%). MinThreshold is a currency de-minimis floor applied only to the
// market-value check, suppressing small-dollar breaks that clear the
// percentage threshold on noise alone. Construct once, never mutate.
type Tolerances struct {
	QuantityPct    decimal.Decimal
	PricePct       decimal.Decimal
	MarketValuePct decimal.Decimal
	MinThreshold   decimal.Decimal
}

// DefaultTolerances returns the standard operations desk thresholds:
// 1% quantity, 0.1% price, 2% market value with a $100 floor.
func DefaultTolerances() Tolerances {
	return Tolerances{
		QuantityPct:    decimal.NewFromFloat(1.0),
		PricePct:       decimal.NewFromFloat(0.1),
		MarketValuePct: decimal.NewFromFloat(2.0),
		MinThreshold:   decimal.NewFromInt(100),
	}
}
