package domain

import "github.com/shopspring/decimal"

// BreakType classifies what kind of discrepancy a break represents.
type BreakType string

const (
	BreakQuantityMismatch    BreakType = "Quantity Mismatch"
	BreakPriceMismatch       BreakType = "Price Mismatch"
	BreakMarketValueMismatch BreakType = "Market Value Mismatch"
	BreakMissingInSource     BreakType = "Missing in Source"
	BreakMissingInTarget     BreakType = "Missing in Target"
)

// Severity ranks how urgently a break needs attention.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Rank returns the sort order of a severity, 0 being most urgent. Unknown
// severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// Actionable reports whether a break at this severity should page someone.
func (s Severity) Actionable() bool {
	return s == SeverityCritical || s == SeverityHigh
}

// Break is one detected discrepancy between the two snapshots. Breaks are
// created once by the engine and never mutated afterwards.
//
// SourceValue and TargetValue hold the two compared numbers — quantities for
// quantity breaks, prices for price breaks, market values otherwise — with 0
// standing in for an absent side. Variance is always SourceValue−TargetValue
// (signed); VariancePct is the variance as a percentage of the source value,
// or a ±100 sentinel for missing positions.
type Break struct {
	BreakID     string          `json:"break_id"`
	Type        BreakType       `json:"break_type"`
	Severity    Severity        `json:"severity"`
	Symbol      string          `json:"symbol"`
	AccountID   string          `json:"account_id"`
	SourceValue decimal.Decimal `json:"source_value"`
	TargetValue decimal.Decimal `json:"target_value"`
	Variance    decimal.Decimal `json:"variance"`
	VariancePct decimal.Decimal `json:"variance_pct"`
	Details     string          `json:"details"`
}
