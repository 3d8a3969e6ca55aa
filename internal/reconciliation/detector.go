package reconciliation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hedgeops/posrecon/internal/domain"
)

// missingPctSentinel is the variance percentage recorded for positions
// absent from one side. It is a fixed sentinel, not a computed ratio, and it
// deliberately lands in the classifier's top percentage band so every
// missing position alerts regardless of dollar size.
var missingPctSentinel = decimal.NewFromInt(100)

// Detector applies per-field tolerance checks to a match result and emits
// break records. It holds no state beyond the tolerances and is safe to
// reuse across runs.
type Detector struct {
	tol Tolerances
}

// NewDetector creates a detector with the given tolerances.
func NewDetector(tol Tolerances) *Detector {
	return &Detector{tol: tol}
}

// Detect walks the match result in its documented order — source-only
// positions, then target-only, then matched pairs with quantity, price and
// market-value checks per pair — and returns the breaks found. Break IDs are
// assigned later by the engine; the order returned here is the ID order.
func (d *Detector) Detect(m *MatchResult) []domain.Break {
	var breaks []domain.Break

	for _, pos := range m.SourceOnly {
		breaks = append(breaks, missingInTarget(pos))
	}
	for _, pos := range m.TargetOnly {
		breaks = append(breaks, missingInSource(pos))
	}
	for _, pair := range m.Matched {
		breaks = append(breaks, d.checkPair(pair)...)
	}

	return breaks
}

func missingInTarget(pos domain.Position) domain.Break {
	return domain.Break{
		Type:        domain.BreakMissingInTarget,
		Severity:    ClassifySeverity(pos.MarketValue, missingPctSentinel),
		Symbol:      pos.Symbol,
		AccountID:   pos.AccountID,
		SourceValue: pos.MarketValue,
		TargetValue: decimal.Zero,
		Variance:    pos.MarketValue,
		VariancePct: missingPctSentinel,
		Details:     "Position exists in source but not in target",
	}
}

func missingInSource(pos domain.Position) domain.Break {
	return domain.Break{
		Type:        domain.BreakMissingInSource,
		Severity:    ClassifySeverity(pos.MarketValue, missingPctSentinel),
		Symbol:      pos.Symbol,
		AccountID:   pos.AccountID,
		SourceValue: decimal.Zero,
		TargetValue: pos.MarketValue,
		Variance:    pos.MarketValue.Neg(),
		VariancePct: missingPctSentinel.Neg(),
		Details:     "Position exists in target but not in source",
	}
}

// checkPair runs the three field checks against one matched pair. Each check
// is independent, so a pair can produce up to three breaks.
func (d *Detector) checkPair(pair MatchedPair) []domain.Break {
	var breaks []domain.Break

	if b, ok := d.checkQuantity(pair); ok {
		breaks = append(breaks, b)
	}
	if b, ok := d.checkPrice(pair); ok {
		breaks = append(breaks, b)
	}
	if b, ok := d.checkMarketValue(pair); ok {
		breaks = append(breaks, b)
	}

	return breaks
}

func (d *Detector) checkQuantity(pair MatchedPair) (domain.Break, bool) {
	src, tgt := pair.Source, pair.Target

	qtyVar := decimal.NewFromInt(src.Quantity - tgt.Quantity)
	qtyVarPct := percentOf(qtyVar, decimal.NewFromInt(src.Quantity))

	if !qtyVarPct.Abs().GreaterThan(d.tol.QuantityPct) {
		return domain.Break{}, false
	}

	// Severity is driven by the dollar impact of the share difference, not
	// by the raw share count.
	dollarImpact := qtyVar.Mul(src.Price).Abs()

	return domain.Break{
		Type:        domain.BreakQuantityMismatch,
		Severity:    ClassifySeverity(dollarImpact, qtyVarPct),
		Symbol:      src.Symbol,
		AccountID:   src.AccountID,
		SourceValue: decimal.NewFromInt(src.Quantity),
		TargetValue: decimal.NewFromInt(tgt.Quantity),
		Variance:    qtyVar,
		VariancePct: qtyVarPct.Round(2),
		Details:     fmt.Sprintf("Quantity: source=%d vs target=%d", src.Quantity, tgt.Quantity),
	}, true
}

func (d *Detector) checkPrice(pair MatchedPair) (domain.Break, bool) {
	src, tgt := pair.Source, pair.Target

	priceVar := src.Price.Sub(tgt.Price)
	priceVarPct := percentOf(priceVar, src.Price)

	if !priceVarPct.Abs().GreaterThan(d.tol.PricePct) {
		return domain.Break{}, false
	}

	dollarImpact := priceVar.Mul(decimal.NewFromInt(src.Quantity)).Abs()

	return domain.Break{
		Type:        domain.BreakPriceMismatch,
		Severity:    ClassifySeverity(dollarImpact, priceVarPct),
		Symbol:      src.Symbol,
		AccountID:   src.AccountID,
		SourceValue: src.Price,
		TargetValue: tgt.Price,
		Variance:    priceVar.Round(2),
		VariancePct: priceVarPct.Round(2),
		Details:     fmt.Sprintf("Price: source=$%s vs target=$%s", src.Price.StringFixed(2), tgt.Price.StringFixed(2)),
	}, true
}

func (d *Detector) checkMarketValue(pair MatchedPair) (domain.Break, bool) {
	src, tgt := pair.Source, pair.Target

	mvVar := src.MarketValue.Sub(tgt.MarketValue)
	mvVarPct := percentOf(mvVar, src.MarketValue)

	// Conjunctive: the de-minimis floor suppresses small-dollar breaks even
	// when the percentage threshold is cleared.
	if !mvVarPct.Abs().GreaterThan(d.tol.MarketValuePct) || !mvVar.Abs().GreaterThan(d.tol.MinThreshold) {
		return domain.Break{}, false
	}

	return domain.Break{
		Type:        domain.BreakMarketValueMismatch,
		Severity:    ClassifySeverity(mvVar, mvVarPct),
		Symbol:      src.Symbol,
		AccountID:   src.AccountID,
		SourceValue: src.MarketValue,
		TargetValue: tgt.MarketValue,
		Variance:    mvVar.Round(2),
		VariancePct: mvVarPct.Round(2),
		Details: fmt.Sprintf("MV: source=$%s vs target=$%s",
			src.MarketValue.StringFixed(2), tgt.MarketValue.StringFixed(2)),
	}, true
}

// percentOf returns numerator/denominator as a percentage, short-circuiting
// to zero when the denominator is zero.
func percentOf(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator).Mul(decimal.NewFromInt(100))
}
