package reconciliation

import (
	"github.com/shopspring/decimal"

	"github.com/hedgeops/posrecon/internal/domain"
)

// severityRule is one tier of the classification ladder. A break reaches the
// tier when either the absolute dollar variance or the absolute percentage
// variance exceeds the rule's threshold.
type severityRule struct {
	amount decimal.Decimal
	pct    decimal.Decimal
	tier   domain.Severity
}

// severityLadder is evaluated top-down; the first matching rule wins.
var severityLadder = []severityRule{
	{amount: decimal.NewFromInt(100000), pct: decimal.NewFromInt(10), tier: domain.SeverityCritical},
	{amount: decimal.NewFromInt(50000), pct: decimal.NewFromInt(5), tier: domain.SeverityHigh},
	{amount: decimal.NewFromInt(10000), pct: decimal.NewFromInt(2), tier: domain.SeverityMedium},
}

// ClassifySeverity maps a dollar variance and a percentage variance to a
// severity tier. Both inputs are taken by absolute value, so the caller's
// sign convention is irrelevant. Pure and total: every input classifies.
func ClassifySeverity(variance, variancePct decimal.Decimal) domain.Severity {
	absVar := variance.Abs()
	absPct := variancePct.Abs()

	for _, rule := range severityLadder {
		if absVar.GreaterThan(rule.amount) || absPct.GreaterThan(rule.pct) {
			return rule.tier
		}
	}
	return domain.SeverityLow
}
