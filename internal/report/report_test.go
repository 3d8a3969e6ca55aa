package report

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hedgeops/posrecon/internal/domain"
	"github.com/hedgeops/posrecon/internal/reconciliation"
)

func brk(id string, bt domain.BreakType, sev domain.Severity, variance string) domain.Break {
	v := decimal.RequireFromString(variance)
	return domain.Break{
		BreakID:     id,
		Type:        bt,
		Severity:    sev,
		Symbol:      "AAPL",
		AccountID:   "ACC1",
		SourceValue: v,
		TargetValue: decimal.Zero,
		Variance:    v,
		VariancePct: decimal.NewFromInt(10),
		Details:     "test break",
	}
}

func TestCountBySeverity(t *testing.T) {
	breaks := []domain.Break{
		brk("BRK-0001", domain.BreakQuantityMismatch, domain.SeverityHigh, "100"),
		brk("BRK-0002", domain.BreakPriceMismatch, domain.SeverityHigh, "200"),
		brk("BRK-0003", domain.BreakMissingInTarget, domain.SeverityCritical, "300"),
	}

	counts := CountBySeverity(breaks)
	if counts[domain.SeverityHigh] != 2 || counts[domain.SeverityCritical] != 1 {
		t.Errorf("counts = %v, want 2 HIGH and 1 CRITICAL", counts)
	}
}

func TestTotalValueVariance(t *testing.T) {
	breaks := []domain.Break{
		// Share-count variance must not contribute.
		brk("BRK-0001", domain.BreakQuantityMismatch, domain.SeverityHigh, "600"),
		brk("BRK-0002", domain.BreakMarketValueMismatch, domain.SeverityMedium, "-50000"),
		brk("BRK-0003", domain.BreakMissingInTarget, domain.SeverityCritical, "1500"),
		brk("BRK-0004", domain.BreakMissingInSource, domain.SeverityCritical, "-2500"),
	}

	total := TotalValueVariance(breaks)
	if !total.Equal(decimal.NewFromInt(54000)) {
		t.Errorf("total = %s, want 54000", total)
	}
}

func TestSortForDisplay(t *testing.T) {
	breaks := []domain.Break{
		brk("BRK-0001", domain.BreakQuantityMismatch, domain.SeverityLow, "100"),
		brk("BRK-0002", domain.BreakPriceMismatch, domain.SeverityCritical, "-500"),
		brk("BRK-0003", domain.BreakMarketValueMismatch, domain.SeverityCritical, "9000"),
		brk("BRK-0004", domain.BreakMissingInTarget, domain.SeverityHigh, "300"),
	}

	sorted := SortForDisplay(breaks)

	wantIDs := []string{"BRK-0003", "BRK-0002", "BRK-0004", "BRK-0001"}
	for i, want := range wantIDs {
		if sorted[i].BreakID != want {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].BreakID, want)
		}
	}

	// Input order is untouched.
	if breaks[0].BreakID != "BRK-0001" {
		t.Error("SortForDisplay mutated its input")
	}
}

func TestRender(t *testing.T) {
	result := &reconciliation.Result{
		SourceCount:  20,
		TargetCount:  21,
		MatchedCount: 20,
		Breaks: []domain.Break{
			brk("BRK-0001", domain.BreakMissingInSource, domain.SeverityCritical, "-1562500"),
			brk("BRK-0002", domain.BreakQuantityMismatch, domain.SeverityHigh, "600"),
		},
	}

	out := Render(result, time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC))

	for _, want := range []string{
		"POSITION RECONCILIATION REPORT",
		"2024-01-10 09:30:00",
		"CRITICAL :   1",
		"Missing in Source",
		"BRK-0001",
		"END OF REPORT",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	for _, pattern := range []string{
		`Total Source Positions:\s+20`,
		`Total Target Positions:\s+21`,
		`Total Breaks:\s+2`,
	} {
		if !regexp.MustCompile(pattern).MatchString(out) {
			t.Errorf("report missing line matching %q", pattern)
		}
	}
}
