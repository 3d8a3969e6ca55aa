// Package report renders reconciliation results for human consumption. It
// consumes the engine's break list and never feeds back into it.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/hedgeops/posrecon/internal/domain"
	"github.com/hedgeops/posrecon/internal/reconciliation"
)

var severityOrder = []domain.Severity{
	domain.SeverityCritical,
	domain.SeverityHigh,
	domain.SeverityMedium,
	domain.SeverityLow,
}

// Render produces the full plain-text reconciliation report: executive
// summary, severity histogram, counts by type and the detailed break list
// sorted for display.
func Render(result *reconciliation.Result, now time.Time) string {
	var sb strings.Builder

	rule := strings.Repeat("=", 78)
	sb.WriteString(rule + "\n")
	sb.WriteString(center("POSITION RECONCILIATION REPORT", 78) + "\n")
	sb.WriteString(center(now.Format("2006-01-02 15:04:05"), 78) + "\n")
	sb.WriteString(rule + "\n\n")

	sb.WriteString("EXECUTIVE SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 17) + "\n")
	fmt.Fprintf(&sb, "Total Source Positions: %10d\n", result.SourceCount)
	fmt.Fprintf(&sb, "Total Target Positions: %10d\n", result.TargetCount)
	fmt.Fprintf(&sb, "Matched Positions:      %10d\n", result.MatchedCount)
	fmt.Fprintf(&sb, "Total Breaks:           %10d\n\n", len(result.Breaks))

	sb.WriteString("BREAKS BY SEVERITY\n")
	sb.WriteString(strings.Repeat("-", 18) + "\n")
	bySeverity := CountBySeverity(result.Breaks)
	for _, sev := range severityOrder {
		count := bySeverity[sev]
		bar := strings.Repeat("#", min(count*2, 30))
		fmt.Fprintf(&sb, "  %-8s : %3d %s\n", sev, count, bar)
	}
	sb.WriteString("\n")

	sb.WriteString("BREAKS BY TYPE\n")
	sb.WriteString(strings.Repeat("-", 14) + "\n")
	byType := CountByType(result.Breaks)
	for _, bt := range []domain.BreakType{
		domain.BreakQuantityMismatch,
		domain.BreakPriceMismatch,
		domain.BreakMarketValueMismatch,
		domain.BreakMissingInSource,
		domain.BreakMissingInTarget,
	} {
		if count := byType[bt]; count > 0 {
			fmt.Fprintf(&sb, "  %-25s : %3d\n", bt, count)
		}
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "TOTAL MARKET VALUE VARIANCE: $%s\n\n", TotalValueVariance(result.Breaks).StringFixed(2))

	sb.WriteString("DETAILED BREAK LIST\n")
	sb.WriteString(strings.Repeat("-", 19) + "\n")
	for _, b := range SortForDisplay(result.Breaks) {
		fmt.Fprintf(&sb, "\n[%-8s] %s  %s (%s)\n", b.Severity, b.BreakID, b.Symbol, b.AccountID)
		fmt.Fprintf(&sb, "  Type:     %s\n", b.Type)
		fmt.Fprintf(&sb, "  Source:   %s\n", b.SourceValue.StringFixed(2))
		fmt.Fprintf(&sb, "  Target:   %s\n", b.TargetValue.StringFixed(2))
		fmt.Fprintf(&sb, "  Variance: %s (%s%%)\n", signed(b.Variance.StringFixed(2)), signed(b.VariancePct.StringFixed(2)))
		fmt.Fprintf(&sb, "  Details:  %s\n", b.Details)
	}

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString(center("END OF REPORT", 78) + "\n")
	sb.WriteString(rule + "\n")

	return sb.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func signed(s string) string {
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}
