package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hedgeops/posrecon/internal/domain"
)

// CountBySeverity folds the break list into per-severity counts.
func CountBySeverity(breaks []domain.Break) map[domain.Severity]int {
	counts := make(map[domain.Severity]int)
	for _, b := range breaks {
		counts[b.Severity]++
	}
	return counts
}

// CountByType folds the break list into per-type counts.
func CountByType(breaks []domain.Break) map[domain.BreakType]int {
	counts := make(map[domain.BreakType]int)
	for _, b := range breaks {
		counts[b.Type]++
	}
	return counts
}

// TotalValueVariance sums the absolute variance of every break that carries
// a market-value amount: market-value mismatches and missing positions.
// Quantity and price breaks are excluded since their variances are in shares
// and dollars-per-share, not position value.
func TotalValueVariance(breaks []domain.Break) decimal.Decimal {
	total := decimal.Zero
	for _, b := range breaks {
		switch b.Type {
		case domain.BreakMarketValueMismatch, domain.BreakMissingInSource, domain.BreakMissingInTarget:
			total = total.Add(b.Variance.Abs())
		}
	}
	return total
}

// SortForDisplay orders breaks by severity rank, then by descending absolute
// variance. This is a display concern only; break IDs keep their assignment
// order.
func SortForDisplay(breaks []domain.Break) []domain.Break {
	sorted := make([]domain.Break, len(breaks))
	copy(sorted, breaks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Severity.Rank() != sorted[j].Severity.Rank() {
			return sorted[i].Severity.Rank() < sorted[j].Severity.Rank()
		}
		return sorted[i].Variance.Abs().GreaterThan(sorted[j].Variance.Abs())
	})
	return sorted
}
