// Package export serializes break lists for downstream systems.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/hedgeops/posrecon/internal/domain"
)

var breakColumns = []string{
	"break_id", "break_type", "severity", "symbol", "account_id",
	"source_value", "target_value", "variance", "variance_pct", "details",
}

// WriteBreaksCSV writes the break list as CSV, one row per break in
// break-ID order, one column per field.
func WriteBreaksCSV(w io.Writer, breaks []domain.Break) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(breakColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, b := range breaks {
		row := []string{
			b.BreakID,
			string(b.Type),
			string(b.Severity),
			b.Symbol,
			b.AccountID,
			b.SourceValue.String(),
			b.TargetValue.String(),
			b.Variance.String(),
			b.VariancePct.String(),
			b.Details,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write break %s: %w", b.BreakID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveBreaksCSV writes the break list to a file.
func SaveBreaksCSV(path string, breaks []domain.Break) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteBreaksCSV(f, breaks); err != nil {
		return err
	}
	return f.Sync()
}
