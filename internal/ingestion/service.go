package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hedgeops/posrecon/internal/domain"
)

// Supported snapshot file formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ParseSnapshot decodes raw snapshot bytes in the given format.
func ParseSnapshot(data []byte, format string) ([]domain.Position, error) {
	switch format {
	case FormatCSV:
		return ParsePositionsCSV(data)
	case FormatJSON:
		return ParsePositionsJSON(data)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// LoadSnapshotFile reads and parses a snapshot file. An empty format is
// inferred from the file extension.
func LoadSnapshotFile(path, format string) ([]domain.Position, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	positions, err := ParseSnapshot(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return positions, nil
}
