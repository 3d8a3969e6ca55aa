package ingestion

import (
	"encoding/json"
	"fmt"

	"github.com/hedgeops/posrecon/internal/domain"
)

// ParsePositionsJSON parses a position snapshot serialized as a JSON array
// of position objects. Decimal fields accept both JSON numbers and strings.
func ParsePositionsJSON(data []byte) ([]domain.Position, error) {
	var positions []domain.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		return nil, fmt.Errorf("unmarshal positions: %w", err)
	}
	return positions, nil
}
