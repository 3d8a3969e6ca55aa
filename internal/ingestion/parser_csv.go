package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hedgeops/posrecon/internal/domain"
)

// positionColumns is the expected CSV header for position snapshot files.
var positionColumns = []string{
	"symbol", "account_id", "quantity", "price",
	"market_value", "currency", "trade_date", "settle_date",
}

// ParsePositionsCSV parses a position snapshot in the standard CSV layout.
//
// Expected header:
//
//	symbol,account_id,quantity,price,market_value,currency,trade_date,settle_date
func ParsePositionsCSV(data []byte) ([]domain.Position, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < len(positionColumns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(positionColumns), len(header))
	}

	var positions []domain.Position
	lineNum := 1

	for {
		lineNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if len(row) < len(positionColumns) {
			continue
		}

		qty, err := strconv.ParseInt(strings.TrimSpace(row[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d quantity: %w", lineNum, err)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("line %d price: %w", lineNum, err)
		}
		marketValue, err := decimal.NewFromString(strings.TrimSpace(row[4]))
		if err != nil {
			return nil, fmt.Errorf("line %d market_value: %w", lineNum, err)
		}

		positions = append(positions, domain.Position{
			Symbol:      strings.TrimSpace(row[0]),
			AccountID:   strings.TrimSpace(row[1]),
			Quantity:    qty,
			Price:       price,
			MarketValue: marketValue,
			Currency:    strings.TrimSpace(row[5]),
			TradeDate:   strings.TrimSpace(row[6]),
			SettleDate:  strings.TrimSpace(row[7]),
		})
	}

	return positions, nil
}
