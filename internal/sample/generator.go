// Package sample generates deterministic demo position snapshots with
// intentional breaks, for demos and integration testing.
package sample

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hedgeops/posrecon/internal/domain"
)

// DefaultSeed reproduces the canonical demo data set.
const DefaultSeed = 42

var universe = []struct {
	symbol string
	price  float64
}{
	{"AAPL", 178.50},
	{"GOOGL", 141.25},
	{"MSFT", 378.90},
	{"AMZN", 178.25},
	{"META", 505.75},
	{"NVDA", 875.50},
	{"TSLA", 248.75},
	{"JPM", 198.40},
	{"V", 278.60},
	{"JNJ", 156.80},
}

var accounts = []string{"HEDGE_FUND_01", "HEDGE_FUND_02"}

// Snapshots builds a source snapshot (internal books) and a target snapshot
// (prime broker feed) from the given seed. The target side carries injected
// discrepancies: roughly 20% of positions get a quantity drift, 15% a price
// drift, and one extra position exists only at the prime broker.
func Snapshots(seed int64) (source, target []domain.Position) {
	rng := rand.New(rand.NewSource(seed))

	now := time.Now()
	tradeDate := now.AddDate(0, 0, -2).Format("2006-01-02")
	settleDate := now.Format("2006-01-02")

	for _, stock := range universe {
		for _, account := range accounts {
			qty := 1000 + rng.Int63n(14000)
			price := decimal.NewFromFloat(stock.price)

			source = append(source, domain.Position{
				Symbol:      stock.symbol,
				AccountID:   account,
				Quantity:    qty,
				Price:       price,
				MarketValue: price.Mul(decimal.NewFromInt(qty)).Round(2),
				Currency:    "USD",
				TradeDate:   tradeDate,
				SettleDate:  settleDate,
			})
		}
	}

	for _, pos := range source {
		drifted := pos

		// Quantity drift on ~20% of positions.
		if rng.Float64() < 0.20 {
			drifted.Quantity = pos.Quantity + rng.Int63n(1000) - 500
		}

		// Price drift of up to ±3% on ~15% of positions.
		if rng.Float64() < 0.15 {
			shift := decimal.NewFromFloat(pos.Price.InexactFloat64() * (rng.Float64()*0.06 - 0.03))
			drifted.Price = pos.Price.Add(shift).Round(2)
		}

		drifted.MarketValue = drifted.Price.Mul(decimal.NewFromInt(drifted.Quantity)).Round(2)
		target = append(target, drifted)
	}

	// One position the books never saw.
	target = append(target, domain.Position{
		Symbol:      "NFLX",
		AccountID:   "HEDGE_FUND_01",
		Quantity:    2500,
		Price:       decimal.NewFromFloat(625.00),
		MarketValue: decimal.NewFromFloat(1562500.00),
		Currency:    "USD",
		TradeDate:   tradeDate,
		SettleDate:  settleDate,
	})

	return source, target
}

// WritePositionsCSV writes a snapshot in the standard ingestion CSV layout.
func WritePositionsCSV(w io.Writer, positions []domain.Position) error {
	writer := csv.NewWriter(w)

	header := []string{
		"symbol", "account_id", "quantity", "price",
		"market_value", "currency", "trade_date", "settle_date",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, pos := range positions {
		row := []string{
			pos.Symbol,
			pos.AccountID,
			fmt.Sprintf("%d", pos.Quantity),
			pos.Price.String(),
			pos.MarketValue.String(),
			pos.Currency,
			pos.TradeDate,
			pos.SettleDate,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row for %s/%s: %w", pos.Symbol, pos.AccountID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SavePositionsCSV writes a snapshot to a file.
func SavePositionsCSV(path string, positions []domain.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePositionsCSV(f, positions); err != nil {
		return err
	}
	return f.Sync()
}
