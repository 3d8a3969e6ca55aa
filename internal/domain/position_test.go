package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPositionValidate(t *testing.T) {
	valid := Position{
		Symbol:      "AAPL",
		AccountID:   "ACC1",
		Quantity:    100,
		Price:       decimal.RequireFromString("178.50"),
		MarketValue: decimal.RequireFromString("17850"),
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid position rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Position)
		field  string
	}{
		{"missing symbol", func(p *Position) { p.Symbol = "" }, "symbol"},
		{"missing account", func(p *Position) { p.AccountID = "" }, "account_id"},
		{"negative price", func(p *Position) { p.Price = decimal.NewFromInt(-1) }, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %q", err, tt.field)
			}
		})
	}
}

func TestPositionKeyString(t *testing.T) {
	p := Position{Symbol: "AAPL", AccountID: "HEDGE_FUND_01"}
	if got := p.Key().String(); got != "AAPL|HEDGE_FUND_01" {
		t.Errorf("key = %s, want AAPL|HEDGE_FUND_01", got)
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	order := []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%s should rank before %s", order[i-1], order[i])
		}
	}
}

func TestSeverityActionable(t *testing.T) {
	if !SeverityCritical.Actionable() || !SeverityHigh.Actionable() {
		t.Error("critical and high must be actionable")
	}
	if SeverityMedium.Actionable() || SeverityLow.Actionable() {
		t.Error("medium and low must not be actionable")
	}
}
