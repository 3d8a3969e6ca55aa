package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Port != "8080" {
		t.Errorf("port = %s, want 8080", cfg.Port)
	}

	tol := cfg.Tolerances.Build()
	if !tol.QuantityPct.Equal(decimal.NewFromFloat(1.0)) {
		t.Errorf("quantity pct = %s, want 1", tol.QuantityPct)
	}
	if !tol.PricePct.Equal(decimal.NewFromFloat(0.1)) {
		t.Errorf("price pct = %s, want 0.1", tol.PricePct)
	}
	if !tol.MarketValuePct.Equal(decimal.NewFromFloat(2.0)) {
		t.Errorf("market value pct = %s, want 2", tol.MarketValuePct)
	}
	if !tol.MinThreshold.Equal(decimal.NewFromInt(100)) {
		t.Errorf("min threshold = %s, want 100", tol.MinThreshold)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posrecon.yaml")
	data := `
port: "9999"
tolerances:
  quantity_pct: 0.5
  price_pct: 0.05
  market_value_pct: 1.0
  min_threshold: 250
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("port = %s, want 9999", cfg.Port)
	}
	tol := cfg.Tolerances.Build()
	if !tol.QuantityPct.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("quantity pct = %s, want 0.5", tol.QuantityPct)
	}
	if !tol.MinThreshold.Equal(decimal.NewFromInt(250)) {
		t.Errorf("min threshold = %s, want 250", tol.MinThreshold)
	}
}

func TestLoadPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "7777")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7777" {
		t.Errorf("port = %s, want 7777", cfg.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
