// Package config loads runtime settings from an optional YAML file with
// environment variable overrides. Tolerances are loaded once at process
// start and never change mid-run.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hedgeops/posrecon/internal/reconciliation"
)

// Config is the full runtime configuration.
type Config struct {
	Port       string          `yaml:"port"`
	Tolerances ToleranceConfig `yaml:"tolerances"`
}

// ToleranceConfig mirrors reconciliation.Tolerances in YAML-friendly form.
// Percentages are in percent (1.0 means 1%), min_threshold in currency
// units.
type ToleranceConfig struct {
	QuantityPct    float64 `yaml:"quantity_pct"`
	PricePct       float64 `yaml:"price_pct"`
	MarketValuePct float64 `yaml:"market_value_pct"`
	MinThreshold   float64 `yaml:"min_threshold"`
}

// Default returns the built-in configuration: port 8080 and the standard
// desk tolerances.
func Default() Config {
	return Config{
		Port: "8080",
		Tolerances: ToleranceConfig{
			QuantityPct:    1.0,
			PricePct:       0.1,
			MarketValuePct: 2.0,
			MinThreshold:   100,
		},
	}
}

// Load reads configuration from the given YAML file, falling back to
// defaults when path is empty. The PORT environment variable, when set,
// overrides the configured port.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	return cfg, nil
}

// Build converts the YAML tolerance values to the engine's decimal form.
func (t ToleranceConfig) Build() reconciliation.Tolerances {
	return reconciliation.Tolerances{
		QuantityPct:    decimal.NewFromFloat(t.QuantityPct),
		PricePct:       decimal.NewFromFloat(t.PricePct),
		MarketValuePct: decimal.NewFromFloat(t.MarketValuePct),
		MinThreshold:   decimal.NewFromFloat(t.MinThreshold),
	}
}
