package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hedgeops/posrecon/internal/api"
	"github.com/hedgeops/posrecon/internal/config"
	"github.com/hedgeops/posrecon/internal/reconciliation"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	log := logger.Sugar()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalw("load config", "error", err)
	}

	engine := reconciliation.NewEngine(cfg.Tolerances.Build(), log)
	router := api.NewRouter(engine, log)

	log.Infow("position reconciliation service starting",
		"port", cfg.Port,
		"quantity_pct", cfg.Tolerances.QuantityPct,
		"price_pct", cfg.Tolerances.PricePct,
		"market_value_pct", cfg.Tolerances.MarketValuePct,
		"min_threshold", cfg.Tolerances.MinThreshold,
	)
	log.Infof("API base: http://localhost:%s/api/v1", cfg.Port)
	log.Infof("  POST /api/v1/reconcile")
	log.Infof("  POST /api/v1/reconcile/upload")
	log.Infof("  GET  /api/v1/healthz")

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalw("server failed", "error", err)
	}
}
