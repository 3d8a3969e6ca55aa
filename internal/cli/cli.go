// Package cli implements the posrecon subcommands.
package cli

import (
	"fmt"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/hedgeops/posrecon/internal/config"
	"github.com/hedgeops/posrecon/internal/reconciliation"
)

// Commands lists every subcommand the posrecon binary registers.
var Commands = []subcommands.Command{
	&runCmd{},
	&demoCmd{},
	&generateCmd{},
}

// newEngine loads configuration and builds a logger and a reconciliation
// engine for one CLI invocation. Logs go to stderr so report output on
// stdout stays clean.
func newEngine(configPath string) (*reconciliation.Engine, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	engine := reconciliation.NewEngine(cfg.Tolerances.Build(), logger.Sugar())
	return engine, logger, nil
}
