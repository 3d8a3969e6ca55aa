package reconciliation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hedgeops/posrecon/internal/domain"
)

// Result summarises a full reconciliation run.
type Result struct {
	SourceCount  int            `json:"source_count"`
	TargetCount  int            `json:"target_count"`
	MatchedCount int            `json:"matched_count"`
	Breaks       []domain.Break `json:"breaks"`
}

// Engine runs a complete reconciliation: validation, matching, break
// detection and break-ID assignment. A single engine is safe to reuse for
// many runs; each run is an independent batch over two immutable snapshots.
type Engine struct {
	detector *Detector
	log      *zap.SugaredLogger
}

// NewEngine creates an engine with the given tolerances.
func NewEngine(tol Tolerances, log *zap.SugaredLogger) *Engine {
	return &Engine{
		detector: NewDetector(tol),
		log:      log,
	}
}

// Reconcile compares the two snapshots and returns every break found, in
// break-ID order. IDs are BRK-0001 upwards, assigned in a fixed documented
// order: missing-in-target positions first, then missing-in-source, then
// matched pairs sorted by key with quantity, price and market-value checks
// per pair. The run is all-or-nothing: a validation or duplicate-key error
// produces no partial output.
func (e *Engine) Reconcile(source, target []domain.Position) (*Result, error) {
	if err := validateSnapshot(source, domain.SnapshotSource); err != nil {
		return nil, err
	}
	if err := validateSnapshot(target, domain.SnapshotTarget); err != nil {
		return nil, err
	}

	match, err := MatchPositions(source, target)
	if err != nil {
		return nil, fmt.Errorf("match positions: %w", err)
	}

	breaks := e.detector.Detect(match)
	for i := range breaks {
		breaks[i].BreakID = fmt.Sprintf("BRK-%04d", i+1)
	}

	result := &Result{
		SourceCount:  len(source),
		TargetCount:  len(target),
		MatchedCount: len(match.Matched),
		Breaks:       breaks,
	}

	e.log.Infow("reconciliation complete",
		"source_positions", result.SourceCount,
		"target_positions", result.TargetCount,
		"matched", result.MatchedCount,
		"missing_in_target", len(match.SourceOnly),
		"missing_in_source", len(match.TargetOnly),
		"breaks", len(breaks),
	)

	return result, nil
}

func validateSnapshot(positions []domain.Position, snap domain.Snapshot) error {
	for _, pos := range positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("%s snapshot: %w", snap, err)
		}
	}
	return nil
}
