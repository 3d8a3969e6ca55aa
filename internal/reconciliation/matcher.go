package reconciliation

import (
	"sort"

	"github.com/hedgeops/posrecon/internal/domain"
)

// MatchedPair is one position present in both snapshots under the same key.
type MatchedPair struct {
	Source domain.Position
	Target domain.Position
}

// MatchResult partitions two snapshots by position key. All three slices are
// sorted by (symbol, account_id) so downstream break-ID assignment is
// reproducible regardless of map iteration order.
type MatchResult struct {
	Matched    []MatchedPair
	SourceOnly []domain.Position
	TargetOnly []domain.Position
}

// MatchPositions indexes both snapshots by (symbol, account_id) and splits
// them into matched pairs, source-only and target-only positions. A key
// appearing twice within one snapshot is a data-integrity failure and aborts
// the match rather than silently keeping one of the rows.
func MatchPositions(source, target []domain.Position) (*MatchResult, error) {
	sourceByKey, err := indexByKey(source, domain.SnapshotSource)
	if err != nil {
		return nil, err
	}
	targetByKey, err := indexByKey(target, domain.SnapshotTarget)
	if err != nil {
		return nil, err
	}

	result := &MatchResult{}

	for key, pos := range sourceByKey {
		if other, ok := targetByKey[key]; ok {
			result.Matched = append(result.Matched, MatchedPair{Source: pos, Target: other})
		} else {
			result.SourceOnly = append(result.SourceOnly, pos)
		}
	}
	for key, pos := range targetByKey {
		if _, ok := sourceByKey[key]; !ok {
			result.TargetOnly = append(result.TargetOnly, pos)
		}
	}

	sort.Slice(result.Matched, func(i, j int) bool {
		return keyLess(result.Matched[i].Source.Key(), result.Matched[j].Source.Key())
	})
	sortPositions(result.SourceOnly)
	sortPositions(result.TargetOnly)

	return result, nil
}

func indexByKey(positions []domain.Position, snap domain.Snapshot) (map[domain.PositionKey]domain.Position, error) {
	byKey := make(map[domain.PositionKey]domain.Position, len(positions))
	for _, pos := range positions {
		key := pos.Key()
		if _, exists := byKey[key]; exists {
			return nil, &domain.DuplicateKeyError{Snapshot: snap, Key: key}
		}
		byKey[key] = pos
	}
	return byKey, nil
}

func sortPositions(positions []domain.Position) {
	sort.Slice(positions, func(i, j int) bool {
		return keyLess(positions[i].Key(), positions[j].Key())
	})
}

func keyLess(a, b domain.PositionKey) bool {
	if a.Symbol != b.Symbol {
		return a.Symbol < b.Symbol
	}
	return a.AccountID < b.AccountID
}
