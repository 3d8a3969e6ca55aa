package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Snapshot identifies which side of a reconciliation a position came from.
type Snapshot string

const (
	SnapshotSource Snapshot = "source" // internal books and records
	SnapshotTarget Snapshot = "target" // custodian / prime broker feed
)

// Position is one row from a position snapshot. Quantity, Price and
// MarketValue are compared during reconciliation; the remaining fields are
// carried through unchanged. MarketValue is taken as reported — the engine
// never re-derives it from quantity and price.
type Position struct {
	Symbol      string          `json:"symbol"`
	AccountID   string          `json:"account_id"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	MarketValue decimal.Decimal `json:"market_value"`
	Currency    string          `json:"currency"`
	TradeDate   string          `json:"trade_date"`
	SettleDate  string          `json:"settle_date"`
}

// PositionKey uniquely identifies a position within one snapshot.
type PositionKey struct {
	Symbol    string
	AccountID string
}

func (k PositionKey) String() string {
	return k.Symbol + "|" + k.AccountID
}

// Key returns the composite matching key for the position.
func (p Position) Key() PositionKey {
	return PositionKey{Symbol: p.Symbol, AccountID: p.AccountID}
}

// Validate checks the caller contract for a single position. A missing
// required field or a negative price is a data-quality failure and aborts
// the whole run before any breaks are produced.
func (p Position) Validate() error {
	if p.Symbol == "" {
		return &ValidationError{Field: "symbol", Key: p.Key()}
	}
	if p.AccountID == "" {
		return &ValidationError{Field: "account_id", Key: p.Key()}
	}
	if p.Price.IsNegative() {
		return &ValidationError{Field: "price", Key: p.Key(), Reason: "must not be negative"}
	}
	return nil
}

// ValidationError reports a position that violates the input contract.
type ValidationError struct {
	Field  string
	Key    PositionKey
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("position %s: field %q %s", e.Key, e.Field, e.Reason)
	}
	return fmt.Sprintf("position %s: missing required field %q", e.Key, e.Field)
}

// DuplicateKeyError reports two rows sharing one key within a single
// snapshot. The engine refuses to pick a side and fails the run instead.
type DuplicateKeyError struct {
	Snapshot Snapshot
	Key      PositionKey
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate position key %s in %s snapshot", e.Key, e.Snapshot)
}
