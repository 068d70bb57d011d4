package cashflow

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Book binds the in-memory ledger to its durable store and exposes the
// only mutation paths that exist: append, bulk-approve, reconcile, and
// direct edit. Every successful mutating command persists the full
// collection before it is reported as successful.
//
// When a save fails the in-memory ledger stays mutated but the command
// returns an error wrapping ErrStoreUnavailable: callers must treat the
// command as failed and re-load or retry, never assume the save went
// through.
type Book struct {
	ledger *Ledger
	store  LedgerStore
}

// Open loads the whole collection from the store and returns a book
// over it.
func Open(ctx context.Context, store LedgerStore) (*Book, error) {
	rows, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return &Book{ledger: NewLedger(rows...), store: store}, nil
}

// Ledger exposes the read-only query surface over the loaded
// collection.
func (b *Book) Ledger() *Ledger { return b.ledger }

func (b *Book) save(ctx context.Context) error {
	if err := b.store.Save(ctx, b.ledger.Rows()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Add validates and appends a new transaction, then persists. A record
// without a status is stored as Approved; only explicit forecast
// entries (or GenerateForecast output) start as Forecast.
func (b *Book) Add(ctx context.Context, tx Transaction) error {
	tx, err := b.ledger.Validate(tx)
	if err != nil {
		return err
	}
	b.ledger.Append(tx)
	return b.save(ctx)
}

// BulkApprove confirms a set of forecasts exactly as predicted: each
// index flips to Approved with its amount unchanged.
//
// The command is all-or-nothing: every index must exist and be a
// Forecast before anything is mutated. Duplicate indices are collapsed.
func (b *Book) BulkApprove(ctx context.Context, indices []int) error {
	indices = slices.Compact(slices.Sorted(slices.Values(indices)))
	for _, i := range indices {
		tx, err := b.ledger.Get(i)
		if err != nil {
			return err
		}
		if tx.Status != Forecast {
			return fmt.Errorf("transaction %d has status %q, only forecasts can be approved: %w", i, tx.Status, ErrInvalidState)
		}
	}
	for _, i := range indices {
		if err := b.ledger.ReplaceStatus(i, Approved); err != nil {
			return err
		}
	}
	return b.save(ctx)
}

// Reconcile settles one forecast against its actual outcome: the
// amount is overwritten with actual, the status moves to outcome
// (Approved or Rejected), and the description gains an audit trail of
// the form "expected: <original> | actual: <actual>".
//
// Only Forecast rows are reconcilable; anything else fails with
// ErrInvalidState and leaves the ledger unmutated.
func (b *Book) Reconcile(ctx context.Context, i int, actual decimal.Decimal, outcome Status) error {
	if outcome != Approved && outcome != Rejected {
		return fmt.Errorf("reconcile outcome %q must be approved or rejected: %w", outcome, ErrValidation)
	}
	if actual.IsNegative() {
		return fmt.Errorf("actual amount %s must not be negative: %w", actual, ErrValidation)
	}
	tx, err := b.ledger.Get(i)
	if err != nil {
		return err
	}
	if tx.Status != Forecast {
		return fmt.Errorf("transaction %d has status %q, only forecasts can be reconciled: %w", i, tx.Status, ErrInvalidState)
	}

	// The update is in place: capture the forecast amount before it is
	// overwritten.
	expected := tx.Amount

	tx.Amount = actual
	tx.Description = appendAudit(tx.Description, expected, actual)
	if err := b.ledger.Update(i, tx); err != nil {
		return err
	}
	if err := b.ledger.ReplaceStatus(i, outcome); err != nil {
		return err
	}
	return b.save(ctx)
}

// Edit rewrites the fields of one record while leaving its status
// untouched.
func (b *Book) Edit(ctx context.Context, i int, patch Transaction) error {
	if err := b.ledger.Update(i, patch); err != nil {
		return err
	}
	return b.save(ctx)
}

func appendAudit(description string, expected, actual decimal.Decimal) string {
	audit := fmt.Sprintf("expected: %s | actual: %s", expected, actual)
	if description == "" {
		return audit
	}
	return description + " | " + audit
}
