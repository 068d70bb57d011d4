package cashflow

import (
	"fmt"
	"iter"
)

// Ledger is the in-memory ordered collection of transactions.
//
// The ledger exclusively owns the collection for the duration of a
// session; the ledger store owns durable state between sessions.
// Insertion order is preserved and the positional index is the only
// identity a transaction has.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger over the given rows. The slice is adopted,
// not copied.
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: txs}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Get returns the transaction at index i.
func (l *Ledger) Get(i int) (Transaction, error) {
	if i < 0 || i >= len(l.transactions) {
		return Transaction{}, fmt.Errorf("transaction %d: %w", i, ErrNotFound)
	}
	return l.transactions[i], nil
}

// Rows returns a copy of the ordered collection, in insertion order.
// This is the snapshot handed to the ledger store on save.
func (l *Ledger) Rows() []Transaction {
	rows := make([]Transaction, len(l.transactions))
	copy(rows, l.transactions)
	return rows
}

// Validate checks a transaction received from a command for
// correctness. Unlike the load boundary, nothing is coerced here: an
// out-of-enum kind, currency or source, or a negative amount, rejects
// the whole record with ErrValidation.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	if tx.Kind != Income && tx.Kind != Expense {
		return tx, fmt.Errorf("kind %q: %w", tx.Kind, ErrValidation)
	}
	if !ValidCurrency(tx.Currency) {
		return tx, fmt.Errorf("currency %q: %w", tx.Currency, ErrValidation)
	}
	if tx.Source != Payoneer && tx.Source != Bank {
		return tx, fmt.Errorf("source %q: %w", tx.Source, ErrValidation)
	}
	if tx.Amount.IsNegative() {
		return tx, fmt.Errorf("amount %s must not be negative: %w", tx.Amount, ErrValidation)
	}
	if tx.Status == "" {
		tx.Status = Approved
	}
	if tx.Status != Approved && tx.Status != Forecast && tx.Status != Rejected {
		return tx, fmt.Errorf("status %q: %w", tx.Status, ErrValidation)
	}
	return tx, nil
}

// Append appends transactions to the ledger, preserving insertion
// order. It assigns no identity beyond the positional index.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Update rewrites the fields of the transaction at index i with patch.
// The current status is preserved: all status movement goes through
// ReplaceStatus, so a direct edit can never change a record's state.
func (l *Ledger) Update(i int, patch Transaction) error {
	if i < 0 || i >= len(l.transactions) {
		return fmt.Errorf("transaction %d: %w", i, ErrNotFound)
	}
	patch.Status = l.transactions[i].Status
	patch, err := l.Validate(patch)
	if err != nil {
		return err
	}
	l.transactions[i] = patch
	return nil
}

// ReplaceStatus sets the status of the transaction at index i.
func (l *Ledger) ReplaceStatus(i int, status Status) error {
	if i < 0 || i >= len(l.transactions) {
		return fmt.Errorf("transaction %d: %w", i, ErrNotFound)
	}
	if status != Approved && status != Forecast && status != Rejected {
		return fmt.Errorf("status %q: %w", status, ErrValidation)
	}
	l.transactions[i].Status = status
	return nil
}

// Filter is a predicate over transactions. Filters passed to a query
// must all hold for a row to be selected.
type Filter func(Transaction) bool

// ByKind selects rows with the given kind.
func ByKind(k Kind) Filter { return func(t Transaction) bool { return t.Kind == k } }

// ByCurrency selects rows with the given currency.
func ByCurrency(cur string) Filter {
	return func(t Transaction) bool { return t.Currency == cur }
}

// BySource selects rows recorded against the given source.
func BySource(s Source) Filter { return func(t Transaction) bool { return t.Source == s } }

// ByStatus selects rows with the given status.
func ByStatus(s Status) Filter { return func(t Transaction) bool { return t.Status == s } }

// ByCategory selects rows with the given category.
func ByCategory(c string) Filter { return func(t Transaction) bool { return t.Category == c } }

// Confirmed selects rows already reconciled (anything but Forecast).
// This is the default view for dashboard balances.
func Confirmed() Filter { return func(t Transaction) bool { return t.Status != Forecast } }

// Forecasts selects only Forecast rows.
func Forecasts() Filter { return ByStatus(Forecast) }

// InRange selects rows dated within [from, to] inclusive. A zero bound
// leaves that side open. Zero-dated rows never match.
func InRange(from, to Date) Filter {
	return func(t Transaction) bool {
		if t.Date.IsZero() {
			return false
		}
		if !from.IsZero() && t.Date.Before(from) {
			return false
		}
		if !to.IsZero() && t.Date.After(to) {
			return false
		}
		return true
	}
}

// Transactions returns an iterator over (index, transaction) pairs in
// insertion order, yielding only rows for which every filter holds.
func (l *Ledger) Transactions(filters ...Filter) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}
