package cashflow

import "context"

// LedgerStore is durable keyed storage for the transaction collection.
//
// Both operations act on the whole collection: there is no partial
// update primitive. Save performs a full overwrite of the backing
// table, so two concurrent sessions race and the later save wins.
// Load and Save are the only operations with external latency; they
// carry a context and no built-in retry.
type LedgerStore interface {
	Load(ctx context.Context) ([]Transaction, error)
	Save(ctx context.Context, rows []Transaction) error
}

// MemoryStore is a LedgerStore backed by a slice. It is used in tests
// and as a scratch ledger.
type MemoryStore struct {
	rows []Transaction

	// FailSave, when set, makes every Save return this error. It
	// simulates an unavailable backing store.
	FailSave error
}

// NewMemoryStore creates a MemoryStore preloaded with rows.
func NewMemoryStore(rows ...Transaction) *MemoryStore {
	return &MemoryStore{rows: rows}
}

func (s *MemoryStore) Load(_ context.Context) ([]Transaction, error) {
	rows := make([]Transaction, len(s.rows))
	copy(rows, s.rows)
	return rows, nil
}

func (s *MemoryStore) Save(_ context.Context, rows []Transaction) error {
	if s.FailSave != nil {
		return s.FailSave
	}
	s.rows = make([]Transaction, len(rows))
	copy(s.rows, rows)
	return nil
}
