package cashflow

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore is a LedgerStore backed by a CSV file on disk, using the
// same fixed column order as the remote table. It exists for offline
// use and tests.
type FileStore struct {
	Path string
}

// NewFileStore creates a FileStore for the given path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads all rows from the CSV file. A missing file is an empty
// ledger, not an error. Malformed fields are coerced by DecodeRow; a
// structurally unreadable file is ErrStoreUnavailable.
func (s *FileStore) Load(_ context.Context) ([]Transaction, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %v: %w", s.Path, err, ErrStoreUnavailable)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // legacy rows may be short
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read ledger file %q: %v: %w", s.Path, err, ErrStoreUnavailable)
	}
	return DecodeRows(rows), nil
}

// Save performs a full-table replace: the file is truncated and
// rewritten with the header row plus all data rows, in the exact order
// given. There is no lock against concurrent writers; the last save
// wins.
func (s *FileStore) Save(_ context.Context, rows []Transaction) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %v: %w", s.Path, err, ErrStoreUnavailable)
		}
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %v: %w", s.Path, err, ErrStoreUnavailable)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(EncodeRows(rows)); err != nil {
		return fmt.Errorf("could not write ledger file %q: %v: %w", s.Path, err, ErrStoreUnavailable)
	}
	return nil
}
