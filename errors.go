package cashflow

import "errors"

// The engine classifies every failure into one of four kinds. Callers
// match them with errors.Is; messages carry the specifics.
var (
	// ErrValidation reports malformed or out-of-range input to a command.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound reports an index or key that does not exist in the ledger.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState reports an operation not permitted by the record's
	// current status.
	ErrInvalidState = errors.New("invalid state")

	// ErrStoreUnavailable reports a failed load or save of the ledger
	// store. After a failed save the in-memory ledger is already mutated;
	// the command must be reported as failed and may be retried.
	ErrStoreUnavailable = errors.New("ledger store unavailable")
)
