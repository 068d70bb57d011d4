package cashflow

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a cash flow.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses a kind string, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown kind %q: %w", s, ErrValidation)
	}
}

// Source is the funding account a transaction is recorded against.
type Source string

const (
	// Payoneer holds balances in USD.
	Payoneer Source = "payoneer"
	// Bank is the Israeli bank account, holding balances in ILS.
	Bank Source = "bank"
)

// ParseSource parses a source string, case-insensitively.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "payoneer":
		return Payoneer, nil
	case "bank":
		return Bank, nil
	default:
		return "", fmt.Errorf("unknown source %q: %w", s, ErrValidation)
	}
}

// NativeCurrency returns the currency each source is expected to hold
// balances in.
func (s Source) NativeCurrency() string {
	if s == Payoneer {
		return USD
	}
	return ILS
}

// Status is the reconciliation state of a transaction.
//
// Forecast is the only non-terminal status: a Forecast row may be
// edited freely and is the only kind of row the reconciliation
// workflow accepts. Approved and Rejected are terminal.
type Status string

const (
	Approved Status = "approved"
	Forecast Status = "forecast"
	Rejected Status = "rejected"
)

// ParseStatus parses a status string, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved":
		return Approved, nil
	case "forecast":
		return Forecast, nil
	case "rejected":
		return Rejected, nil
	default:
		return "", fmt.Errorf("unknown status %q: %w", s, ErrValidation)
	}
}

// Terminal reports whether the status is one the reconciliation
// workflow never re-enters automatically.
func (s Status) Terminal() bool { return s == Approved || s == Rejected }

// Transaction is a single cash-flow record.
//
// Amount is always non-negative; the effect on a balance is derived
// from Kind, never stored as a signed value. Identity is positional:
// a transaction is addressed by its index in the ledger's insertion
// order.
type Transaction struct {
	Date        Date            // zero when missing or unparseable
	Kind        Kind
	Amount      decimal.Decimal // non-negative, in Currency units
	Currency    string          // ILS or USD
	Source      Source
	Category    string // free text; forecasts use "Sales <SKU>"
	Description string // free text; reconciliation appends audit text
	Status      Status
}

// Equal reports whether two transactions have the same content.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Kind == o.Kind &&
		t.Amount.Equal(o.Amount) &&
		t.Currency == o.Currency &&
		t.Source == o.Source &&
		t.Category == o.Category &&
		t.Description == o.Description &&
		t.Status == o.Status
}

// Money returns the transaction amount as a Money in its own currency.
func (t Transaction) Money() Money { return Money{value: t.Amount, cur: t.Currency} }

// salesPrefix marks categories that carry a SKU for realization-rate
// grouping.
const salesPrefix = "Sales "

// SalesCategory builds the category string for a SKU.
func SalesCategory(sku string) string { return salesPrefix + sku }

// SKU extracts the product key from a category string. It returns
// false when the category does not follow the "Sales <SKU>" pattern;
// such rows are excluded from rate computation but not from balance
// aggregation.
func SKU(category string) (string, bool) {
	rest, found := strings.CutPrefix(category, salesPrefix)
	if !found || rest == "" {
		return "", false
	}
	return rest, true
}
