package cashflow

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency codes used by the ledger. ILS is the reporting currency;
// USD is the only foreign currency.
const (
	ILS = "ILS"
	USD = "USD"
)

// ValidCurrency reports whether cur is one of the ledger currencies.
func ValidCurrency(cur string) bool { return cur == ILS || cur == USD }

// ParseCurrency parses a currency code, case-insensitively.
func ParseCurrency(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case ILS:
		return ILS, nil
	case USD:
		return USD, nil
	default:
		return "", fmt.Errorf("unknown currency %q: %w", s, ErrValidation)
	}
}

// Money represents a monetary value in one of the ledger currencies.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from any numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// currency resolves the full go-money currency for formatting.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency.
	return *money.New(0, m.cur).Currency()
}

// String returns the localized representation of the money value,
// e.g. "₪1,234.50" or "$30.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string       { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsPositive() bool       { return m.value.IsPositive() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) Neg() Money             { return Money{value: m.value.Neg(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Rates holds the fixed conversion rate used for reporting-currency
// totals. The rate is a load-time constant, never fetched at runtime.
type Rates struct {
	USDToILS decimal.Decimal
}

// NewRates builds a Rates with the given USD→ILS multiplier.
func NewRates(usdToILS decimal.Decimal) Rates { return Rates{USDToILS: usdToILS} }

// Reporting converts any amount to the reporting currency (ILS).
// ILS amounts pass through unchanged; USD amounts are multiplied by the
// fixed rate and rounded to 2 decimal places (the reporting currency's
// display precision).
func (r Rates) Reporting(m Money) Money {
	if m.cur == USD {
		return Money{value: m.value.Mul(r.USDToILS).Round(2), cur: ILS}
	}
	return Money{value: m.value, cur: ILS}
}

// ReportingAmount is Reporting for a bare USD-or-ILS decimal.
func (r Rates) ReportingAmount(amount decimal.Decimal, currency string) decimal.Decimal {
	return r.Reporting(Money{value: amount, cur: currency}).value
}
