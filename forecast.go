package cashflow

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GenerateForecast builds a forecast transaction for selling units of a
// SKU during the given month, discounted by the realization rate:
//
//	amount = round(units × profitPerUnit × rate, 2)
//
// The result is always an Income in USD with status Forecast, dated the
// first day of the month, categorized "Sales <sku>", and carrying a
// description that records the inputs for auditability.
//
// units must be a positive integer and profitPerUnit non-negative;
// violating either fails with ErrValidation before any transaction is
// constructed.
func GenerateForecast(sku string, units int, profitPerUnit decimal.Decimal, month Date, rate decimal.Decimal) (Transaction, error) {
	if sku == "" {
		return Transaction{}, fmt.Errorf("forecast SKU is missing: %w", ErrValidation)
	}
	if units <= 0 {
		return Transaction{}, fmt.Errorf("forecast unit count %d must be positive: %w", units, ErrValidation)
	}
	if profitPerUnit.IsNegative() {
		return Transaction{}, fmt.Errorf("forecast profit per unit %s must not be negative: %w", profitPerUnit, ErrValidation)
	}
	if month.IsZero() {
		return Transaction{}, fmt.Errorf("forecast month is missing: %w", ErrValidation)
	}

	amount := decimal.NewFromInt(int64(units)).Mul(profitPerUnit).Mul(rate).Round(2)
	return Transaction{
		Date:        month.StartOfMonth(),
		Kind:        Income,
		Amount:      amount,
		Currency:    USD,
		Source:      Payoneer,
		Category:    SalesCategory(sku),
		Description: fmt.Sprintf("forecast: %d units x %s at rate %s", units, profitPerUnit, rate),
		Status:      Forecast,
	}, nil
}
