package cashflow

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestGenerateForecast(t *testing.T) {
	// the Blue scenario: 10 units at $5 profit, realization rate 0.6.
	rate := decimal.NewFromFloat(0.6)
	got, err := GenerateForecast("Blue", 10, decimal.NewFromInt(5), MustParseDate("2025-07-19"), rate)
	if err != nil {
		t.Fatalf("GenerateForecast: %v", err)
	}

	if !got.Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("amount = %s, want 30.00", got.Amount)
	}
	if got.Status != Forecast {
		t.Errorf("status = %q, want forecast", got.Status)
	}
	if got.Kind != Income {
		t.Errorf("kind = %q, want income", got.Kind)
	}
	if got.Currency != USD {
		t.Errorf("currency = %q, want USD", got.Currency)
	}
	if got.Date != NewDate(2025, time.July, 1) {
		t.Errorf("date = %v, want first of month", got.Date)
	}
	if got.Category != "Sales Blue" {
		t.Errorf("category = %q, want Sales Blue", got.Category)
	}
	for _, input := range []string{"10", "5", "0.6"} {
		if !strings.Contains(got.Description, input) {
			t.Errorf("description %q must record input %q", got.Description, input)
		}
	}
}

func TestGenerateForecastRounds(t *testing.T) {
	// 3 * 1.333 * 0.85 = 3.399... rounds to 3.40
	got, err := GenerateForecast("Blue", 3, decimal.NewFromFloat(1.333), MustParseDate("2025-07-01"), decimal.NewFromFloat(0.85))
	if err != nil {
		t.Fatalf("GenerateForecast: %v", err)
	}
	if want := decimal.NewFromFloat(3.40); !got.Amount.Equal(want) {
		t.Errorf("amount = %s, want %s", got.Amount, want)
	}
}

func TestGenerateForecastValidation(t *testing.T) {
	month := MustParseDate("2025-07-01")
	five := decimal.NewFromInt(5)

	testCases := []struct {
		name   string
		sku    string
		units  int
		profit decimal.Decimal
		month  Date
	}{
		{name: "zero units", sku: "Blue", units: 0, profit: five, month: month},
		{name: "negative units", sku: "Blue", units: -3, profit: five, month: month},
		{name: "negative profit", sku: "Blue", units: 10, profit: decimal.NewFromInt(-1), month: month},
		{name: "missing sku", sku: "", units: 10, profit: five, month: month},
		{name: "missing month", sku: "Blue", units: 10, profit: five},
	}
	for _, tc := range testCases {
		if _, err := GenerateForecast(tc.sku, tc.units, tc.profit, tc.month, decimal.NewFromFloat(0.85)); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: error = %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestGenerateForecastZeroProfit(t *testing.T) {
	got, err := GenerateForecast("Blue", 10, decimal.Zero, MustParseDate("2025-07-01"), decimal.NewFromFloat(0.85))
	if err != nil {
		t.Fatalf("zero profit is permitted: %v", err)
	}
	if !got.Amount.IsZero() {
		t.Errorf("amount = %s, want 0", got.Amount)
	}
}
