package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/talmi/cashflow"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// contains fails the test for every want missing from out.
func contains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// ordered fails the test unless the wants appear in out in the given
// order.
func ordered(t *testing.T, out string, wants ...string) {
	t.Helper()
	last := -1
	for _, want := range wants {
		i := strings.Index(out, want)
		if i < 0 {
			t.Errorf("output missing %q:\n%s", want, out)
			return
		}
		if i < last {
			t.Errorf("output has %q out of order:\n%s", want, out)
			return
		}
		last = i
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := &cashflow.Summary{
		Date:        cashflow.NewDate(2025, 3, 1),
		PayoneerUSD: cashflow.M(800, cashflow.USD),
		BankILS:     cashflow.M(3550, cashflow.ILS),
		TotalILS:    cashflow.M(6490, cashflow.ILS),
		ForecastUSD: cashflow.M(120, cashflow.USD),
		Months: []cashflow.MonthFlow{
			{Month: cashflow.NewDate(2025, 1, 1), Income: d("6000"), Expense: d("300"), Net: d("5700")},
			{Month: cashflow.NewDate(2025, 2, 1), Income: d("0"), Expense: d("1500"), Net: d("-1500")},
		},
	}

	out := SummaryMarkdown(s)
	contains(t, out,
		"# Cashflow on 2025-03-01",
		"Payoneer (USD)", s.PayoneerUSD.String(),
		"Bank (ILS)", s.BankILS.String(),
		"Total (ILS)", s.TotalILS.String(),
		"Pending forecasts (USD)", s.ForecastUSD.String(),
		"## Monthly",
		"6000.00", "300.00", "5700.00",
		"1500.00", "-1500.00",
	)
	ordered(t, out, "2025-01", "2025-02")
}

func TestSummaryMarkdownNoMonths(t *testing.T) {
	out := SummaryMarkdown(&cashflow.Summary{Date: cashflow.NewDate(2025, 3, 1)})
	if strings.Contains(out, "## Monthly") {
		t.Error("empty summary must not render a monthly section")
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	ledger := cashflow.NewLedger(
		cashflow.Transaction{
			Date: cashflow.NewDate(2025, 1, 15), Kind: cashflow.Income,
			Amount: d("100"), Currency: cashflow.USD,
			Source: cashflow.Payoneer, Category: "Sales Blue",
			Status: cashflow.Forecast,
		},
		cashflow.Transaction{
			Kind: cashflow.Expense, Amount: d("50"), Currency: cashflow.ILS,
			Source: cashflow.Bank, Status: cashflow.Approved,
		},
	)

	out := TransactionsMarkdown(ledger)
	contains(t, out, "2025-01-15", "income", "100.00", "Sales Blue", "forecast")
	// undated rows render a placeholder, not an empty cell.
	contains(t, out, "?", "expense", "50.00")
}

func TestTransactionsMarkdownFiltered(t *testing.T) {
	ledger := cashflow.NewLedger(
		cashflow.Transaction{
			Date: cashflow.NewDate(2025, 1, 15), Kind: cashflow.Income,
			Amount: d("100"), Currency: cashflow.USD,
			Source: cashflow.Payoneer, Status: cashflow.Forecast,
		},
	)
	out := TransactionsMarkdown(ledger, cashflow.ByStatus(cashflow.Approved))
	if !strings.Contains(out, "No transactions.") {
		t.Errorf("empty listing = %q, want placeholder line", out)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	totals := map[cashflow.MonthKind]decimal.Decimal{
		{Month: cashflow.NewDate(2025, 2, 1), Kind: cashflow.Expense}: d("1500"),
		{Month: cashflow.NewDate(2025, 1, 1), Kind: cashflow.Income}:  d("6000"),
		{Month: cashflow.NewDate(2025, 1, 1), Kind: cashflow.Expense}: d("300"),
	}

	out := MonthlyMarkdown(totals)
	contains(t, out, "6000.00", "300.00", "1500.00")
	ordered(t, out, "2025-01", "2025-02")
}

func TestMonthlyMarkdownEmpty(t *testing.T) {
	if out := MonthlyMarkdown(nil); !strings.Contains(out, "No dated transactions.") {
		t.Errorf("empty breakdown = %q, want placeholder line", out)
	}
}

func TestDailyMarkdown(t *testing.T) {
	totals := map[cashflow.DayStatus]decimal.Decimal{
		{Date: cashflow.NewDate(2025, 1, 20), Status: cashflow.Approved}: d("380"),
		{Date: cashflow.NewDate(2025, 1, 20), Status: cashflow.Forecast}: d("120"),
		{Date: cashflow.NewDate(2025, 1, 5), Status: cashflow.Approved}:  d("60"),
	}

	out := DailyMarkdown(totals)
	contains(t, out, "380.00", "120.00", "60.00", "approved", "forecast")
	ordered(t, out, "2025-01-05", "2025-01-20")
}

func TestDailyMarkdownEmpty(t *testing.T) {
	if out := DailyMarkdown(nil); !strings.Contains(out, "No dated transactions.") {
		t.Errorf("empty breakdown = %q, want placeholder line", out)
	}
}

func TestRatesMarkdown(t *testing.T) {
	rates := map[string]decimal.Decimal{
		"Red":  d("1.5"),
		"Blue": d("0.6"),
	}

	out := RatesMarkdown(rates, d("0.85"))
	contains(t, out, "0.6000", "1.5000", "over-performing", "fall back to 0.85")
	ordered(t, out, "Blue", "Red")
	if strings.Count(out, "over-performing") != 1 {
		t.Errorf("only rates above 1 are marked over-performing:\n%s", out)
	}
}

func TestRatesMarkdownEmpty(t *testing.T) {
	out := RatesMarkdown(nil, d("0.85"))
	if !strings.Contains(out, "fallback 0.85 applies to every SKU") {
		t.Errorf("empty rates output = %q", out)
	}
}
