package cashflow

import "github.com/shopspring/decimal"

// NetBalance sums income minus expense amounts over the rows matching
// every filter. No currency conversion happens here: callers must
// either filter to a single currency or convert beforehand. The result
// is independent of row order.
func (l *Ledger) NetBalance(filters ...Filter) decimal.Decimal {
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range l.Transactions(filters...) {
		switch tx.Kind {
		case Income:
			income = income.Add(tx.Amount)
		case Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income.Sub(expense)
}

// SourceBalance computes the confirmed balance of a funding source in
// its native currency. Only rows whose currency matches the source's
// native currency participate; a currency-mismatched row (say an ILS
// expense recorded against Payoneer) is left to the reporting-currency
// total, where conversion is explicit.
func (l *Ledger) SourceBalance(s Source) Money {
	native := s.NativeCurrency()
	net := l.NetBalance(Confirmed(), BySource(s), ByCurrency(native))
	return M(net, native)
}

// TotalBalance computes the overall confirmed balance across all
// sources, converting every row to the reporting currency.
func (l *Ledger) TotalBalance(rates Rates) Money {
	total := decimal.Zero
	for _, tx := range l.Transactions(Confirmed()) {
		amount := rates.ReportingAmount(tx.Amount, tx.Currency)
		if tx.Kind == Expense {
			amount = amount.Neg()
		}
		total = total.Add(amount)
	}
	return M(total, ILS)
}

// MonthKind keys a monthly breakdown: the calendar month (as its first
// day) and the flow direction.
type MonthKind struct {
	Month Date
	Kind  Kind
}

// MonthlyTotals groups matching rows by (calendar month, kind) and sums
// their amounts without conversion. Rows with a zero date are excluded
// from this time-bucketed view.
func (l *Ledger) MonthlyTotals(filters ...Filter) map[MonthKind]decimal.Decimal {
	totals := make(map[MonthKind]decimal.Decimal)
	for _, tx := range l.Transactions(filters...) {
		if tx.Date.IsZero() {
			continue
		}
		key := MonthKind{Month: tx.Date.StartOfMonth(), Kind: tx.Kind}
		totals[key] = totals[key].Add(tx.Amount)
	}
	return totals
}

// CategoryTotals groups matching rows by category and sums their
// amounts without conversion. Zero-dated rows are retained here: only
// time-bucketed views drop them.
func (l *Ledger) CategoryTotals(filters ...Filter) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range l.Transactions(filters...) {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

// DayStatus keys a reconciliation view: one calendar day and one
// status.
type DayStatus struct {
	Date   Date
	Status Status
}

// DailyStatusTotals groups matching rows by (date, status) and sums
// their amounts. Zero-dated rows are excluded, as in every
// time-bucketed view.
func (l *Ledger) DailyStatusTotals(filters ...Filter) map[DayStatus]decimal.Decimal {
	totals := make(map[DayStatus]decimal.Decimal)
	for _, tx := range l.Transactions(filters...) {
		if tx.Date.IsZero() {
			continue
		}
		key := DayStatus{Date: tx.Date, Status: tx.Status}
		totals[key] = totals[key].Add(tx.Amount)
	}
	return totals
}
