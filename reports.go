package cashflow

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Summary is the at-a-glance dashboard over a ledger snapshot: the
// confirmed balance of each funding source in its native currency,
// the overall balance in the reporting currency, and the pending
// forecast total.
type Summary struct {
	Date        Date
	PayoneerUSD Money
	BankILS     Money
	TotalILS    Money
	ForecastUSD Money // pending Forecast income, USD rows only
	Months      []MonthFlow
}

// MonthFlow is one line of the monthly breakdown, confirmed rows only,
// amounts summed without conversion.
type MonthFlow struct {
	Month   Date
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// NewSummary computes the dashboard over the ledger. Default views
// exclude Forecast rows from confirmed balances; the forecast total is
// reported separately.
func NewSummary(l *Ledger, rates Rates) *Summary {
	s := &Summary{
		Date:        Today(),
		PayoneerUSD: l.SourceBalance(Payoneer),
		BankILS:     l.SourceBalance(Bank),
		TotalILS:    l.TotalBalance(rates),
		ForecastUSD: M(l.NetBalance(Forecasts(), ByCurrency(USD)), USD),
	}

	totals := l.MonthlyTotals(Confirmed())
	byMonth := make(map[Date]*MonthFlow)
	for key, sum := range totals {
		flow, ok := byMonth[key.Month]
		if !ok {
			flow = &MonthFlow{Month: key.Month}
			byMonth[key.Month] = flow
		}
		switch key.Kind {
		case Income:
			flow.Income = sum
		case Expense:
			flow.Expense = sum
		}
	}
	for _, flow := range byMonth {
		flow.Net = flow.Income.Sub(flow.Expense)
		s.Months = append(s.Months, *flow)
	}
	slices.SortFunc(s.Months, func(a, b MonthFlow) int {
		switch {
		case a.Month.Before(b.Month):
			return -1
		case a.Month.After(b.Month):
			return 1
		default:
			return 0
		}
	})
	return s
}
