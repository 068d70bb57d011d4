package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/talmi/cashflow"
)

// SummaryMarkdown renders the dashboard: per-source native balances,
// the overall reporting-currency balance, the pending forecast total,
// and the monthly breakdown.
func SummaryMarkdown(s *cashflow.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cashflow on %s", s.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Balance", "Amount"},
		Rows: [][]string{
			{"Payoneer (USD)", s.PayoneerUSD.String()},
			{"Bank (ILS)", s.BankILS.String()},
			{"Total (ILS)", s.TotalILS.String()},
			{"Pending forecasts (USD)", s.ForecastUSD.String()},
		},
	})

	if len(s.Months) > 0 {
		doc.H2("Monthly")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Month", "Income", "Expense", "Net"},
			Rows:   [][]string{},
		}
		for _, m := range s.Months {
			table.Rows = append(table.Rows, []string{
				m.Month.Format("2006-01"),
				m.Income.StringFixed(2),
				m.Expense.StringFixed(2),
				m.Net.StringFixed(2),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
