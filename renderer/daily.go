package renderer

import (
	"bytes"
	"sort"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/talmi/cashflow"
)

// DailyMarkdown renders a (date, status) breakdown in chronological
// order, the view used to follow forecasts against confirmed income
// day by day.
func DailyMarkdown(totals map[cashflow.DayStatus]decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(totals) == 0 {
		doc.PlainText("No dated transactions.")
		return doc.String()
	}

	keys := make([]cashflow.DayStatus, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Date != keys[j].Date {
			return keys[i].Date.Before(keys[j].Date)
		}
		return keys[i].Status < keys[j].Status
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Status", "Total"},
		Rows:   [][]string{},
	}
	for _, key := range keys {
		table.Rows = append(table.Rows, []string{
			key.Date.String(),
			string(key.Status),
			totals[key].StringFixed(2),
		})
	}
	doc.Table(table)
	return doc.String()
}
