package renderer

import (
	"bytes"
	"sort"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/talmi/cashflow"
)

// MonthlyMarkdown renders a (month, kind) breakdown in chronological
// order.
func MonthlyMarkdown(totals map[cashflow.MonthKind]decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(totals) == 0 {
		doc.PlainText("No dated transactions.")
		return doc.String()
	}

	keys := make([]cashflow.MonthKind, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Month != keys[j].Month {
			return keys[i].Month.Before(keys[j].Month)
		}
		return keys[i].Kind < keys[j].Kind
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Month", "Kind", "Total"},
		Rows:   [][]string{},
	}
	for _, key := range keys {
		table.Rows = append(table.Rows, []string{
			key.Month.Format("2006-01"),
			string(key.Kind),
			totals[key].StringFixed(2),
		})
	}
	doc.Table(table)
	return doc.String()
}
