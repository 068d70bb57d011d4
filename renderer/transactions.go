package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/talmi/cashflow"
)

// TransactionsMarkdown renders a listing of ledger rows with their
// positional indices, the only identity a row has.
func TransactionsMarkdown(ledger *cashflow.Ledger, filters ...cashflow.Filter) string {
	table := md.TableSet{
		Header: []string{"#", "Date", "Kind", "Amount", "Cur", "Source", "Category", "Status", "Description"},
		Rows:   [][]string{},
	}
	for i, tx := range ledger.Transactions(filters...) {
		date := tx.Date.String()
		if date == "" {
			date = "?"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i),
			date,
			string(tx.Kind),
			tx.Amount.StringFixed(2),
			tx.Currency,
			string(tx.Source),
			tx.Category,
			string(tx.Status),
			tx.Description,
		})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	if len(table.Rows) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}
	doc.Table(table)
	return doc.String()
}

// RatesMarkdown renders the realization-rate map in stable SKU order,
// marking over-performing SKUs (rate above 1).
func RatesMarkdown(rates map[string]decimal.Decimal, fallback decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(rates) == 0 {
		doc.PlainText(fmt.Sprintf("No historical rates; fallback %s applies to every SKU.", fallback))
		return doc.String()
	}

	skus := make([]string, 0, len(rates))
	for sku := range rates {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"SKU", "Rate", "Note"},
		Rows:   [][]string{},
	}
	one := decimal.NewFromInt(1)
	for _, sku := range skus {
		note := ""
		if rates[sku].GreaterThan(one) {
			note = "over-performing"
		}
		table.Rows = append(table.Rows, []string{sku, rates[sku].StringFixed(4), note})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("SKUs without history fall back to %s.", fallback))
	return doc.String()
}
