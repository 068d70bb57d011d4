package cashflow

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Header is the fixed column order of the backing table. The status
// column is optional in legacy schemas; everything after it is ignored
// on read.
var Header = []string{"date", "kind", "amount", "currency", "source", "category", "description", "status"}

// column indices into Header.
const (
	colDate = iota
	colKind
	colAmount
	colCurrency
	colSource
	colCategory
	colDescription
	colStatus
)

// EncodeRow renders a transaction as one table row in Header order,
// using canonical forms throughout.
func EncodeRow(tx Transaction) []string {
	return []string{
		tx.Date.String(),
		string(tx.Kind),
		tx.Amount.String(),
		tx.Currency,
		string(tx.Source),
		tx.Category,
		tx.Description,
		string(tx.Status),
	}
}

// DecodeRow reads one table row into a transaction. This is the load
// boundary: it never fails. Malformed fields are coerced to safe
// defaults instead of rejecting the row, so a load never breaks on
// messy historical data:
//
//   - unparseable date     → zero Date (excluded from monthly views)
//   - unparseable or negative amount → 0
//   - unknown kind         → Expense
//   - unknown currency     → ILS
//   - unknown source       → Bank
//   - missing/unknown status → Approved (legacy rows predate the column)
//
// Short rows are treated as if the missing trailing columns were empty;
// extra columns are ignored.
func DecodeRow(cells []string) Transaction {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	tx := Transaction{
		Date:        ParseDateOrZero(cell(colDate)),
		Category:    cell(colCategory),
		Description: cell(colDescription),
	}

	var err error
	if tx.Kind, err = ParseKind(cell(colKind)); err != nil {
		tx.Kind = Expense
	}
	if tx.Amount, err = decimal.NewFromString(normalizeAmount(cell(colAmount))); err != nil || tx.Amount.IsNegative() {
		tx.Amount = decimal.Zero
	}
	tx.Currency = cell(colCurrency)
	if !ValidCurrency(tx.Currency) {
		tx.Currency = ILS
	}
	if tx.Source, err = ParseSource(cell(colSource)); err != nil {
		tx.Source = Bank
	}
	if tx.Status, err = ParseStatus(cell(colStatus)); err != nil {
		tx.Status = Approved
	}
	return tx
}

// normalizeAmount strips thousands separators and currency symbols that
// show up in hand-typed sheet cells, e.g. "1,234.50 ₪".
func normalizeAmount(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Trim(s, "₪$ ")
	return s
}

// EncodeRows renders the full collection as a table: the header row
// followed by one row per transaction, in the exact order given.
func EncodeRows(txs []Transaction) [][]string {
	rows := make([][]string, 0, len(txs)+1)
	rows = append(rows, Header)
	for _, tx := range txs {
		rows = append(rows, EncodeRow(tx))
	}
	return rows
}

// DecodeRows reads a full table, skipping the header row when present.
func DecodeRows(rows [][]string) []Transaction {
	txs := make([]Transaction, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		txs = append(txs, DecodeRow(row))
	}
	return txs
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.TrimSpace(row[0])
	// "תאריך" is the date column header of the legacy spreadsheet.
	return strings.EqualFold(first, Header[0]) || first == "תאריך"
}
