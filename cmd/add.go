package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/talmi/cashflow"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date        string
	kind        string
	amount      string
	currency    string
	source      string
	category    string
	description string
	forecast    bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `cfl add -k <kind> -a <amount> -c <currency> -s <source> [-d <date>] [-cat <category>] [-m <description>] [-forecast]

  Validates and appends a transaction, then saves the whole ledger.
  Without -forecast the record is stored as approved.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", cashflow.Today().String(), "Transaction date")
	f.StringVar(&c.kind, "k", "", "Kind: income or expense")
	f.StringVar(&c.amount, "a", "", "Amount (non-negative)")
	f.StringVar(&c.currency, "c", cashflow.ILS, "Currency: ILS or USD")
	f.StringVar(&c.source, "s", string(cashflow.Bank), "Source: payoneer or bank")
	f.StringVar(&c.category, "cat", "", "Category (forecasts use \"Sales <SKU>\")")
	f.StringVar(&c.description, "m", "", "Description")
	f.BoolVar(&c.forecast, "forecast", false, "Record as a forecast instead of approved")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := cashflow.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	kind, err := cashflow.ParseKind(c.kind)
	if err != nil {
		return fail(err)
	}
	source, err := cashflow.ParseSource(c.source)
	if err != nil {
		return fail(err)
	}
	currency, err := cashflow.ParseCurrency(c.currency)
	if err != nil {
		return fail(err)
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail(fmt.Errorf("amount %q: %w", c.amount, cashflow.ErrValidation))
	}

	status := cashflow.Approved
	if c.forecast {
		status = cashflow.Forecast
	}
	tx := cashflow.Transaction{
		Date:        date,
		Kind:        kind,
		Amount:      amount,
		Currency:    currency,
		Source:      source,
		Category:    c.category,
		Description: c.description,
		Status:      status,
	}

	book, _, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	if err := book.Add(ctx, tx); err != nil {
		return fail(err)
	}
	logger.Info().Str("date", date.String()).Str("amount", amount.String()).Msg("transaction recorded")
	return subcommands.ExitSuccess
}
