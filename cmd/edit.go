package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/talmi/cashflow"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	index       int
	date        string
	kind        string
	amount      string
	currency    string
	source      string
	category    string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "rewrite fields of one record" }
func (*editCmd) Usage() string {
	return `cfl edit -i <index> [-d <date>] [-k <kind>] [-a <amount>] [-c <currency>] [-s <source>] [-cat <category>] [-m <description>]

  Rewrites the given fields of a record, leaving the others and its
  status unchanged. Status never moves through edit; use approve or
  reconcile for that.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the row to edit")
	f.StringVar(&c.date, "d", "", "New date")
	f.StringVar(&c.kind, "k", "", "New kind")
	f.StringVar(&c.amount, "a", "", "New amount")
	f.StringVar(&c.currency, "c", "", "New currency")
	f.StringVar(&c.source, "s", "", "New source")
	f.StringVar(&c.category, "cat", "", "New category")
	f.StringVar(&c.description, "m", "", "New description")
}

// patch applies the set flags over the existing record.
func (c *editCmd) patch(tx cashflow.Transaction) (cashflow.Transaction, error) {
	var err error
	if c.date != "" {
		if tx.Date, err = cashflow.ParseDate(c.date); err != nil {
			return tx, err
		}
	}
	if c.kind != "" {
		if tx.Kind, err = cashflow.ParseKind(c.kind); err != nil {
			return tx, err
		}
	}
	if c.amount != "" {
		if tx.Amount, err = decimal.NewFromString(c.amount); err != nil {
			return tx, fmt.Errorf("amount %q: %w", c.amount, cashflow.ErrValidation)
		}
	}
	if c.currency != "" {
		if tx.Currency, err = cashflow.ParseCurrency(c.currency); err != nil {
			return tx, err
		}
	}
	if c.source != "" {
		if tx.Source, err = cashflow.ParseSource(c.source); err != nil {
			return tx, err
		}
	}
	if c.category != "" {
		tx.Category = c.category
	}
	if c.description != "" {
		tx.Description = c.description
	}
	return tx, nil
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	tx, err := book.Ledger().Get(c.index)
	if err != nil {
		return fail(err)
	}
	tx, err = c.patch(tx)
	if err != nil {
		return fail(err)
	}
	if err := book.Edit(ctx, c.index, tx); err != nil {
		return fail(err)
	}
	logger.Info().Int("index", c.index).Msg("record updated")
	return subcommands.ExitSuccess
}
