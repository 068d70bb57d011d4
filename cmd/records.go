package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/talmi/cashflow"
	"github.com/talmi/cashflow/renderer"
)

// recordsCmd holds the flags for the 'records' subcommand.
type recordsCmd struct {
	status string
	source string
	from   string
	to     string
}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "list ledger records" }
func (*recordsCmd) Usage() string {
	return `cfl records [-status <status>] [-source <source>] [-from <date>] [-to <date>]

  Lists ledger rows with their indices. Indices are the handles used by
  the approve, reconcile and edit commands.
`
}

func (c *recordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only rows with this status (approved, forecast, rejected)")
	f.StringVar(&c.source, "source", "", "Only rows from this source (payoneer, bank)")
	f.StringVar(&c.from, "from", "", "Only rows on or after this date")
	f.StringVar(&c.to, "to", "", "Only rows on or before this date")
}

func (c *recordsCmd) filters() ([]cashflow.Filter, error) {
	var filters []cashflow.Filter
	if c.status != "" {
		status, err := cashflow.ParseStatus(c.status)
		if err != nil {
			return nil, err
		}
		filters = append(filters, cashflow.ByStatus(status))
	}
	if c.source != "" {
		source, err := cashflow.ParseSource(c.source)
		if err != nil {
			return nil, err
		}
		filters = append(filters, cashflow.BySource(source))
	}
	if c.from != "" || c.to != "" {
		var from, to cashflow.Date
		var err error
		if c.from != "" {
			if from, err = cashflow.ParseDate(c.from); err != nil {
				return nil, err
			}
		}
		if c.to != "" {
			if to, err = cashflow.ParseDate(c.to); err != nil {
				return nil, err
			}
		}
		filters = append(filters, cashflow.InRange(from, to))
	}
	return filters, nil
}

func (c *recordsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters, err := c.filters()
	if err != nil {
		return fail(err)
	}
	book, _, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.TransactionsMarkdown(book.Ledger(), filters...))
	return subcommands.ExitSuccess
}
