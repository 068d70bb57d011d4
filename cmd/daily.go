package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/talmi/cashflow"
	"github.com/talmi/cashflow/renderer"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	from string
	to   string
	all  bool
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display day-by-day totals per status" }
func (*dailyCmd) Usage() string {
	return `cfl daily [-from <date>] [-to <date>] [-all]

  Sums amounts by calendar day and status, the view used to follow
  forecasts against confirmed income over a date range. Forecast and
  approved rows by default; -all includes rejected ones. Rows without
  a parseable date are excluded from this view.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Only rows on or after this date")
	f.StringVar(&c.to, "to", "", "Only rows on or before this date")
	f.BoolVar(&c.all, "all", false, "Include rejected rows")
}

func (c *dailyCmd) filters() ([]cashflow.Filter, error) {
	var filters []cashflow.Filter
	if !c.all {
		filters = append(filters, func(t cashflow.Transaction) bool {
			return t.Status != cashflow.Rejected
		})
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

func (c *dailyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters, err := c.filters()
	if err != nil {
		return fail(err)
	}
	book, _, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DailyMarkdown(book.Ledger().DailyStatusTotals(filters...)))
	return subcommands.ExitSuccess
}
