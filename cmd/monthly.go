package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/talmi/cashflow"
	"github.com/talmi/cashflow/renderer"
)

type monthlyCmd struct {
	forecast bool
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display monthly income/expense totals" }
func (*monthlyCmd) Usage() string {
	return `cfl monthly [-forecast]

  Sums amounts by calendar month and kind. Confirmed rows by default;
  -forecast switches to pending forecasts only. Rows without a parseable
  date are excluded from this view.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.forecast, "forecast", false, "Show forecast rows instead of confirmed ones")
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}

	view := cashflow.Confirmed()
	if c.forecast {
		view = cashflow.Forecasts()
	}

	printMarkdown(renderer.MonthlyMarkdown(book.Ledger().MonthlyTotals(view)))
	return subcommands.ExitSuccess
}
