package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/talmi/cashflow"
	"github.com/talmi/cashflow/renderer"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display historical realization rates per SKU" }
func (*ratesCmd) Usage() string {
	return `cfl rates

  Shows, for each SKU with forecast history, the ratio of approved to
  forecast revenue. A ratio above 1 means the SKU out-performed its
  forecasts.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RatesMarkdown(cashflow.RealizationRates(book.Ledger()), cfg.DefaultRealizationRate))
	return subcommands.ExitSuccess
}
