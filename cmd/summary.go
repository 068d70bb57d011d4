package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/talmi/cashflow"
	"github.com/talmi/cashflow/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the cashflow dashboard" }
func (*summaryCmd) Usage() string {
	return `cfl summary

  Displays the confirmed balance of each source in its native currency,
  the overall balance in ILS, pending forecasts, and a monthly breakdown.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.SummaryMarkdown(cashflow.NewSummary(book.Ledger(), cfg.Rates())))
	return subcommands.ExitSuccess
}
