package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/talmi/cashflow"
)

// reconcileCmd holds the flags for the 'reconcile' subcommand.
type reconcileCmd struct {
	index  int
	actual string
	reject bool
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "settle a forecast against its actual outcome" }
func (*reconcileCmd) Usage() string {
	return `cfl reconcile -i <index> -actual <amount> [-reject]

  Overwrites the forecast amount with the actual one, moves the row to
  approved (or rejected with -reject), and appends an
  "expected/actual" audit trail to the description.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the forecast row")
	f.StringVar(&c.actual, "actual", "", "Actual amount realized")
	f.BoolVar(&c.reject, "reject", false, "Mark the forecast rejected instead of approved")
}

func (c *reconcileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actual, err := decimal.NewFromString(c.actual)
	if err != nil {
		return fail(fmt.Errorf("actual amount %q: %w", c.actual, cashflow.ErrValidation))
	}
	outcome := cashflow.Approved
	if c.reject {
		outcome = cashflow.Rejected
	}

	book, _, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	if err := book.Reconcile(ctx, c.index, actual, outcome); err != nil {
		return fail(err)
	}
	logger.Info().Int("index", c.index).Str("actual", actual.String()).Str("outcome", string(outcome)).Msg("forecast reconciled")
	return subcommands.ExitSuccess
}
