package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"

	"github.com/talmi/cashflow"
)

// approveCmd holds the flags for the 'approve' subcommand.
type approveCmd struct{}

func (*approveCmd) Name() string     { return "approve" }
func (*approveCmd) Synopsis() string { return "bulk-approve forecasts as predicted" }
func (*approveCmd) Usage() string {
	return `cfl approve <index>...

  Sets the listed forecast rows to approved, leaving their amounts
  unchanged. All indices must refer to forecast rows or nothing is
  changed. Use 'cfl records -status forecast' to find indices.
`
}

func (c *approveCmd) SetFlags(f *flag.FlagSet) {}

// parseIndices turns the positional arguments into ledger indices.
func parseIndices(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no indices given: %w", cashflow.ErrValidation)
	}
	indices := make([]int, 0, len(args))
	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("index %q is not a number: %w", arg, cashflow.ErrValidation)
		}
		indices = append(indices, i)
	}
	return indices, nil
}

func (c *approveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	indices, err := parseIndices(f.Args())
	if err != nil {
		return fail(err)
	}
	book, _, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	if err := book.BulkApprove(ctx, indices); err != nil {
		return fail(err)
	}
	logger.Info().Ints("indices", indices).Msg("forecasts approved")
	return subcommands.ExitSuccess
}
