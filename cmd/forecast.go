package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/talmi/cashflow"
)

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	sku    string
	units  int
	profit string
	month  string
	rate   string
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "generate a sales forecast" }
func (*forecastCmd) Usage() string {
	return `cfl forecast -sku <sku> -units <n> -profit <per-unit> [-month <date>] [-rate <ratio>]

  Builds a forecast from unit count and per-unit profit, discounted by
  the SKU's historical realization rate. Without -rate the rate comes
  from history, falling back to the configured default when the SKU has
  none.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sku, "sku", "", "Product SKU")
	f.IntVar(&c.units, "units", 0, "Expected unit count (positive integer)")
	f.StringVar(&c.profit, "profit", "", "Profit per unit in USD (non-negative)")
	f.StringVar(&c.month, "month", cashflow.Today().String(), "Any date inside the forecast month")
	f.StringVar(&c.rate, "rate", "", "Override the realization rate")
}

func (c *forecastCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := cashflow.ParseDate(c.month)
	if err != nil {
		return fail(err)
	}
	profit, err := decimal.NewFromString(c.profit)
	if err != nil {
		return fail(fmt.Errorf("profit %q: %w", c.profit, cashflow.ErrValidation))
	}

	book, cfg, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}

	var rate decimal.Decimal
	if c.rate != "" {
		if rate, err = decimal.NewFromString(c.rate); err != nil {
			return fail(fmt.Errorf("rate %q: %w", c.rate, cashflow.ErrValidation))
		}
	} else {
		rates := cashflow.RealizationRates(book.Ledger())
		rate = cashflow.RateOr(rates, c.sku, cfg.DefaultRealizationRate)
	}

	tx, err := cashflow.GenerateForecast(c.sku, c.units, profit, month, rate)
	if err != nil {
		return fail(err)
	}
	if err := book.Add(ctx, tx); err != nil {
		return fail(err)
	}
	logger.Info().
		Str("sku", c.sku).
		Str("rate", rate.String()).
		Str("amount", tx.Amount.String()).
		Msg("forecast recorded")
	return subcommands.ExitSuccess
}
