// Package cmd implements the CLI application to manage the cashflow
// ledger.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/talmi/cashflow"
	"github.com/talmi/cashflow/sheet"
)

// Register registers every subcommand on the commander. A main package
// calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&recordsCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&ratesCmd{}, "reports")

	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")

	c.Register(&forecastCmd{}, "forecasts")
	c.Register(&approveCmd{}, "forecasts")
	c.Register(&reconcileCmd{}, "forecasts")
}

// as a CLI application it is short-lived, so globals are fine here.

var ledgerFile = flag.String("f", "", "Path to a local CSV ledger file (overrides the Google Sheets store)")
var sheetID = flag.String("sheet", "", "Google Sheets spreadsheet ID (overrides "+cashflow.EnvSpreadsheetID+")")

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// openStore resolves the ledger store: an explicit -f file wins, then
// a spreadsheet from flag or environment, then a local default file.
func openStore(ctx context.Context, cfg cashflow.Config) (cashflow.LedgerStore, error) {
	if *ledgerFile != "" {
		return cashflow.NewFileStore(*ledgerFile), nil
	}
	id := cfg.SpreadsheetID
	if *sheetID != "" {
		id = *sheetID
	}
	if id != "" {
		return sheet.New(ctx, cfg.CredentialsFile, id, cfg.SheetName)
	}
	return cashflow.NewFileStore("transactions.csv"), nil
}

// openBook loads the configuration and the full ledger collection.
func openBook(ctx context.Context) (*cashflow.Book, cashflow.Config, error) {
	cfg, err := cashflow.LoadConfig()
	if err != nil {
		return nil, cfg, err
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, cfg, err
	}
	book, err := cashflow.Open(ctx, store)
	if err != nil {
		return nil, cfg, err
	}
	return book, cfg, nil
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when the renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
