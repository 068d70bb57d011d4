package cashflow

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment variables read by LoadConfig. A .env file in the working
// directory is picked up first when present.
const (
	EnvSpreadsheetID   = "CASHFLOW_SHEET_ID"
	EnvSheetName       = "CASHFLOW_SHEET_NAME"
	EnvCredentialsFile = "CASHFLOW_CREDENTIALS"
	EnvUSDToILS        = "CASHFLOW_USD_TO_ILS"
	EnvDefaultRate     = "CASHFLOW_DEFAULT_REALIZATION_RATE"
)

// Config holds the load-time constants of the engine and the ledger
// store coordinates. Rates are configured, never fetched at runtime.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string

	// USDToILS is the fixed conversion rate used for the
	// reporting-currency total.
	USDToILS decimal.Decimal

	// DefaultRealizationRate is the fallback applied when a SKU has no
	// defined historical rate. It is always explicit: forecast
	// generation never guesses.
	DefaultRealizationRate decimal.Decimal
}

// LoadConfig resolves the configuration from the environment, loading a
// .env file first when one exists. Unset values fall back to defaults:
// sheet name "transactions", credentials "credentials.json", rate 3.8,
// default realization rate 0.85.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		SpreadsheetID:          os.Getenv(EnvSpreadsheetID),
		SheetName:              envOr(EnvSheetName, "transactions"),
		CredentialsFile:        envOr(EnvCredentialsFile, "credentials.json"),
		USDToILS:               decimal.NewFromFloat(3.8),
		DefaultRealizationRate: decimal.NewFromFloat(0.85),
	}

	if v := os.Getenv(EnvUSDToILS); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil || !rate.IsPositive() {
			return cfg, fmt.Errorf("%s=%q is not a positive rate: %w", EnvUSDToILS, v, ErrValidation)
		}
		cfg.USDToILS = rate
	}
	if v := os.Getenv(EnvDefaultRate); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil || rate.IsNegative() {
			return cfg, fmt.Errorf("%s=%q is not a valid rate: %w", EnvDefaultRate, v, ErrValidation)
		}
		cfg.DefaultRealizationRate = rate
	}
	return cfg, nil
}

// Rates returns the conversion rates configured for reporting.
func (c Config) Rates() Rates { return NewRates(c.USDToILS) }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
