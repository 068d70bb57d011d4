package cashflow

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(EnvSpreadsheetID, "")
	t.Setenv(EnvSheetName, "")
	t.Setenv(EnvCredentialsFile, "")
	t.Setenv(EnvUSDToILS, "")
	t.Setenv(EnvDefaultRate, "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SheetName != "transactions" {
		t.Errorf("SheetName = %q, want %q", cfg.SheetName, "transactions")
	}
	if cfg.CredentialsFile != "credentials.json" {
		t.Errorf("CredentialsFile = %q, want %q", cfg.CredentialsFile, "credentials.json")
	}
	if !cfg.USDToILS.Equal(decimal.NewFromFloat(3.8)) {
		t.Errorf("USDToILS = %s, want 3.8", cfg.USDToILS)
	}
	if !cfg.DefaultRealizationRate.Equal(decimal.NewFromFloat(0.85)) {
		t.Errorf("DefaultRealizationRate = %s, want 0.85", cfg.DefaultRealizationRate)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv(EnvSpreadsheetID, "sheet-123")
	t.Setenv(EnvSheetName, "ledger")
	t.Setenv(EnvCredentialsFile, "/etc/creds.json")
	t.Setenv(EnvUSDToILS, "3.65")
	t.Setenv(EnvDefaultRate, "0.5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SpreadsheetID != "sheet-123" {
		t.Errorf("SpreadsheetID = %q", cfg.SpreadsheetID)
	}
	if cfg.SheetName != "ledger" {
		t.Errorf("SheetName = %q", cfg.SheetName)
	}
	if !cfg.USDToILS.Equal(decimal.RequireFromString("3.65")) {
		t.Errorf("USDToILS = %s, want 3.65", cfg.USDToILS)
	}
	if !cfg.DefaultRealizationRate.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("DefaultRealizationRate = %s, want 0.5", cfg.DefaultRealizationRate)
	}
}

func TestLoadConfigBadRates(t *testing.T) {
	cases := []struct {
		name, key, value string
	}{
		{"unparseable usd rate", EnvUSDToILS, "abc"},
		{"zero usd rate", EnvUSDToILS, "0"},
		{"negative usd rate", EnvUSDToILS, "-3.8"},
		{"unparseable realization rate", EnvDefaultRate, "many"},
		{"negative realization rate", EnvDefaultRate, "-0.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(EnvUSDToILS, "")
			t.Setenv(EnvDefaultRate, "")
			t.Setenv(c.key, c.value)
			if _, err := LoadConfig(); !errors.Is(err, ErrValidation) {
				t.Errorf("LoadConfig error = %v, want ErrValidation", err)
			}
		})
	}
}
