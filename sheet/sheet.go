// Package sheet implements the ledger store over a Google Sheets
// worksheet, the backing table the ledger historically lives in.
package sheet

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/talmi/cashflow"
)

// Store reads and writes the whole transaction table of one worksheet.
// It implements cashflow.LedgerStore.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	log           zerolog.Logger
}

// New authenticates with a service-account credentials file and binds
// to one worksheet of one spreadsheet.
func New(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*Store, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is missing: %w", cashflow.ErrValidation)
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create sheets client: %v: %w", err, cashflow.ErrStoreUnavailable)
	}
	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		log:           zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("sheet", sheetName).Logger(),
	}, nil
}

// Load reads every row of the worksheet. The first row is the header;
// missing trailing columns come back as short rows and are filled with
// empty defaults by the row codec, extra columns are ignored.
func (s *Store) Load(ctx context.Context) ([]cashflow.Transaction, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("could not read worksheet %q: %v: %w", s.sheetName, err, cashflow.ErrStoreUnavailable)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		rows = append(rows, cells)
	}
	txs := cashflow.DecodeRows(rows)
	s.log.Debug().Int("rows", len(txs)).Msg("ledger loaded")
	return txs, nil
}

// Save performs a full-table replace: clear the worksheet, then write
// the header row plus all data rows in the exact order given. There is
// no optimistic-lock check; with two concurrent sessions the later
// save wins silently.
func (s *Store) Save(ctx context.Context, rows []cashflow.Transaction) error {
	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, s.sheetName, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("could not clear worksheet %q: %v: %w", s.sheetName, err, cashflow.ErrStoreUnavailable)
	}

	values := make([][]interface{}, 0, len(rows)+1)
	for _, row := range cashflow.EncodeRows(rows) {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		values = append(values, cells)
	}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, s.sheetName, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("could not write worksheet %q: %v: %w", s.sheetName, err, cashflow.ErrStoreUnavailable)
	}
	s.log.Debug().Int("rows", len(rows)).Msg("ledger saved")
	return nil
}
