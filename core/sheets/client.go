package sheets

import (
	"context"
	"fmt"
	"time"

	gsheets "google.golang.org/api/sheets/v4"

	"google.golang.org/api/option"
)

// Reader defines the interface for bulk spreadsheet reads.
type Reader interface {
	// Worksheets returns the worksheet titles of a spreadsheet, in sheet order.
	Worksheets(ctx context.Context, spreadsheetID string) ([]string, error)
	// Values returns every cell value of one worksheet as text, in row order.
	// Trailing empty cells are absent, rows may be shorter than the header.
	Values(ctx context.Context, spreadsheetID, worksheetTitle string) ([][]string, error)
}

// NewReader creates a Reader backed by the Google Sheets API using a
// service-account credentials file with the read-only spreadsheets scope.
func NewReader(ctx context.Context, cfg Config) (Reader, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}

	return &apiReader{
		svc:     svc,
		timeout: time.Duration(timeout) * time.Second,
	}, nil
}

type apiReader struct {
	svc     *gsheets.Service
	timeout time.Duration
}

func (r *apiReader) Worksheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Fields mask keeps the response to titles only, the spreadsheets can be
	// large and we never need cell data from this call.
	resp, err := r.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (r *apiReader) Values(ctx context.Context, spreadsheetID, worksheetTitle string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Using the bare worksheet title as the A1 range returns the whole sheet.
	resp, err := r.svc.Spreadsheets.Values.Get(spreadsheetID, worksheetTitle).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q from spreadsheet %s: %w", worksheetTitle, spreadsheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, toCellString(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// toCellString converts an API cell value to its text form. With
// FORMATTED_VALUE the API returns strings, but the JSON decoding can still
// surface numbers or bools for untyped responses.
func toCellString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
