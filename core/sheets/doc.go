// Package sheets provides an abstraction layer for reading Google Sheets.
//
// It wraps the Google Sheets API client to provide a simplified interface for
// the two bulk operations the sync engine needs: listing worksheet titles and
// reading every cell value of one worksheet.
//
// # Reader Interface
//
// The Reader interface abstracts the underlying API client, making it easy to
// substitute a fake spreadsheet in unit tests (see core/sheets/mocks). The
// reader is constructed explicitly and injected into the sync service; there
// is no process-wide client instance.
//
// # Operations
//
//   - Worksheets: worksheet titles in sheet order (used to locate the balance
//     blocks by title keyword).
//   - Values: the whole worksheet as text cells, rows in sheet order.
//
// # Usage
//
//	reader, err := sheets.NewReader(ctx, cfg.Sheets)
//	rows, err := reader.Values(ctx, spreadsheetID, "Платежи")
package sheets
