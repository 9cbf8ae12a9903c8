// Package models defines the persisted entities of the ledger sync feature
// and the column layout of the source spreadsheet.
//
// The database is the sole durable owner of these entities. The spreadsheet
// is the source of truth for content, but the sync engine alone decides how
// external rows map onto persisted keys:
//
//   - SheetTransaction: keyed by (payment_id, client_username,
//     sheet_row_number), append-only ledger semantics.
//   - PayPalBalance, StripeBalance, PayPalWithdrawalBalance: keyed by
//     client_username, one live row per client per table.
//   - SyncRun: append-only audit history of sync passes (table sync_history).
//
// Monetary fields use shopspring/decimal mapped to DECIMAL(15,2) columns.
package models
