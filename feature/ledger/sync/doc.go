// Package sync implements the Google-Sheets-to-database synchronization
// engine: the only component of the exchange service with real algorithmic
// concerns.
//
// # Pipeline
//
// One pass is linear with two concurrent branches:
//
//  1. The injected sheets.Reader bulk-reads raw rows from the remote
//     spreadsheet (one call per worksheet, no pagination).
//  2. Row mapping (rows.go) normalizes dirty, locale-specific cells into
//     typed values via the parse package, returning a typed per-row result so
//     one bad row is counted and skipped, never aborting its batch.
//  3. The Writer upserts normalized batches keyed on natural composite keys,
//     in bounded chunks, each chunk in its own transaction. Re-running an
//     unchanged sheet leaves every table unchanged.
//  4. The Recorder books each pass into the sync_history audit table.
//
// The Scheduler runs the transactions and balances passes concurrently; they
// share only the database connection pool and fail independently. RunForever
// repeats passes on a fixed interval and survives any transient outage, the
// next scheduled pass is the retry.
package sync
