// Package parse converts raw, locale-specific, often malformed spreadsheet
// cells into typed values.
//
// Every function follows the same failure policy: never return an error,
// always return a safe default (zero, false, nil). The ledger sheet is edited
// by hand and contains Russian month names, comma-separated thousands,
// scientific-notation artifacts from broken formulas, and boolean sentinels
// like "да" or "+" — a bad cell must degrade to a default, not abort a sync.
//
// Where the two historical parsing conventions for this sheet disagreed, this
// package follows the defaulting one: missing date parts default rather than
// invalidate the date, and a comma is a thousands separator, not a decimal
// point.
package parse
