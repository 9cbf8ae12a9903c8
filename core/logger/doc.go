// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Run Correlation
//
// Every sync pass is assigned a run ID. The WithRunID helper attaches that ID
// to the log entry, ensuring that all logs produced by a single pass can be
// correlated even when the transactions and balances passes interleave.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync service started")
//
//	// In a sync pass:
//	l := logger.WithRunID(log, runID)
//	l.Error("Pass failed", zap.Error(err))
package logger
