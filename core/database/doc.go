// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
//
// # Connect
//
// The generic Connect function establishes a connection to the database and
// tunes the shared connection pool used by the concurrent sync passes.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. MissingTables is
// used at sync startup to detect an unmigrated database, and GetTableColumns
// retrieves exact column definitions for a table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing := database.MissingTables(db, "sheet_transactions", "sync_history")
package database
