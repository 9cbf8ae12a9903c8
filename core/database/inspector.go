package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // Pointer because NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	// Raw SHOW COLUMNS gives exact MySQL type strings, the Migrator
	// abstraction does not.
	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	// Normalize types to lowercase
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// MissingTables returns the subset of the given table names that do not exist
// in the connected schema. The sync command uses this at startup to tell the
// operator to run migrate before the first pass.
func MissingTables(db *gorm.DB, tableNames ...string) []string {
	var missing []string
	for _, name := range tableNames {
		if !db.Migrator().HasTable(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
