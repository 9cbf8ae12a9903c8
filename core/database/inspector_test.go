package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "BIGINT", "NO", "PRI", nil, "auto_increment").
		AddRow("client_username", "VARCHAR(255)", "NO", "MUL", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `sheet_transactions`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "sheet_transactions")
	assert.NoError(t, err)
	assert.Len(t, columns, 2)

	// Types and fields are normalized to lowercase
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "bigint", columns[0].Type)
	assert.Equal(t, "varchar(255)", columns[1].Type)
}

func TestMissingTables(t *testing.T) {
	db, mock := setupMockDB(t)

	// sheet_transactions exists, sync_history does not
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM information_schema.tables").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM information_schema.tables").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	missing := MissingTables(db, "sheet_transactions", "sync_history")
	assert.Equal(t, []string{"sync_history"}, missing)
}
