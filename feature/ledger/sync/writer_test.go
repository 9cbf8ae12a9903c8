package sync

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ledger-sync/feature/ledger/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
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

func testTransaction(client string, rowNum int) models.SheetTransaction {
	paymentID := int64(1000 + rowNum)
	return models.SheetTransaction{
		ClientUsername: client,
		PaymentID:      &paymentID,
		AmountGross:    decimal.NewFromInt(100),
		SheetRowNumber: rowNum,
		LastSyncedAt:   time.Now(),
	}
}

func TestUpsertTransactions_GeneratesOnDuplicateKey(t *testing.T) {
	db, mock := setupMockDB(t)
	w := NewWriter(db, 500)

	mock.ExpectBegin()
	// MySQL expresses the conflict clause as ON DUPLICATE KEY UPDATE against
	// the composite unique index; every mutable column must be reassigned.
	mock.ExpectExec("INSERT INTO `sheet_transactions` .*ON DUPLICATE KEY UPDATE.*`last_synced_at`.*").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := w.UpsertTransactions(context.Background(), []models.SheetTransaction{
		testTransaction("@alice", 2),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertTransactions_ChunksBatches(t *testing.T) {
	db, mock := setupMockDB(t)
	w := NewWriter(db, 2)

	// 5 rows at batch size 2 -> three statements, each in its own transaction
	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `sheet_transactions`").
			WillReturnResult(sqlmock.NewResult(1, 2))
		mock.ExpectCommit()
	}

	batch := make([]models.SheetTransaction, 0, 5)
	for i := 0; i < 5; i++ {
		batch = append(batch, testTransaction("@alice", i+2))
	}

	err := w.UpsertTransactions(context.Background(), batch)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertTransactions_BatchFailureAborts(t *testing.T) {
	db, mock := setupMockDB(t)
	w := NewWriter(db, 1)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sheet_transactions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sheet_transactions`").
		WillReturnError(fmt.Errorf("connection lost"))
	mock.ExpectRollback()

	err := w.UpsertTransactions(context.Background(), []models.SheetTransaction{
		testTransaction("@alice", 2),
		testTransaction("@bob", 3),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertTransactions_EmptyBatchIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	w := NewWriter(db, 500)

	err := w.UpsertTransactions(context.Background(), nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBalances(t *testing.T) {
	db, mock := setupMockDB(t)
	w := NewWriter(db, 500)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `balances_paypal` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `balances_stripe` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `balances_paypal_withdrawal` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	now := time.Now()

	err := w.UpsertPayPalBalances(ctx, []models.PayPalBalance{
		{ClientUsername: "@alice", Balance: decimal.NewFromInt(100), LastSyncedAt: now},
	})
	assert.NoError(t, err)

	err = w.UpsertStripeBalances(ctx, []models.StripeBalance{
		{ClientUsername: "@carol", Balance: decimal.NewFromInt(200), LastSyncedAt: now},
	})
	assert.NoError(t, err)

	err = w.UpsertWithdrawalBalances(ctx, []models.PayPalWithdrawalBalance{
		{ClientUsername: "@dave", WithdrawalAmount: decimal.NewFromInt(50), LastSyncedAt: now},
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
