package sync

import (
	"context"
	"fmt"
	"testing"

	"ledger-sync/feature/ledger/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecorder_StartAndFinish(t *testing.T) {
	db, mock := setupMockDB(t)
	r := NewRecorder(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_history`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	run := r.Start(context.Background(), models.SyncTypeTransactions)
	require.NotNil(t, run)
	assert.Equal(t, int64(7), run.ID)
	assert.Equal(t, models.StatusRunning, run.Status)
	assert.False(t, run.StartedAt.IsZero())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `sync_history` SET").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "", 1500, models.StatusCompleted, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r.Finish(context.Background(), run, 1500, nil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecorder_FinishRecordsFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	r := NewRecorder(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_history`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	run := r.Start(context.Background(), models.SyncTypeBalances)
	require.NotNil(t, run)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `sync_history` SET").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "worksheet \"Stripe\": connection lost", 40, models.StatusFailed, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r.Finish(context.Background(), run, 40, fmt.Errorf("worksheet %q: connection lost", "Stripe"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecorder_StartFailureIsBestEffort(t *testing.T) {
	db, mock := setupMockDB(t)
	r := NewRecorder(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_history`").
		WillReturnError(fmt.Errorf("table missing"))
	mock.ExpectRollback()

	// A failed audit insert must not abort the pass: nil run, no panic
	run := r.Start(context.Background(), models.SyncTypeTransactions)
	assert.Nil(t, run)

	// Finish tolerates the nil run without touching the database
	r.Finish(context.Background(), run, 10, nil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecorder_Recent(t *testing.T) {
	db, mock := setupMockDB(t)
	r := NewRecorder(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "sync_type", "status", "rows_processed"}).
		AddRow(2, models.SyncTypeBalances, models.StatusCompleted, 12).
		AddRow(1, models.SyncTypeTransactions, models.StatusFailed, 0)

	mock.ExpectQuery("SELECT \\* FROM `sync_history` ORDER BY started_at DESC LIMIT").
		WillReturnRows(rows)

	runs, err := r.Recent(context.Background(), 2)
	assert.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, models.SyncTypeBalances, runs[0].SyncType)
	assert.Equal(t, models.StatusFailed, runs[1].Status)
}
