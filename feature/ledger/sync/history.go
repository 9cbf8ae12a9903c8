package sync

import (
	"context"
	"time"

	"ledger-sync/feature/ledger/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder maintains the sync_history audit table. Recording is best effort:
// a failure to write the audit row is logged but never aborts the pass it
// describes, the sheet data itself always wins.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a recorder over the given connection.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	return &Recorder{db: db, logger: logger}
}

// Start inserts a running SyncRun for the given type and returns it.
// Returns nil when the insert fails; Finish tolerates a nil run.
func (r *Recorder) Start(ctx context.Context, syncType string) *models.SyncRun {
	run := &models.SyncRun{
		SyncType:  syncType,
		StartedAt: time.Now(),
		Status:    models.StatusRunning,
	}
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		r.logger.Warn("Failed to record sync start",
			zap.String("sync_type", syncType), zap.Error(err))
		return nil
	}
	return run
}

// Finish finalizes a SyncRun with the processed count and outcome. A non-nil
// syncErr marks the run failed and stores the error text. Finished runs are
// never touched again.
func (r *Recorder) Finish(ctx context.Context, run *models.SyncRun, processed int, syncErr error) {
	if run == nil {
		return
	}

	now := time.Now()
	status := models.StatusCompleted
	errMsg := ""
	if syncErr != nil {
		status = models.StatusFailed
		errMsg = syncErr.Error()
	}

	updates := map[string]any{
		"completed_at":     now,
		"rows_processed":   processed,
		"status":           status,
		"error_message":    errMsg,
		"duration_seconds": now.Sub(run.StartedAt).Seconds(),
	}
	if err := r.db.WithContext(ctx).Model(run).Updates(updates).Error; err != nil {
		r.logger.Warn("Failed to record sync completion",
			zap.String("sync_type", run.SyncType), zap.Error(err))
	}
}

// Recent returns the latest sync runs, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]models.SyncRun, error) {
	var runs []models.SyncRun
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}
