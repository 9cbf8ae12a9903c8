package sync

import (
	"context"
	"sync"
	"time"

	"ledger-sync/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report aggregates the outcome of one full pass over both sync types.
type Report struct {
	RunID        string
	Elapsed      time.Duration
	Transactions PassResult
	Balances     PassResult
}

// Failed reports whether either sync type ended in error.
func (r Report) Failed() bool {
	return r.Transactions.Err != nil || r.Balances.Err != nil
}

// Scheduler orchestrates full sync passes, either one-shot or repeating on a
// fixed interval. It has no terminal state short of context cancellation: an
// error escaping a full pass is logged and the loop continues after the same
// sleep, so a transient Sheets or database outage never kills the service.
type Scheduler struct {
	service  *Service
	interval time.Duration
	logger   *zap.Logger
}

// NewScheduler creates a scheduler for the given service.
func NewScheduler(service *Service, cfg Config, logg *zap.Logger) *Scheduler {
	interval := time.Duration(cfg.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{service: service, interval: interval, logger: logg}
}

// RunOnce executes one full synchronization pass. The transactions and
// balances passes touch disjoint tables and have no ordering dependency, so
// they run concurrently; each finalizes its own SyncRun regardless of whether
// the sibling succeeded.
func (s *Scheduler) RunOnce(ctx context.Context) Report {
	report := Report{RunID: uuid.NewString()}
	logg := logger.WithRunID(s.logger, report.RunID)

	start := time.Now()
	logg.Info("Sync pass started")

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		report.Transactions = s.service.SyncTransactions(ctx, logg)
	}()

	go func() {
		defer wg.Done()
		report.Balances = s.service.SyncBalances(ctx, logg)
	}()

	wg.Wait()
	report.Elapsed = time.Since(start)

	logg.Info("Sync pass finished",
		zap.Duration("elapsed", report.Elapsed),
		zap.Int("transactions_processed", report.Transactions.Processed),
		zap.Int("transactions_skipped", report.Transactions.Skipped),
		zap.Int("balances_processed", report.Balances.Processed),
		zap.Bool("failed", report.Failed()),
	)
	return report
}

// RunForever repeats RunOnce with the configured sleep between passes until
// the context is cancelled. Pass failures are already logged and recorded in
// sync_history; the next scheduled pass is the retry.
func (s *Scheduler) RunForever(ctx context.Context) {
	s.logger.Info("Sync service started", zap.Duration("interval", s.interval))

	for {
		s.RunOnce(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("Sync service stopped")
			return
		case <-time.After(s.interval):
		}
	}
}
