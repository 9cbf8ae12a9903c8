package sync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ledger-sync/core/sheets"
	"ledger-sync/feature/ledger/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PassResult is the outcome of one sync pass of one type.
type PassResult struct {
	Processed int
	Skipped   int
	Err       error
}

// Service runs the transaction and balance sync passes against an injected
// spreadsheet reader and database connection.
type Service struct {
	reader    sheets.Reader
	writer    *Writer
	history   *Recorder
	logger    *zap.Logger
	sheetsCfg sheets.Config
}

// NewService creates the sync service.
func NewService(reader sheets.Reader, db *gorm.DB, logg *zap.Logger, cfg Config, sheetsCfg sheets.Config) *Service {
	return &Service{
		reader:    reader,
		writer:    NewWriter(db, cfg.BatchSize),
		history:   NewRecorder(db, logg),
		logger:    logg,
		sheetsCfg: sheetsCfg,
	}
}

// History exposes the audit recorder, used by the history command.
func (s *Service) History() *Recorder {
	return s.history
}

// SyncTransactions runs the transactions pass under a SyncRun audit record.
// The record is finalized with the processed count and outcome regardless of
// how the pass ended.
func (s *Service) SyncTransactions(ctx context.Context, logg *zap.Logger) PassResult {
	run := s.history.Start(ctx, models.SyncTypeTransactions)
	processed, skipped, err := s.syncTransactions(ctx, logg)
	s.history.Finish(ctx, run, processed, err)

	if err != nil {
		logg.Error("Transaction sync failed", zap.Int("processed", processed), zap.Error(err))
	}
	return PassResult{Processed: processed, Skipped: skipped, Err: err}
}

func (s *Service) syncTransactions(ctx context.Context, logg *zap.Logger) (int, int, error) {
	spreadsheetID := s.sheetsCfg.TransactionsSpreadsheetID

	// The ledger lives on the first worksheet.
	titles, err := s.reader.Worksheets(ctx, spreadsheetID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list worksheets: %w", err)
	}
	if len(titles) == 0 {
		return 0, 0, fmt.Errorf("transactions spreadsheet has no worksheets")
	}

	rows, err := s.reader.Values(ctx, spreadsheetID, titles[0])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	if len(rows) < 2 {
		logg.Warn("Transactions sheet is empty or headers only")
		return 0, 0, nil
	}

	logg.Info("Fetched transactions from sheet", zap.Int("rows", len(rows)-1))

	syncedAt := time.Now()
	batch := make([]models.SheetTransaction, 0, s.writer.batchSize)
	processed := 0
	skipped := 0

	// Row 1 is the header, data starts at sheet row 2. The persisted
	// sheet_row_number preserves sheet order within the pass.
	for i, row := range rows[1:] {
		res := MapTransactionRow(row, i+2, syncedAt)
		if res.Skipped() {
			skipped++
			continue
		}

		batch = append(batch, *res.Transaction)
		if len(batch) >= s.writer.batchSize {
			if err := s.writer.UpsertTransactions(ctx, batch); err != nil {
				return processed, skipped, err
			}
			processed += len(batch)
			batch = batch[:0]
			logg.Info("Transactions batch persisted", zap.Int("processed", processed))
		}
	}

	if len(batch) > 0 {
		if err := s.writer.UpsertTransactions(ctx, batch); err != nil {
			return processed, skipped, err
		}
		processed += len(batch)
	}

	logg.Info("Transactions synced", zap.Int("processed", processed), zap.Int("skipped", skipped))
	return processed, skipped, nil
}

// SyncBalances runs the balances pass under a SyncRun audit record. The three
// balance blocks live on separate worksheets located by title keyword.
func (s *Service) SyncBalances(ctx context.Context, logg *zap.Logger) PassResult {
	run := s.history.Start(ctx, models.SyncTypeBalances)
	processed, skipped, err := s.syncBalances(ctx, logg)
	s.history.Finish(ctx, run, processed, err)

	if err != nil {
		logg.Error("Balance sync failed", zap.Int("processed", processed), zap.Error(err))
	}
	return PassResult{Processed: processed, Skipped: skipped, Err: err}
}

func (s *Service) syncBalances(ctx context.Context, logg *zap.Logger) (int, int, error) {
	spreadsheetID := s.sheetsCfg.BalancesSpreadsheetID
	if spreadsheetID == "" {
		logg.Info("Balances spreadsheet not configured, skipping")
		return 0, 0, nil
	}

	titles, err := s.reader.Worksheets(ctx, spreadsheetID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list worksheets: %w", err)
	}

	processed := 0
	skipped := 0
	for _, title := range titles {
		var (
			n, sk   int
			syncErr error
		)

		lower := strings.ToLower(title)
		switch {
		case strings.Contains(lower, "paypal") && !strings.Contains(lower, "вывод"):
			n, sk, syncErr = s.syncPayPalBalances(ctx, spreadsheetID, title)
		case strings.Contains(lower, "stripe"):
			n, sk, syncErr = s.syncStripeBalances(ctx, spreadsheetID, title)
		case strings.Contains(lower, "вывод") || strings.Contains(lower, "withdrawal"):
			n, sk, syncErr = s.syncWithdrawalBalances(ctx, spreadsheetID, title)
		default:
			continue
		}

		if syncErr != nil {
			return processed, skipped, fmt.Errorf("worksheet %q: %w", title, syncErr)
		}
		processed += n
		skipped += sk
		logg.Info("Balance worksheet synced", zap.String("worksheet", title), zap.Int("rows", n))
	}

	return processed, skipped, nil
}

func (s *Service) syncPayPalBalances(ctx context.Context, spreadsheetID, title string) (int, int, error) {
	rows, err := s.reader.Values(ctx, spreadsheetID, title)
	if err != nil {
		return 0, 0, err
	}
	if len(rows) < 2 {
		return 0, 0, nil
	}

	syncedAt := time.Now()
	var batch []models.PayPalBalance
	skipped := 0
	for _, row := range rows[1:] {
		b, ok := MapPayPalBalanceRow(row, syncedAt)
		if !ok {
			skipped++
			continue
		}
		batch = append(batch, b)
	}
	if len(batch) == 0 {
		return 0, skipped, nil
	}

	if err := s.writer.UpsertPayPalBalances(ctx, batch); err != nil {
		return 0, skipped, err
	}
	return len(batch), skipped, nil
}

func (s *Service) syncStripeBalances(ctx context.Context, spreadsheetID, title string) (int, int, error) {
	rows, err := s.reader.Values(ctx, spreadsheetID, title)
	if err != nil {
		return 0, 0, err
	}
	if len(rows) < 2 {
		return 0, 0, nil
	}

	syncedAt := time.Now()
	var batch []models.StripeBalance
	skipped := 0
	for _, row := range rows[1:] {
		b, ok := MapStripeBalanceRow(row, syncedAt)
		if !ok {
			skipped++
			continue
		}
		batch = append(batch, b)
	}
	if len(batch) == 0 {
		return 0, skipped, nil
	}

	if err := s.writer.UpsertStripeBalances(ctx, batch); err != nil {
		return 0, skipped, err
	}
	return len(batch), skipped, nil
}

func (s *Service) syncWithdrawalBalances(ctx context.Context, spreadsheetID, title string) (int, int, error) {
	rows, err := s.reader.Values(ctx, spreadsheetID, title)
	if err != nil {
		return 0, 0, err
	}
	if len(rows) < 2 {
		return 0, 0, nil
	}

	syncedAt := time.Now()
	var batch []models.PayPalWithdrawalBalance
	skipped := 0
	for _, row := range rows[1:] {
		b, ok := MapWithdrawalBalanceRow(row, syncedAt)
		if !ok {
			skipped++
			continue
		}
		batch = append(batch, b)
	}
	if len(batch) == 0 {
		return 0, skipped, nil
	}

	if err := s.writer.UpsertWithdrawalBalances(ctx, batch); err != nil {
		return 0, skipped, err
	}
	return len(batch), skipped, nil
}
