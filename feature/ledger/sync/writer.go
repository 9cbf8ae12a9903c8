package sync

import (
	"context"

	"ledger-sync/feature/ledger/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transactionUpdateColumns are the mutable columns overwritten when an
// incoming row collides with the (payment_id, client_username,
// sheet_row_number) key. Overwriting every mutable field plus last_synced_at
// is what makes repeated full-sheet re-syncs convergent.
var transactionUpdateColumns = []string{
	"transaction_date", "amount_gross", "payment_system", "buyer_email",
	"intermediary_status", "credential_type", "client_credentials",
	"ali_commission", "p2p_commission", "paypal_commission",
	"paypal_withdrawal_commission", "withdrawal_amount", "withdrawal_received",
	"comment", "row_hash", "last_synced_at",
}

var paypalBalanceUpdateColumns = []string{
	"balance", "comment_1", "comment_2", "comment_3", "last_synced_at",
}

var stripeBalanceUpdateColumns = []string{
	"balance", "transaction_date", "buyer_credentials", "comment_1", "last_synced_at",
}

var withdrawalBalanceUpdateColumns = []string{
	"withdrawal_amount", "comment_1", "comment_2", "comment_3", "last_synced_at",
}

// Writer persists normalized batches with idempotent insert-or-update
// semantics. Batches are split into bounded chunks so a large sheet never
// produces one oversized statement; each chunk runs in its own transaction.
type Writer struct {
	db        *gorm.DB
	batchSize int
}

// NewWriter creates a writer over the given connection.
func NewWriter(db *gorm.DB, batchSize int) *Writer {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Writer{db: db, batchSize: batchSize}
}

// UpsertTransactions persists a batch of ledger rows keyed by
// (payment_id, client_username, sheet_row_number).
func (w *Writer) UpsertTransactions(ctx context.Context, batch []models.SheetTransaction) error {
	return upsertInBatches(ctx, w.db, batch, w.batchSize,
		[]clause.Column{{Name: "payment_id"}, {Name: "client_username"}, {Name: "sheet_row_number"}},
		transactionUpdateColumns)
}

// UpsertPayPalBalances persists PayPal balances keyed by client_username.
func (w *Writer) UpsertPayPalBalances(ctx context.Context, batch []models.PayPalBalance) error {
	return upsertInBatches(ctx, w.db, batch, w.batchSize,
		[]clause.Column{{Name: "client_username"}}, paypalBalanceUpdateColumns)
}

// UpsertStripeBalances persists Stripe balances keyed by client_username.
func (w *Writer) UpsertStripeBalances(ctx context.Context, batch []models.StripeBalance) error {
	return upsertInBatches(ctx, w.db, batch, w.batchSize,
		[]clause.Column{{Name: "client_username"}}, stripeBalanceUpdateColumns)
}

// UpsertWithdrawalBalances persists pending withdrawal balances keyed by
// client_username.
func (w *Writer) UpsertWithdrawalBalances(ctx context.Context, batch []models.PayPalWithdrawalBalance) error {
	return upsertInBatches(ctx, w.db, batch, w.batchSize,
		[]clause.Column{{Name: "client_username"}}, withdrawalBalanceUpdateColumns)
}

func upsertInBatches[T any](ctx context.Context, db *gorm.DB, rows []T, size int, key []clause.Column, updates []string) error {
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		chunk := rows[start:end]

		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   key,
			DoUpdates: clause.AssignmentColumns(updates),
		}).Create(&chunk).Error
		if err != nil {
			return err
		}
	}
	return nil
}
