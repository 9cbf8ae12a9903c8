package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sync types recorded in sync_history.
const (
	SyncTypeTransactions = "transactions"
	SyncTypeBalances     = "balances"
)

// Sync run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// SheetTransaction is one row of the transaction ledger sheet, normalized.
// The natural key is (payment_id, client_username, sheet_row_number) because
// payment identifiers repeat across clients and rows in the source sheet.
type SheetTransaction struct {
	ID                         int64            `gorm:"column:id;primaryKey;autoIncrement"`
	ClientUsername             string           `gorm:"column:client_username;size:255;not null;uniqueIndex:idx_payment_client_row,priority:2"`
	TransactionDate            *time.Time       `gorm:"column:transaction_date;type:date"`
	PaymentID                  *int64           `gorm:"column:payment_id;uniqueIndex:idx_payment_client_row,priority:1"`
	AmountGross                decimal.Decimal  `gorm:"column:amount_gross;type:decimal(15,2)"`
	PaymentSystem              string           `gorm:"column:payment_system;size:255"`
	BuyerEmail                 string           `gorm:"column:buyer_email;size:255"`
	IntermediaryStatus         string           `gorm:"column:intermediary_status;size:255"`
	CredentialType             string           `gorm:"column:credential_type;size:255"`
	ClientCredentials          string           `gorm:"column:client_credentials;type:text"`
	AliCommission              decimal.Decimal  `gorm:"column:ali_commission;type:decimal(15,2)"`
	P2PCommission              decimal.Decimal  `gorm:"column:p2p_commission;type:decimal(15,2)"`
	PayPalCommission           decimal.Decimal  `gorm:"column:paypal_commission;type:decimal(15,2)"`
	PayPalWithdrawalCommission decimal.Decimal  `gorm:"column:paypal_withdrawal_commission;type:decimal(15,2)"`
	WithdrawalAmount           decimal.Decimal  `gorm:"column:withdrawal_amount;type:decimal(15,2)"`
	WithdrawalReceived         bool             `gorm:"column:withdrawal_received"`
	Comment                    string           `gorm:"column:comment;type:text"`
	SheetRowNumber             int              `gorm:"column:sheet_row_number;not null;uniqueIndex:idx_payment_client_row,priority:3"`
	RowHash                    string           `gorm:"column:row_hash;size:32"`
	LastSyncedAt               time.Time        `gorm:"column:last_synced_at"`
}

// TableName overrides the table name.
func (SheetTransaction) TableName() string {
	return "sheet_transactions"
}

// PayPalBalance is the live PayPal balance of one client. At most one row per
// client; re-syncs overwrite in place.
type PayPalBalance struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ClientUsername string          `gorm:"column:client_username;size:255;not null;uniqueIndex"`
	Balance        decimal.Decimal `gorm:"column:balance;type:decimal(15,2)"`
	Comment1       string          `gorm:"column:comment_1;type:text"`
	Comment2       string          `gorm:"column:comment_2;type:text"`
	Comment3       string          `gorm:"column:comment_3;type:text"`
	LastSyncedAt   time.Time       `gorm:"column:last_synced_at"`
}

func (PayPalBalance) TableName() string {
	return "balances_paypal"
}

// StripeBalance is the live Stripe balance of one client. The Stripe sheet
// additionally carries a payout date and the buyer credentials.
type StripeBalance struct {
	ID               int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ClientUsername   string          `gorm:"column:client_username;size:255;not null;uniqueIndex"`
	Balance          decimal.Decimal `gorm:"column:balance;type:decimal(15,2)"`
	TransactionDate  *time.Time      `gorm:"column:transaction_date;type:date"`
	BuyerCredentials string          `gorm:"column:buyer_credentials;type:text"`
	Comment1         string          `gorm:"column:comment_1;type:text"`
	LastSyncedAt     time.Time       `gorm:"column:last_synced_at"`
}

func (StripeBalance) TableName() string {
	return "balances_stripe"
}

// PayPalWithdrawalBalance is the pending PayPal withdrawal amount of one client.
type PayPalWithdrawalBalance struct {
	ID               int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ClientUsername   string          `gorm:"column:client_username;size:255;not null;uniqueIndex"`
	WithdrawalAmount decimal.Decimal `gorm:"column:withdrawal_amount;type:decimal(15,2)"`
	Comment1         string          `gorm:"column:comment_1;type:text"`
	Comment2         string          `gorm:"column:comment_2;type:text"`
	Comment3         string          `gorm:"column:comment_3;type:text"`
	LastSyncedAt     time.Time       `gorm:"column:last_synced_at"`
}

func (PayPalWithdrawalBalance) TableName() string {
	return "balances_paypal_withdrawal"
}

// SyncRun is the audit record of one sync pass of one type. It is created
// with status running when the pass starts and finalized exactly once when
// the pass ends; completed records are never modified again.
type SyncRun struct {
	ID              int64      `gorm:"column:id;primaryKey;autoIncrement"`
	SyncType        string     `gorm:"column:sync_type;size:50;not null;index:idx_sync_history_type,priority:1"`
	StartedAt       time.Time  `gorm:"column:started_at;index:idx_sync_history_started,sort:desc;index:idx_sync_history_type,priority:2,sort:desc"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	RowsProcessed   int        `gorm:"column:rows_processed;default:0"`
	RowsChanged     int        `gorm:"column:rows_changed;default:0"`
	Status          string     `gorm:"column:status;size:20;default:running"`
	ErrorMessage    string     `gorm:"column:error_message;type:text"`
	DurationSeconds float64    `gorm:"column:duration_seconds;type:decimal(10,2)"`
}

func (SyncRun) TableName() string {
	return "sync_history"
}
