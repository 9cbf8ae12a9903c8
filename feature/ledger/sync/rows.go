package sync

import (
	"strings"
	"time"

	"ledger-sync/feature/ledger/models"
	"ledger-sync/feature/ledger/parse"
)

// Skip reasons reported by row mapping.
const (
	SkipMissingClient = "client username missing or not @-prefixed"
)

// RowResult is the outcome of mapping one raw sheet row: either a normalized
// transaction or a skip reason. Mapping never fails hard, so a bad row can be
// counted and reported without aborting the batch it arrived in.
type RowResult struct {
	Transaction *models.SheetTransaction
	SkipReason  string
}

// Skipped reports whether the row was rejected.
func (r RowResult) Skipped() bool {
	return r.Transaction == nil
}

// MapTransactionRow normalizes one raw ledger row. The row is padded to the
// expected column count first, so short rows map with defaulted fields rather
// than panicking on index. A row is only skipped when its client cell is
// empty or not an @-username; every other malformation degrades to the
// parsers' safe defaults.
func MapTransactionRow(row []string, sheetRowNumber int, syncedAt time.Time) RowResult {
	if len(row) < models.TransactionColumnCount {
		padded := make([]string, models.TransactionColumnCount)
		copy(padded, row)
		row = padded
	}

	cell := func(idx int) string {
		return strings.TrimSpace(row[idx])
	}

	client := cell(models.ColClient)
	if client == "" || !strings.HasPrefix(client, "@") {
		return RowResult{SkipReason: SkipMissingClient}
	}

	tx := &models.SheetTransaction{
		ClientUsername:             client,
		TransactionDate:            parse.Date(cell(models.ColDay), cell(models.ColMonth), cell(models.ColYear)),
		PaymentID:                  parse.BoundedInt(cell(models.ColPaymentID)),
		AmountGross:                parse.Decimal(cell(models.ColAmountGross)),
		PaymentSystem:              cell(models.ColPaymentSystem),
		BuyerEmail:                 cell(models.ColBuyerEmail),
		IntermediaryStatus:         cell(models.ColIntermediaryStatus),
		CredentialType:             cell(models.ColCredentialType),
		ClientCredentials:          cell(models.ColClientCredentials),
		AliCommission:              parse.Decimal(cell(models.ColAliCommission)),
		P2PCommission:              parse.Decimal(cell(models.ColP2PCommission)),
		PayPalCommission:           parse.Decimal(cell(models.ColPayPalCommission)),
		PayPalWithdrawalCommission: parse.Decimal(cell(models.ColPayPalWdCommission)),
		WithdrawalAmount:           parse.Decimal(cell(models.ColWithdrawalAmount)),
		WithdrawalReceived:         parse.Boolean(cell(models.ColWithdrawalReceived)),
		Comment:                    cell(models.ColComment),
		SheetRowNumber:             sheetRowNumber,
		RowHash:                    parse.RowHash(row),
		LastSyncedAt:               syncedAt,
	}

	return RowResult{Transaction: tx}
}

// balanceCells reads the client cell shared by all balance sheets and returns
// the remaining cells. Returns an empty client for rows to skip.
func balanceCells(row []string) (client string, rest []string) {
	if len(row) < 2 {
		return "", nil
	}
	client = strings.TrimSpace(row[0])
	if !strings.HasPrefix(client, "@") {
		return "", nil
	}
	return client, row[1:]
}

// MapPayPalBalanceRow normalizes one row of the PayPal balances sheet.
// The bool result is false for rows to skip.
func MapPayPalBalanceRow(row []string, syncedAt time.Time) (models.PayPalBalance, bool) {
	client, rest := balanceCells(row)
	if client == "" {
		return models.PayPalBalance{}, false
	}

	return models.PayPalBalance{
		ClientUsername: client,
		Balance:        parse.Decimal(rest[0]),
		Comment1:       cellAt(rest, 1),
		Comment2:       cellAt(rest, 2),
		Comment3:       cellAt(rest, 3),
		LastSyncedAt:   syncedAt,
	}, true
}

// MapStripeBalanceRow normalizes one row of the Stripe balances sheet, which
// carries a dd.mm.yy payout date and the buyer credentials.
func MapStripeBalanceRow(row []string, syncedAt time.Time) (models.StripeBalance, bool) {
	client, rest := balanceCells(row)
	if client == "" {
		return models.StripeBalance{}, false
	}

	return models.StripeBalance{
		ClientUsername:   client,
		Balance:          parse.Decimal(rest[0]),
		TransactionDate:  parse.ShortDate(cellAt(rest, 1)),
		BuyerCredentials: cellAt(rest, 2),
		Comment1:         cellAt(rest, 3),
		LastSyncedAt:     syncedAt,
	}, true
}

// MapWithdrawalBalanceRow normalizes one row of the PayPal withdrawal sheet.
func MapWithdrawalBalanceRow(row []string, syncedAt time.Time) (models.PayPalWithdrawalBalance, bool) {
	client, rest := balanceCells(row)
	if client == "" {
		return models.PayPalWithdrawalBalance{}, false
	}

	return models.PayPalWithdrawalBalance{
		ClientUsername:   client,
		WithdrawalAmount: parse.Decimal(rest[0]),
		Comment1:         cellAt(rest, 1),
		Comment2:         cellAt(rest, 2),
		Comment3:         cellAt(rest, 3),
		LastSyncedAt:     syncedAt,
	}, true
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
