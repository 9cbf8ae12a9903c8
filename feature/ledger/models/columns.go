package models

// Column positions in the transaction ledger sheet. Defined once so a layout
// change in the spreadsheet is a single-point edit.
//
// Columns 1-3 and 18 exist in the sheet but are not persisted.
const (
	ColClient             = 0  // Клиент (@username)
	ColDay                = 4  // День
	ColMonth              = 5  // Месяц (Russian name or number)
	ColYear               = 6  // Год
	ColPaymentID          = 7  // ID платежа
	ColAmountGross        = 8  // Сумма платежа, $
	ColPaymentSystem      = 9  // Платежная система
	ColBuyerEmail         = 10 // Реквизиты покупателя
	ColIntermediaryStatus = 11 // Платеж получен от посредника?
	ColCredentialType     = 12 // Тип реквизитов
	ColClientCredentials  = 13 // Реквизиты клиента
	ColAliCommission      = 14 // Комиссия Ali
	ColP2PCommission      = 15 // Комиссия P2P
	ColPayPalCommission   = 16 // Комиссия PayPal
	ColPayPalWdCommission = 17 // Комиссия PayPal на вывод
	ColWithdrawalAmount   = 19 // Сумма вывода клиенту, $
	ColWithdrawalReceived = 20 // Клиент получил вывод?
	ColComment            = 21 // Комментарий
)

// TransactionColumnCount is the expected width of a ledger row. Shorter rows
// are padded with empty cells before mapping.
const TransactionColumnCount = 22
