package sheets

// Config holds configuration for the Google Sheets access.
type Config struct {
	// CredentialsFile is the path to the service-account JSON key with
	// read-only spreadsheet access.
	CredentialsFile string `mapstructure:"credentials_file" default:"credentials/google-sheets-credentials.json"`
	// TransactionsSpreadsheetID identifies the transaction ledger spreadsheet.
	TransactionsSpreadsheetID string `mapstructure:"transactions_spreadsheet_id" default:""`
	// BalancesSpreadsheetID identifies the balances spreadsheet. Optional;
	// when empty the balances pass is skipped.
	BalancesSpreadsheetID string `mapstructure:"balances_spreadsheet_id" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
