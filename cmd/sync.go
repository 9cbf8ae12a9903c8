package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ledger-sync/core/config"
	"ledger-sync/core/database"
	"ledger-sync/core/logger"
	"ledger-sync/core/sheets"
	syncer "ledger-sync/feature/ledger/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncOnce bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run the sheet-to-database sync engine",
	Long: `Runs the Google Sheets synchronization. Without flags the scheduler
loops forever on the configured interval; with --once a single pass runs and
the process exits.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if cfg.Sheets.TransactionsSpreadsheetID == "" {
			logg.Fatal("SHEETS_TRANSACTIONS_SPREADSHEET_ID is not set")
		}

		// 3. Connect to Database (required, the sync has nowhere else to write)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}

		if missing := database.MissingTables(db, "sheet_transactions", "sync_history"); len(missing) > 0 {
			logg.Fatal("Schema is not migrated, run 'ledger-sync migrate' first",
				zap.Strings("missing_tables", missing))
		}

		// 4. Initialize Sheets Reader
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		reader, err := sheets.NewReader(ctx, cfg.Sheets)
		if err != nil {
			logg.Fatal("Failed to create sheets reader", zap.Error(err))
		}

		// 5. Build and run the sync engine
		service := syncer.NewService(reader, db, logg, cfg.Sync, cfg.Sheets)
		scheduler := syncer.NewScheduler(service, cfg.Sync, logg)

		if syncOnce {
			report := scheduler.RunOnce(ctx)
			if report.Failed() {
				os.Exit(1)
			}
			return
		}

		scheduler.RunForever(ctx)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncOnce, "once", false, "run a single sync pass and exit")
	RootCmd.AddCommand(syncCmd)
}
