package cmd

import (
	"log"

	"ledger-sync/core/config"
	"ledger-sync/core/database"
	"ledger-sync/core/logger"
	"ledger-sync/feature/ledger/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long: `Creates the ledger, balance and sync-history tables along with the
composite unique indexes the idempotent upserts rely on.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}

		err = db.AutoMigrate(
			&models.SheetTransaction{},
			&models.PayPalBalance{},
			&models.StripeBalance{},
			&models.PayPalWithdrawalBalance{},
			&models.SyncRun{},
		)
		if err != nil {
			logg.Fatal("Migration failed", zap.Error(err))
		}

		logg.Info("Schema migrated",
			zap.String("database", cfg.Database.Name),
			zap.Strings("tables", []string{
				"sheet_transactions", "balances_paypal", "balances_stripe",
				"balances_paypal_withdrawal", "sync_history",
			}))
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
