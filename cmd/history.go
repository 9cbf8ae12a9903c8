package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"ledger-sync/core/config"
	"ledger-sync/core/database"
	"ledger-sync/core/logger"
	syncer "ledger-sync/feature/ledger/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync runs",
	Long:  `Prints the latest entries of the sync_history audit table, newest first.`,
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

		recorder := syncer.NewRecorder(db, logg)
		runs, err := recorder.Recent(cmd.Context(), historyLimit)
		if err != nil {
			logg.Fatal("Failed to read sync history", zap.Error(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tSTARTED\tSTATUS\tROWS\tDURATION\tERROR")
		for _, run := range runs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.2fs\t%s\n",
				run.ID, run.SyncType, run.StartedAt.Format("2006-01-02 15:04:05"),
				run.Status, run.RowsProcessed, run.DurationSeconds, run.ErrorMessage)
		}
		w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of runs to show")
	RootCmd.AddCommand(historyCmd)
}
