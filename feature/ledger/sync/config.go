package sync

// Config holds configuration for the sync scheduler.
type Config struct {
	// IntervalMinutes is the sleep between scheduled passes.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"5"`
	// BatchSize is the number of rows per upsert statement.
	BatchSize int `mapstructure:"batch_size" default:"500"`
}
