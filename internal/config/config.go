// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() building a Config with defaults; Load() layers file/env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RowHeight is the display height of one hour row on the grid.
	RowHeight float64 `koanf:"row_height"`

	// VisibleStartHour is the first rendered hour of the grid.
	VisibleStartHour float64 `koanf:"visible_start_hour"`

	// VisibleRows is the number of rendered hour rows.
	VisibleRows int `koanf:"visible_rows"`

	// MinBlockHeight is the visual floor for short appointment blocks.
	MinBlockHeight float64 `koanf:"min_block_height"`

	// QueueSize bounds the in-memory confirmation queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of notification workers.
	WorkerCount int `koanf:"worker_count"`

	// ClockIntervalSeconds sets how often the current-time indicator is
	// refreshed from the wall clock.
	ClockIntervalSeconds int `koanf:"clock_interval_seconds"`

	// SeedDemoData pre-populates the store with the demo week.
	SeedDemoData bool `koanf:"seed_demo_data"`
}

// New creates a Config with defaults matching the original calendar: 64-unit
// rows, 13 visible hours starting at 8 AM, 32-unit block floor.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		RowHeight:            64,
		VisibleStartHour:     8,
		VisibleRows:          13,
		MinBlockHeight:       32,
		QueueSize:            1024,
		WorkerCount:          2,
		ClockIntervalSeconds: 60,
		SeedDemoData:         true,
	}
}
