// File: uci/timing.go
package uci

import "time"

// Timing constants for the file watcher.
const (
	// MinPollInterval is the floor applied to WatchOptions.PollInterval.
	MinPollInterval = 100 * time.Millisecond

	// DefaultPollInterval is used when no poll interval is given.
	DefaultPollInterval = 1 * time.Second

	// DefaultDebounce is the quiet period after a detected change before
	// the config is reloaded.
	DefaultDebounce = 500 * time.Millisecond
)
