package progress

import "time"

// Config holds configuration for the sync coordinator.
type Config struct {
	// Debounce is how long a single-item write waits for further changes to the same key.
	Debounce time.Duration `mapstructure:"debounce" default:"1s"`
}
