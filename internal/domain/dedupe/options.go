// Package dedupe defines the interface for idempotency tracking.
package dedupe

// Option applies a configuration option to the in-memory deduper.
type Option func(*config)

type config struct {
	initialCapacity int
}

// WithInitialCapacity pre-sizes the seen set. Useful when replaying a
// known number of historical matchups.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.initialCapacity = n
		}
	}
}
