package matcher

import (
	"time"

	"go.uber.org/zap"
)

// Options configures matching behavior.
type Options struct {
	// TokenTimeout bounds a single token pattern evaluation.
	// A pattern that times out counts as no match.
	TokenTimeout time.Duration

	// Logger receives pattern errors at debug level. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the default matching options.
func DefaultOptions() Options {
	return Options{
		TokenTimeout: 5 * time.Second,
	}
}
