package pipeline

import (
	"log/slog"

	"github.com/aretw0/dpcl/internal/logging"
)

// Option defines a functional option for configuring a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger used for debug tracing of graph mutations.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func defaultLogger() *slog.Logger {
	return logging.NewNop()
}
