package config

import (
	"github.com/jonboulle/clockwork"

	"github.com/cqlpager/cqlpager/executor"
	"github.com/cqlpager/cqlpager/trace"
)

type Option func(c *Config)

// WithExecutor defines executor of continuations.
// Nil executor keeps default one.
func WithExecutor(e *executor.Executor) Option {
	return func(c *Config) {
		if e != nil {
			c.executor = e
		}
	}
}

// WithTrace appends cursor trace to early defined traces
func WithTrace(t *trace.Cursor, opts ...trace.CursorComposeOption) Option {
	return func(c *Config) {
		c.trace = c.trace.Compose(t, opts...)
	}
}

// WithStreamTrace appends stream trace to early defined traces
func WithStreamTrace(t *trace.Stream, opts ...trace.StreamComposeOption) Option {
	return func(c *Config) {
		c.streamTrace = c.streamTrace.Compose(t, opts...)
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) {
		if clock != nil {
			c.clock = clock
		}
	}
}
