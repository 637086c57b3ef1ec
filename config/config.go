package config

import (
	"github.com/jonboulle/clockwork"

	"github.com/cqlpager/cqlpager/executor"
	"github.com/cqlpager/cqlpager/trace"
)

const DefaultExecutorName = "cqlpager"

var defaultExecutor = executor.New(DefaultExecutorName)

// Config contains cursor and stream configuration options.
type Config struct {
	executor    *executor.Executor
	trace       *trace.Cursor
	streamTrace *trace.Stream
	clock       clockwork.Clock
}

func New(opts ...Option) *Config {
	c := defaults()
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

func defaults() *Config {
	return &Config{
		executor:    defaultExecutor,
		trace:       &trace.Cursor{},
		streamTrace: &trace.Stream{},
		clock:       clockwork.NewRealClock(),
	}
}

// Executor makes execution contexts for continuations of cursors and streams
func (c *Config) Executor() *executor.Executor {
	return c.executor
}

// Trace defines trace over cursor calls
func (c *Config) Trace() *trace.Cursor {
	return c.trace
}

// StreamTrace defines trace over demand stream events
func (c *Config) StreamTrace() *trace.Stream {
	return c.streamTrace
}

// Clock measures latencies of logged and metered calls
func (c *Config) Clock() clockwork.Clock {
	return c.clock
}
