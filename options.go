package cqlpager

import (
	"github.com/jonboulle/clockwork"

	"github.com/cqlpager/cqlpager/cassandra"
	"github.com/cqlpager/cqlpager/config"
	"github.com/cqlpager/cqlpager/executor"
	"github.com/cqlpager/cqlpager/log"
	"github.com/cqlpager/cqlpager/metrics"
	"github.com/cqlpager/cqlpager/trace"
)

type Option func(o *options)

type options struct {
	config        []config.Option
	cassandra     []cassandra.Option
	panicCallback func(e interface{})

	logger        log.Logger
	loggerDetails trace.Detailer
	loggerOpts    []log.Option

	registry       metrics.Registry
	metricsDetails trace.Details
}

// WithExecutor defines executor of cursor and stream continuations
func WithExecutor(e *executor.Executor) Option {
	return func(o *options) {
		o.config = append(o.config, config.WithExecutor(e))
	}
}

// WithTrace appends trace.Cursor into cursor traces
func WithTrace(t trace.Cursor, opts ...trace.CursorComposeOption) Option { //nolint:gocritic
	return func(o *options) {
		o.config = append(o.config, config.WithTrace(&t, append(
			[]trace.CursorComposeOption{
				trace.WithCursorPanicCallback(o.panicCallback),
			},
			opts...,
		)...))
	}
}

// WithStreamTrace appends trace.Stream into stream traces
func WithStreamTrace(t trace.Stream, opts ...trace.StreamComposeOption) Option { //nolint:gocritic
	return func(o *options) {
		o.config = append(o.config, config.WithStreamTrace(&t, append(
			[]trace.StreamComposeOption{
				trace.WithStreamPanicCallback(o.panicCallback),
			},
			opts...,
		)...))
	}
}

// WithLogger logs cursor and stream events from details
func WithLogger(l log.Logger, details trace.Detailer, opts ...log.Option) Option {
	return func(o *options) {
		o.logger = l
		o.loggerDetails = details
		o.loggerOpts = opts
	}
}

// WithMetrics registers cursor and stream metrics from details in registry
func WithMetrics(registry metrics.Registry, details trace.Details) Option {
	return func(o *options) {
		o.registry = registry
		o.metricsDetails = details
	}
}

// WithClock defines clock which measures latencies for logs and metrics
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.config = append(o.config, config.WithClock(clock))
	}
}

// WithPanicCallback specified behavior on panic in trace callbacks.
// Must be the first option to apply to traces.
func WithPanicCallback(panicCallback func(e interface{})) Option {
	return func(o *options) {
		o.panicCallback = panicCallback
	}
}

// WithPageSize defines count of rows per page for Execute
func WithPageSize(size int) Option {
	return func(o *options) {
		o.cassandra = append(o.cassandra, cassandra.WithPageSize(size))
	}
}

// WithPageState resumes Execute from paging state of earlier page
func WithPageState(state []byte) Option {
	return func(o *options) {
		o.cassandra = append(o.cassandra, cassandra.WithPageState(state))
	}
}

// MergeOptions concatenates provided options to one cumulative value.
func MergeOptions(opts ...Option) Option {
	return func(o *options) {
		for _, opt := range opts {
			if opt != nil {
				opt(o)
			}
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// configOptions appends log and metrics traces last so they read the clock
// of config with all other options applied
func (o *options) configOptions() []config.Option {
	opts := append([]config.Option(nil), o.config...)
	if o.logger == nil && o.registry == nil {
		return opts
	}

	return append(opts, func(c *config.Config) {
		clock := c.Clock()
		if o.logger != nil {
			logOpts := append([]log.Option{log.WithLatencyClock(clock)}, o.loggerOpts...)
			cursorTrace := log.Cursor(o.logger, o.loggerDetails, logOpts...)
			streamTrace := log.Stream(o.logger, o.loggerDetails, logOpts...)
			config.WithTrace(&cursorTrace, trace.WithCursorPanicCallback(o.panicCallback))(c)
			config.WithStreamTrace(&streamTrace, trace.WithStreamPanicCallback(o.panicCallback))(c)
		}
		if o.registry != nil {
			metricsConfig := metrics.NewConfig(o.registry,
				metrics.WithDetails(o.metricsDetails),
				metrics.WithClock(clock),
			).WithSystem("cqlpager")
			cursorTrace := metrics.Cursor(metricsConfig)
			streamTrace := metrics.Stream(metricsConfig)
			config.WithTrace(&cursorTrace, trace.WithCursorPanicCallback(o.panicCallback))(c)
			config.WithStreamTrace(&streamTrace, trace.WithStreamPanicCallback(o.panicCallback))(c)
		}
	})
}
