package log

import (
	"github.com/jonboulle/clockwork"
)

var _ simpleLoggerOption = WithMinLevel(0)

type minLevelOption Level

func (level minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(level)
}

func WithMinLevel(level Level) minLevelOption {
	return minLevelOption(level)
}

type coloringOption bool

func (coloring coloringOption) applySimpleOption(l *defaultLogger) {
	l.coloring = bool(coloring)
}

func WithColoring() coloringOption {
	return true
}

type clockOption struct {
	clock clockwork.Clock
}

func (o clockOption) applySimpleOption(l *defaultLogger) {
	if o.clock != nil {
		l.clock = o.clock
	}
}

func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}

// Option configures trace-to-log adapters
type Option interface {
	applyHolderOption(l *wrapper)
}

type wrapperClockOption struct {
	clock clockwork.Clock
}

func (o wrapperClockOption) applyHolderOption(l *wrapper) {
	if o.clock != nil {
		l.clock = o.clock
	}
}

// WithLatencyClock sets clock which measures latencies of logged calls
func WithLatencyClock(clock clockwork.Clock) Option {
	return wrapperClockOption{clock: clock}
}
