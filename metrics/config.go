package metrics

import (
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/cqlpager/cqlpager/trace"
)

// Config is a registry scoped by subsystem with enabled details
type Config interface {
	Registry

	Details() trace.Details
	Clock() clockwork.Clock

	// WithSystem makes child Config with name prefix extended by subsystem
	WithSystem(subsystem string) Config
}

type ConfigOption func(c *config)

func WithDetails(details trace.Details) ConfigOption {
	return func(c *config) {
		c.details = details
	}
}

func WithSeparator(separator string) ConfigOption {
	return func(c *config) {
		c.separator = separator
	}
}

func WithClock(clock clockwork.Clock) ConfigOption {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

var _ Config = (*config)(nil)

type config struct {
	registry  Registry
	details   trace.Details
	separator string
	clock     clockwork.Clock
	namespace []string
}

// NewConfig makes Config over registry with empty namespace
func NewConfig(registry Registry, opts ...ConfigOption) Config {
	c := &config{
		registry:  registry,
		details:   trace.DetailsAll,
		separator: "_",
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

func (c *config) Details() trace.Details {
	return c.details
}

func (c *config) Clock() clockwork.Clock {
	return c.clock
}

func (c *config) WithSystem(subsystem string) Config {
	child := *c
	child.namespace = append(c.namespace[:len(c.namespace):len(c.namespace)], subsystem)

	return &child
}

func (c *config) name(name string) string {
	if len(c.namespace) == 0 {
		return name
	}

	return strings.Join(c.namespace, c.separator) + c.separator + name
}

func (c *config) CounterVec(name string, labelNames ...string) CounterVec {
	return c.registry.CounterVec(c.name(name), labelNames...)
}

func (c *config) GaugeVec(name string, labelNames ...string) GaugeVec {
	return c.registry.GaugeVec(c.name(name), labelNames...)
}

func (c *config) TimerVec(name string, labelNames ...string) TimerVec {
	return c.registry.TimerVec(c.name(name), labelNames...)
}

func (c *config) HistogramVec(name string, buckets []float64, labelNames ...string) HistogramVec {
	return c.registry.HistogramVec(c.name(name), buckets, labelNames...)
}
