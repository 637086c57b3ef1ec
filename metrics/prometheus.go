package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cqlpager/cqlpager/internal/xsync"
)

var _ Registry = (*promRegistry)(nil)

// promRegistry creates prometheus collectors once per name
type promRegistry struct {
	factory   promauto.Factory
	namespace string

	m          xsync.Mutex
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

// NewPrometheus makes Registry which registers collectors in reg
func NewPrometheus(reg prometheus.Registerer, namespace string) Registry {
	return &promRegistry{
		factory:    promauto.With(reg),
		namespace:  namespace,
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

func getOrCreate[T any](m *xsync.Mutex, cache map[string]T, name string, create func() T) T {
	return xsync.WithLock(m, func() T {
		if v, has := cache[name]; has {
			return v
		}
		v := create()
		cache[name] = v

		return v
	})
}

func (r *promRegistry) CounterVec(name string, labelNames ...string) CounterVec {
	return counterVec{getOrCreate(&r.m, r.counters, name, func() *prometheus.CounterVec {
		return r.factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      name,
		}, labelNames)
	})}
}

func (r *promRegistry) GaugeVec(name string, labelNames ...string) GaugeVec {
	return gaugeVec{getOrCreate(&r.m, r.gauges, name, func() *prometheus.GaugeVec {
		return r.factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      name,
		}, labelNames)
	})}
}

func (r *promRegistry) TimerVec(name string, labelNames ...string) TimerVec {
	return timerVec{r.histogram(name+"_seconds", prometheus.DefBuckets, labelNames...)}
}

func (r *promRegistry) HistogramVec(name string, buckets []float64, labelNames ...string) HistogramVec {
	return histogramVec{r.histogram(name, buckets, labelNames...)}
}

func (r *promRegistry) histogram(name string, buckets []float64, labelNames ...string) *prometheus.HistogramVec {
	return getOrCreate(&r.m, r.histograms, name, func() *prometheus.HistogramVec {
		return r.factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      name,
			Buckets:   buckets,
		}, labelNames)
	})
}

type counterVec struct {
	v *prometheus.CounterVec
}

func (v counterVec) With(labels map[string]string) Counter {
	return v.v.With(labels)
}

type gaugeVec struct {
	v *prometheus.GaugeVec
}

func (v gaugeVec) With(labels map[string]string) Gauge {
	return v.v.With(labels)
}

type histogramVec struct {
	v *prometheus.HistogramVec
}

func (v histogramVec) With(labels map[string]string) Histogram {
	return histogram{v.v.With(labels)}
}

type histogram struct {
	o prometheus.Observer
}

func (h histogram) Record(value float64) {
	h.o.Observe(value)
}

type timerVec struct {
	v *prometheus.HistogramVec
}

func (v timerVec) With(labels map[string]string) Timer {
	return timer{v.v.With(labels)}
}

type timer struct {
	o prometheus.Observer
}

func (t timer) Record(value time.Duration) {
	t.o.Observe(value.Seconds())
}
