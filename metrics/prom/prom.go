package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/fastshard"
)

// Adapter implements fastshard.Metrics and exports Prometheus counters.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	selected *prometheus.CounterVec
	fallback prometheus.Counter
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		selected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "selected_total",
				Help:        "Keys routed, by selected hash algorithm",
				ConstLabels: constLabels,
			},
			[]string{"algorithm"},
		),
		fallback: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "fallback_total",
			Help:        "Preference lists exhausted without an available algorithm",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.selected, a.fallback)
	return a
}

// Selected increments the per-algorithm routing counter.
func (a *Adapter) Selected(algo fastshard.Algorithm) {
	a.selected.WithLabelValues(algo.String()).Inc()
}

// Exhausted increments the final-fallback counter.
func (a *Adapter) Exhausted() { a.fallback.Inc() }

// Compile-time check: ensure Adapter implements fastshard.Metrics.
var _ fastshard.Metrics = (*Adapter)(nil)
