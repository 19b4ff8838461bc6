package router

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors a Router reports routing
// decisions through. A nil *Metrics is safe to call methods on (all
// methods are nil-receiver safe), matching reactor.SchedulingGroup and
// reactor.SubmissionGroup's convention so tests can construct a Router
// without wiring a registry.
type Metrics struct {
	routeDuration    *prometheus.HistogramVec
	notCoordinator   *prometheus.CounterVec
}

// NewMetrics registers the router's collectors against reg. If reg is
// nil, a private registry is used so repeated calls (e.g. from tests)
// never collide on prometheus's global default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		routeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "grouprouter",
			Name:      "route_duration_seconds",
			Help:      "Time spent routing a request to its owning core, by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		notCoordinator: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grouprouter",
			Name:      "not_coordinator_total",
			Help:      "Requests that resolved to no local routing decision, by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(m.routeDuration, m.notCoordinator)
	return m
}

// startRoute marks the beginning of a routed call and returns a func
// that records its duration when the call completes.
func (m *Metrics) startRoute(op string) func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.routeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

// observeNotCoordinator records a routing decision that failed to
// resolve: no coordinator mapping could be found locally.
func (m *Metrics) observeNotCoordinator(op string) {
	if m == nil {
		return
	}
	m.notCoordinator.WithLabelValues(op).Inc()
}
