package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the portal's collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	gateDecisions   *prometheus.CounterVec
	authEvents      *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		gateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "gate_decisions_total",
			Help:      "Auth gate outcomes by outcome and redirect reason.",
		}, []string{"outcome", "reason"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "auth_events_total",
			Help:      "Login, signup and logout attempts by result.",
		}, []string{"event", "result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portal",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.gateDecisions,
		m.authEvents,
		m.requestDuration,
	)
	return m
}

func (m *Metrics) GateDecision(outcome, reason string) {
	m.gateDecisions.WithLabelValues(outcome, reason).Inc()
}

func (m *Metrics) AuthEvent(event string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.authEvents.WithLabelValues(event, result).Inc()
}

func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Registry exposes the collectors for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
