package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const namespace = "hr_console"

// Metrics owns a private registry so that several instances (tests) never collide.
type Metrics struct {
	registry *prometheus.Registry

	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	consoleRequests *prometheus.CounterVec
	events          *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Total number of requests sent to the employee backend",
		}, []string{"method", "route", "status"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of requests sent to the employee backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		consoleRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of console page requests",
		}, []string{"method", "status"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "employee_events_total",
			Help:      "Employee change events by direction and outcome",
		}, []string{"direction", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.backendRequests,
		m.backendLatency,
		m.consoleRequests,
		m.events,
	)

	return m
}

// ObserveRequest records one backend call; status 0 means a transport failure.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.backendRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	m.backendLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveConsole(method string, status int) {
	m.consoleRequests.WithLabelValues(method, statusLabel(status)).Inc()
}

func (m *Metrics) EventPublished(err error) {
	m.events.WithLabelValues("out", outcome(err)).Inc()
}

func (m *Metrics) EventConsumed(err error) {
	m.events.WithLabelValues("in", outcome(err)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}

	return strconv.Itoa(status)
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}

	return "success"
}
