// Package metrics holds the Prometheus collectors for HTTP traffic and shop events.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shop"

// Metrics groups every collector the API exports. Methods are safe on a nil receiver
// so services can run without metrics in tests and CLI commands.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestCount    *prometheus.CounterVec
	ErrorCount      *prometheus.CounterVec

	OrdersPlaced          *prometheus.CounterVec
	OrderValue            prometheus.Counter
	QuotationTransitions  *prometheus.CounterVec
	DocumentRenders       *prometheus.CounterVec
	StockChecks           *prometheus.CounterVec
	CustomersReclassified *prometheus.CounterVec
	JobRuns               *prometheus.CounterVec
	JobDuration           *prometheus.HistogramVec
}

// New creates the collectors on a private registry together with the Go and process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RequestCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route"}),
		ErrorCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP responses with status >= 400",
		}, []string{"method", "route", "status"}),

		OrdersPlaced: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders created, by source and payment method",
		}, []string{"source", "payment_method"}),
		OrderValue: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_value_baht_total",
			Help:      "Sum of order totals in baht",
		}),
		QuotationTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotation_transitions_total",
			Help:      "Quotation status changes, by target status",
		}, []string{"status"}),
		DocumentRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_renders_total",
			Help:      "Quotation documents rendered, by format and result",
		}, []string{"format", "result"}),
		StockChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wms_stock_checks_total",
			Help:      "WMS stock lookups, by result",
		}, []string{"result"}),
		CustomersReclassified: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customers_reclassified_total",
			Help:      "Customer type changes, by new type",
		}, []string{"type"}),
		JobRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Background job runs, by job and result",
		}, []string{"job", "result"}),
		JobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Background job run time in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"job"}),
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the registry for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	statusLabel := statusClass(status)
	m.RequestCount.WithLabelValues(method, route).Inc()
	m.RequestDuration.WithLabelValues(method, route, statusLabel).Observe(duration.Seconds())
	if status >= 400 {
		m.ErrorCount.WithLabelValues(method, route, statusLabel).Inc()
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

func (m *Metrics) OrderPlaced(source, paymentMethod string, total float64) {
	if m == nil {
		return
	}
	m.OrdersPlaced.WithLabelValues(source, paymentMethod).Inc()
	m.OrderValue.Add(total)
}

func (m *Metrics) QuotationTransition(status string) {
	if m == nil {
		return
	}
	m.QuotationTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) DocumentRendered(format string, err error) {
	if m == nil {
		return
	}
	m.DocumentRenders.WithLabelValues(format, result(err)).Inc()
}

func (m *Metrics) StockChecked(outcome string) {
	if m == nil {
		return
	}
	m.StockChecks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CustomerReclassified(customerType string) {
	if m == nil {
		return
	}
	m.CustomersReclassified.WithLabelValues(customerType).Inc()
}

func (m *Metrics) JobFinished(job string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.JobRuns.WithLabelValues(job, result(err)).Inc()
	m.JobDuration.WithLabelValues(job).Observe(duration.Seconds())
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
