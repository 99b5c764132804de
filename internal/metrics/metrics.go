package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "laborlink"

// Metrics owns a private registry. All recording methods are safe on a nil
// receiver so use cases can run without instrumentation.
type Metrics struct {
	registry *prometheus.Registry

	listRequests *prometheus.CounterVec
	listResults  prometheus.Histogram
	jobsCreated  prometheus.Counter
	jobsDeleted  prometheus.Counter
	applications *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		listRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_list_requests_total",
			Help:      "Job board list requests by scope and cache outcome.",
		}, []string{"scope", "cache"}),
		listResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_list_visible_results",
			Help:      "Number of jobs visible after filtering.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),
		jobsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_created_total",
			Help:      "Job postings created.",
		}),
		jobsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_deleted_total",
			Help:      "Job deletions requested.",
		}),
		applications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_total",
			Help:      "Job applications by outcome.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status.",
		}, []string{"method", "status"}),
	}

	reg.MustRegister(m.listRequests, m.listResults, m.jobsCreated, m.jobsDeleted, m.applications, m.httpRequests)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveList(scope string, cacheHit bool, visible int) {
	if m == nil {
		return
	}
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	m.listRequests.WithLabelValues(scope, outcome).Inc()
	m.listResults.Observe(float64(visible))
}

func (m *Metrics) JobCreated() {
	if m == nil {
		return
	}
	m.jobsCreated.Inc()
}

func (m *Metrics) JobDeleted() {
	if m == nil {
		return
	}
	m.jobsDeleted.Inc()
}

func (m *Metrics) Application(created bool) {
	if m == nil {
		return
	}
	outcome := "duplicate"
	if created {
		outcome = "created"
	}
	m.applications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveHTTP(method string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
