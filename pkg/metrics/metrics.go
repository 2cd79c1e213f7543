// Package metrics exposes the API's Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jobboard"

// Gate decision outcomes.
const (
	OutcomePublic          = "public"
	OutcomeUnrestricted    = "unrestricted"
	OutcomeAllowed         = "allowed"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeNotFound        = "not_found"
	OutcomeForbidden       = "forbidden"
	OutcomeError           = "error"
)

// Collector records HTTP, authorization and domain metrics.
type Collector struct {
	requests       *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	gateDecisions  *prometheus.CounterVec
	rateLimited    *prometheus.CounterVec
	registrations  *prometheus.CounterVec
	loginFailures  prometheus.Counter
	applicationsIn prometheus.Counter
}

// NewCollector builds the collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route template.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authz_gate_decisions_total",
			Help:      "Role-authorization gate decisions by outcome.",
		}, []string{"outcome"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter, by limiter key prefix.",
		}, []string{"limiter"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_registrations_total",
			Help:      "Successful user registrations by role.",
		}, []string{"role"}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_failures_total",
			Help:      "Rejected login attempts.",
		}),
		applicationsIn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_submitted_total",
			Help:      "Job applications successfully submitted.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.gateDecisions,
		c.rateLimited,
		c.registrations,
		c.loginFailures,
		c.applicationsIn,
	)
	return c
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) RecordGateDecision(outcome string) {
	if c == nil {
		return
	}
	c.gateDecisions.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRateLimited(limiter string) {
	if c == nil {
		return
	}
	c.rateLimited.WithLabelValues(limiter).Inc()
}

func (c *Collector) RecordRegistration(role string) {
	if c == nil {
		return
	}
	c.registrations.WithLabelValues(role).Inc()
}

func (c *Collector) RecordLoginFailure() {
	if c == nil {
		return
	}
	c.loginFailures.Inc()
}

func (c *Collector) RecordApplicationSubmitted() {
	if c == nil {
		return
	}
	c.applicationsIn.Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
