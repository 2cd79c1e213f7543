package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveHTTP(http.MethodGet, "/v1/listings/:id", http.StatusOK, 20*time.Millisecond)
	c.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	c.RecordGateDecision(OutcomeForbidden)
	c.RecordGateDecision(OutcomeForbidden)
	c.RecordRateLimited("rl:login:")
	c.RecordRegistration("Recruiter")
	c.RecordLoginFailure()
	c.RecordApplicationSubmitted()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "/v1/listings/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.gateDecisions.WithLabelValues(OutcomeForbidden)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rateLimited.WithLabelValues("rl:login:")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.registrations.WithLabelValues("Recruiter")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.loginFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.applicationsIn))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveHTTP("GET", "/", 200, time.Millisecond)
		c.RecordGateDecision(OutcomeAllowed)
		c.RecordRateLimited("x")
		c.RecordRegistration("Recruiter")
		c.RecordLoginFailure()
		c.RecordApplicationSubmitted()
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)
	c.RecordGateDecision(OutcomeAllowed)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `jobboard_authz_gate_decisions_total{outcome="allowed"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
