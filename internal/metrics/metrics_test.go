package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveList("Domestic", true, 3)
		m.JobCreated()
		m.JobDeleted()
		m.Application(false)
		m.ObserveHTTP("GET", 200)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.JobCreated()
	m.JobCreated()
	m.ObserveList("International", false, 4)
	m.Application(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.jobsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.listRequests.WithLabelValues("International", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.applications.WithLabelValues("created")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.JobDeleted()

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, string(body), "laborlink_jobs_deleted_total 1")
}
