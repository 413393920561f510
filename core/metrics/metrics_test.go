package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveRequest("matches", "update", OutcomeSuccess, 20*time.Millisecond)
	m.ObserveRequest("matches", "update", OutcomeSuccess, 10*time.Millisecond)
	m.AuthRejected("signature_mismatch")
	m.RecordsMutated("match", "put", 3)
	m.RecordsMutated("match", "delete", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("matches", "update", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authRejections.WithLabelValues("signature_mismatch")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.recordsMutated.WithLabelValues("match", "put")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.recordsMutated))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("awards", "update", OutcomeFailed, time.Second)
		m.AuthRejected("unknown_credential")
		m.RecordsMutated("award", "put", 1)
	})
	assert.Nil(t, m.Registry())
}

func TestHandler(t *testing.T) {
	m := New()
	m.AuthRejected("capability_not_granted")

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `trusted_auth_rejections_total{reason="capability_not_granted"} 1`)
}
