package credentials

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trusted-api/core/metrics"
	"trusted-api/core/signing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupGuardApp(t *testing.T) (*fiber.App, *metrics.Metrics) {
	m := metrics.New()
	guard := NewGuard(NewVerifier(setupStore(t), signing.SchemeMD5), "X-TBA-Auth-Id", "X-TBA-Auth-Sig", zap.NewNop(), m)

	app := fiber.New()
	app.Post("/api/trusted/v1/event/:event_key/matches/update", guard.Require(CapabilityEventData), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"credential": FromCtx(c).ID})
	})
	return app, m
}

func rejections(t *testing.T, m *metrics.Metrics, reason string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "trusted_auth_rejections_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "reason" && label.GetValue() == reason {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestGuard_Require(t *testing.T) {
	app, m := setupGuardApp(t)
	body := "[]"

	t.Run("NoHeaders", func(t *testing.T) {
		req := httptest.NewRequest("POST", testPath, strings.NewReader(body))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Contains(t, out, "Error")
	})

	t.Run("Signed", func(t *testing.T) {
		req := httptest.NewRequest("POST", testPath, strings.NewReader(body))
		req.Header.Set("X-TBA-Auth-Id", "tEsT_id_1")
		req.Header.Set("X-TBA-Auth-Sig", signing.SchemeMD5.Sign(testSecret, testPath, []byte(body)))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "tEsT_id_1", out["credential"])
	})

	t.Run("PathOfOtherEvent", func(t *testing.T) {
		otherPath := "/api/trusted/v1/event/2014cama/matches/update"
		req := httptest.NewRequest("POST", otherPath, strings.NewReader(body))
		req.Header.Set("X-TBA-Auth-Id", "tEsT_id_1")
		req.Header.Set("X-TBA-Auth-Sig", signing.SchemeMD5.Sign(testSecret, otherPath, []byte(body)))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	assert.Equal(t, 1.0, rejections(t, m, "missing_headers"))
	assert.Equal(t, 1.0, rejections(t, m, "event_not_authorized"))
	assert.Equal(t, 0.0, rejections(t, m, "signature_mismatch"))
}

func TestGuard_CacheKeysSurviveRequestReuse(t *testing.T) {
	cached := NewCachedStore(setupStore(t), time.Minute).(*CachedStore)
	guard := NewGuard(NewVerifier(cached, signing.SchemeMD5), "X-TBA-Auth-Id", "X-TBA-Auth-Sig", zap.NewNop(), metrics.New())

	app := fiber.New()
	app.Post("/api/trusted/v1/event/:event_key/matches/update", guard.Require(CapabilityEventData), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	body := "[]"
	ids := []string{"tEsT_id_1", "tEsT_id_2", "tEsT_id_1", "tEsT_id_2", "tEsT_id_1"}
	for _, id := range ids {
		req := httptest.NewRequest("POST", testPath, strings.NewReader(body))
		req.Header.Set("X-TBA-Auth-Id", id)
		req.Header.Set("X-TBA-Auth-Sig", signing.SchemeMD5.Sign(testSecret, testPath, []byte(body)))
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	cached.mu.RLock()
	defer cached.mu.RUnlock()
	require.Len(t, cached.entries, 2)
	for key, entry := range cached.entries {
		assert.Equal(t, key, entry.cred.ID)
	}
	assert.Contains(t, cached.entries, "tEsT_id_1")
	assert.Contains(t, cached.entries, "tEsT_id_2")
}
