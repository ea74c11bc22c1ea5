package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"chestAnalyzer/domain"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error { return s.err }

type stubMetricsProvider struct{}

func (stubMetricsProvider) Metrics() domain.PerformanceMetrics {
	return domain.PerformanceMetrics{TotalAnalyses: 3}
}

func TestHealthWithRedis(t *testing.T) {
	h := NewHealthHandler("chest-analyzer", "1.0.0", &stubPinger{}, stubMetricsProvider{})

	rec := getJSON(t, h.Health)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"healthy"`)
	assert.Contains(t, body, `"redis_status":"connected"`)
	assert.Contains(t, body, `"total_analyses":3`)
}

func TestHealthRedisDown(t *testing.T) {
	h := NewHealthHandler("chest-analyzer", "1.0.0", &stubPinger{err: errors.New("dial refused")}, stubMetricsProvider{})

	rec := getJSON(t, h.Health)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis_status":"disconnected"`)
}

func TestHealthWithoutRedis(t *testing.T) {
	h := NewHealthHandler("chest-analyzer", "1.0.0", nil, stubMetricsProvider{})

	rec := getJSON(t, h.Health)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis_status":"disconnected"`)
}
