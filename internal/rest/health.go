package rest

import (
	"context"
	"net/http"
	"time"

	"chestAnalyzer/domain"

	"github.com/labstack/echo/v4"
)

type (
	HealthHandler struct {
		serviceName string
		version     string
		pinger      Pinger
		metrics     MetricsProvider
	}

	Pinger interface {
		Ping(ctx context.Context) error
	}

	MetricsProvider interface {
		Metrics() domain.PerformanceMetrics
	}

	HealthResponse struct {
		Status             string                    `json:"status"`
		Service            string                    `json:"service"`
		Version            string                    `json:"version"`
		Timestamp          time.Time                 `json:"timestamp"`
		RedisStatus        string                    `json:"redis_status"`
		PerformanceMetrics domain.PerformanceMetrics `json:"performance_metrics"`
	}
)

// NewHealthHandler builds the health endpoint. pinger may be nil when the
// service runs without a distributed cache.
func NewHealthHandler(serviceName, version string, pinger Pinger, metrics MetricsProvider) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		pinger:      pinger,
		metrics:     metrics,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	redisStatus := "disconnected"
	if h.pinger != nil && h.pinger.Ping(ctx) == nil {
		redisStatus = "connected"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:             "healthy",
		Service:            h.serviceName,
		Version:            h.version,
		Timestamp:          time.Now().UTC(),
		RedisStatus:        redisStatus,
		PerformanceMetrics: h.metrics.Metrics(),
	})
}
