package rest

import (
	"context"
	"net/http"
	"time"

	"chestAnalyzer/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	AdminHandler struct {
		cacheClearer  CacheClearer
		configCleaner ConfigCacheCleaner
		timeout       time.Duration
	}

	CacheClearer interface {
		ClearCache(ctx context.Context, userID string) error
	}

	ConfigCacheCleaner interface {
		Invalidate(ctx context.Context, key string)
		Clear(ctx context.Context)
	}

	ClearCacheRequest struct {
		UserID    string `json:"user_id"`
		ConfigKey string `json:"config_key"`
	}
)

func NewAdminHandler(cacheClearer CacheClearer, configCleaner ConfigCacheCleaner) *AdminHandler {
	return &AdminHandler{
		cacheClearer:  cacheClearer,
		configCleaner: configCleaner,
		timeout:       10 * time.Second,
	}
}

// ClearCache is the operator-triggered cache reset. With a user_id it
// drops that user's cached analysis, with a config_key it invalidates one
// config entry, with neither it clears both caches entirely.
func (h *AdminHandler) ClearCache(c echo.Context) error {
	var req ClearCacheRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	switch {
	case req.UserID != "":
		if err := h.cacheClearer.ClearCache(ctx, req.UserID); err != nil {
			logger.Error("Failed to clear analysis cache", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, fres.Response.StatusOK("cache cleared for user "+req.UserID))

	case req.ConfigKey != "":
		h.configCleaner.Invalidate(ctx, req.ConfigKey)
		return c.JSON(http.StatusOK, fres.Response.StatusOK("config key invalidated: "+req.ConfigKey))

	default:
		h.configCleaner.Clear(ctx)
		if err := h.cacheClearer.ClearCache(ctx, ""); err != nil {
			logger.Error("Failed to clear analysis cache", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, fres.Response.StatusOK("all caches cleared"))
	}
}
