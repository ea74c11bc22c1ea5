package rest

import (
	"context"
	"net/http"
	"time"

	"chestAnalyzer/business/chest"
	"chestAnalyzer/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ChestHandler struct {
		validate       *validator.Validate
		chestOptimizer ChestOptimizer
		configReader   ConfigReader
		timeout        time.Duration
	}

	ChestOptimizer interface {
		Optimize(ctx context.Context, profile domain.UserProfile, tiers []domain.ChestTier) domain.ChestDistribution
	}

	ConfigReader interface {
		GetJSON(ctx context.Context, key string, dest any) bool
	}

	OptimizeRequest struct {
		UserID        string   `json:"user_id" validate:"required"`
		Score         *float64 `json:"score" validate:"required,gte=0,lte=100"`
		RiskLevel     string   `json:"risk_level" validate:"required,oneof=low medium high very_high"`
		HistoryLength int      `json:"history_length" validate:"gte=0"`
		Tiers         []string `json:"tiers"`
	}
)

func NewChestHandler(optimizer ChestOptimizer, configReader ConfigReader) *ChestHandler {
	return &ChestHandler{
		validate:       validator.New(),
		chestOptimizer: optimizer,
		configReader:   configReader,
		timeout:        10 * time.Second,
	}
}

func (h *ChestHandler) Optimize(c echo.Context) error {
	var req OptimizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile := domain.UserProfile{
		UserID:        req.UserID,
		Score:         *req.Score,
		RiskLevel:     domain.RiskLevel(req.RiskLevel),
		HistoryLength: req.HistoryLength,
	}
	distribution := h.chestOptimizer.Optimize(ctx, profile, toTiers(req.Tiers))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(distribution))
}

// Configs lists every tier configuration the resolver can currently
// serve. Tiers the config source does not know are left out.
func (h *ChestHandler) Configs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	configs := make(map[domain.ChestTier]domain.ChestTierConfig)
	for _, tier := range domain.AllChestTiers {
		var cfg domain.ChestTierConfig
		if h.configReader.GetJSON(ctx, chest.TierConfigKey(tier), &cfg) {
			configs[tier] = cfg
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(configs))
}
