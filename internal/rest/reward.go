package rest

import (
	"context"
	"net/http"
	"time"

	"chestAnalyzer/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RewardHandler struct {
		validate         *validator.Validate
		rewardCalculator RewardCalculator
		timeout          time.Duration
	}

	RewardCalculator interface {
		Calculate(ctx context.Context, signals domain.ActivitySignals, tier domain.ChestTier) domain.RewardResult
	}

	OpenChestRequest struct {
		UserID         string  `json:"user_id" validate:"required"`
		Tier           string  `json:"tier" validate:"required"`
		RecentActivity float64 `json:"recent_activity" validate:"gte=0,lte=1"`
		LoyaltyLevel   string  `json:"loyalty_level" validate:"omitempty,oneof=standard premium vip"`
		WeeklyVolume   float64 `json:"weekly_volume" validate:"gte=0"`
	}
)

func NewRewardHandler(calculator RewardCalculator) *RewardHandler {
	return &RewardHandler{
		validate:         validator.New(),
		rewardCalculator: calculator,
		timeout:          10 * time.Second,
	}
}

func (h *RewardHandler) Open(c echo.Context) error {
	var req OpenChestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	loyalty := domain.LoyaltyLevel(req.LoyaltyLevel)
	if loyalty == "" {
		loyalty = domain.LoyaltyStandard
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	signals := domain.ActivitySignals{
		RecentActivity: req.RecentActivity,
		LoyaltyLevel:   loyalty,
		WeeklyVolume:   req.WeeklyVolume,
	}
	result := h.rewardCalculator.Calculate(ctx, signals, domain.ChestTier(req.Tier))

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
