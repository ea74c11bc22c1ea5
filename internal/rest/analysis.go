package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"chestAnalyzer/business/analysis"
	"chestAnalyzer/domain"
	"chestAnalyzer/pkg/logger"
	"chestAnalyzer/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const maxBatchSize = 100

type (
	AnalysisHandler struct {
		validate        *validator.Validate
		analysisService AnalysisService
		timeout         time.Duration
	}

	AnalysisService interface {
		AnalyzeUser(ctx context.Context, history domain.ActivityHistory, tiers []domain.ChestTier, useCache bool) (domain.UserAnalysis, error)
		AnalyzeBatch(ctx context.Context, histories []domain.ActivityHistory, tiers []domain.ChestTier, useCache bool) []domain.UserAnalysis
		Metrics() domain.PerformanceMetrics
	}

	DepositRequest struct {
		Date   time.Time `json:"date" validate:"required"`
		Amount float64   `json:"amount" validate:"gte=0"`
	}

	BetRequest struct {
		Date   time.Time `json:"date" validate:"required"`
		Amount float64   `json:"amount" validate:"gte=0"`
		Result string    `json:"result" validate:"required,oneof=win loss"`
	}

	SessionRequest struct {
		StartTime       time.Time `json:"start_time" validate:"required"`
		DurationMinutes float64   `json:"duration_minutes" validate:"gte=0"`
	}

	AnalyzeRequest struct {
		UserID           string           `json:"user_id" validate:"required"`
		RegistrationDate time.Time        `json:"registration_date" validate:"required"`
		LastActivityDate time.Time        `json:"last_activity_date" validate:"required"`
		Deposits         []DepositRequest `json:"deposits" validate:"dive"`
		Bets             []BetRequest     `json:"bets" validate:"dive"`
		Sessions         []SessionRequest `json:"sessions" validate:"dive"`
		Tiers            []string         `json:"tiers"`
		UseCache         *bool            `json:"use_cache"`
	}

	BatchAnalyzeRequest struct {
		Users    []AnalyzeRequest `json:"users"`
		Tiers    []string         `json:"tiers"`
		UseCache *bool            `json:"use_cache"`
	}

	BatchAnalysisResponse struct {
		TotalProcessed  int                   `json:"total_processed"`
		LowRiskCount    int                   `json:"low_risk_count"`
		MediumRiskCount int                   `json:"medium_risk_count"`
		HighRiskCount   int                   `json:"high_risk_count"`
		Results         []domain.UserAnalysis `json:"results"`
	}
)

func NewAnalysisHandler(svc AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		validate:        validator.New(),
		analysisService: svc,
		timeout:         10 * time.Second,
	}
}

func (r AnalyzeRequest) toHistory() domain.ActivityHistory {
	history := domain.ActivityHistory{
		UserID:           r.UserID,
		RegistrationDate: r.RegistrationDate,
		LastActivityDate: r.LastActivityDate,
	}
	for _, d := range r.Deposits {
		history.Deposits = append(history.Deposits, domain.DepositRecord{Date: d.Date, Amount: d.Amount})
	}
	for _, b := range r.Bets {
		history.Bets = append(history.Bets, domain.BetRecord{Date: b.Date, Amount: b.Amount, Result: domain.BetResult(b.Result)})
	}
	for _, s := range r.Sessions {
		history.Sessions = append(history.Sessions, domain.SessionRecord{StartTime: s.StartTime, DurationMinutes: s.DurationMinutes})
	}
	return history
}

func toTiers(tiers []string) []domain.ChestTier {
	out := make([]domain.ChestTier, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, domain.ChestTier(t))
	}
	return out
}

func useCacheOrDefault(useCache *bool) bool {
	if useCache == nil {
		return true
	}
	return *useCache
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()
	metrics.AnalyzeRequests.Inc()

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.analysisService.AnalyzeUser(ctx, req.toHistory(), toTiers(req.Tiers), useCacheOrDefault(req.UseCache))
	if err != nil {
		if errors.Is(err, analysis.ErrMissingUserID) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to analyze user", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.AnalyzeLatency.Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *AnalysisHandler) AnalyzeBatch(c echo.Context) error {
	metrics.BatchAnalyzeRequests.Inc()

	var req BatchAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if len(req.Users) == 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing users array"})
	}
	if len(req.Users) > maxBatchSize {
		return c.JSON(http.StatusBadRequest, ResponseError{
			Message: fmt.Sprintf("batch size limit exceeded (max %d users)", maxBatchSize),
		})
	}

	var validationErrors []string
	histories := make([]domain.ActivityHistory, 0, len(req.Users))
	for i, user := range req.Users {
		if err := h.validate.Struct(&user); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("user %d: %v", i, err))
			continue
		}
		histories = append(histories, user.toHistory())
	}
	if len(validationErrors) > 0 {
		return c.JSON(http.StatusBadRequest, BatchResponseError{
			Message: "invalid batch entries",
			Errors:  validationErrors,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results := h.analysisService.AnalyzeBatch(ctx, histories, toTiers(req.Tiers), useCacheOrDefault(req.UseCache))

	resp := BatchAnalysisResponse{
		TotalProcessed: len(results),
		Results:        results,
	}
	for _, r := range results {
		switch r.Behavior.RiskLevel {
		case domain.RiskLow:
			resp.LowRiskCount++
		case domain.RiskMedium:
			resp.MediumRiskCount++
		default:
			resp.HighRiskCount++
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

// PerformanceMetrics serves the analyzer's own counter snapshot; the
// Prometheus registry is exposed separately on /metrics.
func (h *AnalysisHandler) PerformanceMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.analysisService.Metrics()))
}
