package router

import (
	"chestAnalyzer/internal/middleware"
	"chestAnalyzer/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupAnalysisRoutes(api *echo.Group, handler *rest.AnalysisHandler) {
	api.POST("/analyze", handler.Analyze)
	api.POST("/analyze/batch", handler.AnalyzeBatch)
	api.GET("/metrics", handler.PerformanceMetrics)
}

func SetupChestRoutes(api *echo.Group, handler *rest.ChestHandler) {
	chests := api.Group("/chests")
	chests.POST("/optimize", handler.Optimize)

	api.GET("/chest-configs", handler.Configs)
}

func SetupRewardRoutes(api *echo.Group, handler *rest.RewardHandler) {
	rewards := api.Group("/rewards")
	rewards.POST("/open", handler.Open)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler, jwtSecret string) {
	admin := api.Group("/cache", middleware.AdminAuthMiddleware(jwtSecret))
	admin.POST("/clear", handler.ClearCache)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
