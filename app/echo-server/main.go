package main

import (
	"chestAnalyzer/app/echo-server/router"
	"chestAnalyzer/business/analysis"
	"chestAnalyzer/business/behavior"
	"chestAnalyzer/business/chest"
	"chestAnalyzer/business/configcache"
	"chestAnalyzer/business/reward"
	"chestAnalyzer/internal/middleware"
	"chestAnalyzer/internal/repository/configservice"
	redisRepo "chestAnalyzer/internal/repository/redis"
	"chestAnalyzer/internal/rest"
	"chestAnalyzer/pkg/config"
	"chestAnalyzer/pkg/database/redis"
	"chestAnalyzer/pkg/logger"
	"chestAnalyzer/pkg/metrics"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Chest Analyzer", "version", cfg.App.Version)

	metrics.Init()

	// Redis is optional: without it the service runs on the in-process
	// cache tier alone.
	var configCache *redisRepo.ConfigCache
	var analysisCache *redisRepo.AnalysisCache

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis not available, running without distributed cache", "error", err)
	} else {
		logger.Info("Redis connected successfully")
		configCache = redisRepo.NewConfigCache(redisClient)
		analysisCache = redisRepo.NewAnalysisCache(redisClient)
		defer func() {
			if err := redis.CloseRedisClient(redisClient); err != nil {
				logger.Error("Failed to close Redis client", err)
			}
		}()
	}

	// Init origin + resolver
	originClient := configservice.NewClient(configservice.ClientConfig{
		BaseURL: cfg.ConfigService.BaseURL,
		Timeout: cfg.ConfigService.Timeout,
	})

	var distCache configcache.DistributedCache
	if configCache != nil {
		distCache = configCache
	}
	resolver := configcache.NewResolver(originClient, distCache, cfg.Cache.TTL)

	// Init services
	behaviorAnalyzer := behavior.NewAnalyzer()
	chestOptimizer := chest.NewOptimizer(resolver)
	rewardCalculator := reward.NewCalculator(resolver, nil)

	var resultCache analysis.ResultCache
	if analysisCache != nil {
		resultCache = analysisCache
	}
	analysisService := analysis.NewService(behaviorAnalyzer, chestOptimizer, resultCache, cfg.Cache.TTL)

	// Init handlers
	analysisHandler := rest.NewAnalysisHandler(analysisService)
	chestHandler := rest.NewChestHandler(chestOptimizer, resolver)
	rewardHandler := rest.NewRewardHandler(rewardCalculator)
	adminHandler := rest.NewAdminHandler(analysisService, resolver)

	var pinger rest.Pinger
	if configCache != nil {
		pinger = configCache
	}
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version, pinger, analysisService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupAnalysisRoutes(api, analysisHandler)
	router.SetupChestRoutes(api, chestHandler)
	router.SetupRewardRoutes(api, rewardHandler)
	router.SetupAdminRoutes(api, adminHandler, cfg.JWT.SecretKey)
	router.SetupHealthRoutes(e, healthHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
