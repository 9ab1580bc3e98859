package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"plant-advisor/internal/api/handlers/health"
	recommendHandler "plant-advisor/internal/api/handlers/recommend"
	"plant-advisor/internal/api/middleware"
	"plant-advisor/internal/core/ai/cache"
	"plant-advisor/internal/core/ai/provider"
	aiservice "plant-advisor/internal/core/ai/service"
	"plant-advisor/internal/core/recommend"
	"plant-advisor/internal/core/weather"
	"plant-advisor/internal/infrastructure/config"
	"plant-advisor/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	timeoutDuration = 120 * time.Second
	// 1MB is plenty for coordinate and preference payloads
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes.
func SetupRouter(cfg *config.Config, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.String("ai_provider", cfg.AI.Provider),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Duration("timeout", timeoutDuration),
	)

	var prov provider.Provider
	switch cfg.AI.Provider {
	case "local":
		prov = provider.NewLMStudioClient(cfg.AI.Local)
	case "gemini":
		prov = provider.NewGeminiClient(cfg.AI.Gemini)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.AI.Provider)
	}

	aiService := aiservice.NewService(cfg, prov, store)
	if aiService == nil {
		common.LogError("Failed to initialize AI service")
		return nil, fmt.Errorf("failed to initialize AI service")
	}

	weatherClient := weather.NewClient(cfg.Weather)
	recommendSvc := recommend.NewService(cfg, aiService, weatherClient)

	// request timeout plus context injection for handlers that read
	// config from the gin context
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		api.POST("/recommendations", recommendHandler.HandleRecommendations(recommendSvc))
		api.POST("/environment/preview", recommendHandler.HandleEnvironmentPreview(recommendSvc))
		api.POST("/report/summary", recommendHandler.HandleReportSummary())
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
