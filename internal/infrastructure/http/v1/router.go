// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"profitline/internal/domain/auth"
	"profitline/internal/domain/report"
	"profitline/internal/infrastructure/http/v1/handlers"
	"profitline/internal/infrastructure/http/v1/middleware"
	"profitline/internal/infrastructure/storage/postgres"
	"profitline/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// ReportService generates profit & loss reports
	ReportService *report.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
		apiV1.POST("/auth/login", authHandler.Login)

		reportsHandler := handlers.NewReportsHandler(base, cfg.ReportService)
		reports := apiV1.Group("/reports")
		reports.Use(middleware.Auth(cfg.JWTValidator))
		{
			reports.GET("/profit-loss", reportsHandler.GetProfitLoss)
		}
	}

	return router
}
