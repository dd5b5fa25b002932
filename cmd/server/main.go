// Package main is the entry point for the profitline API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profitline/internal/domain/auth"
	"profitline/internal/domain/report"
	"profitline/internal/infrastructure/cache"
	v1 "profitline/internal/infrastructure/http/v1"
	"profitline/internal/infrastructure/storage/postgres"
	"profitline/internal/infrastructure/storage/postgres/report_repo"
	"profitline/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting profitline server")

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 25); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// --- Report cache (optional) ---
	var reportCache report.Cache = report.NoopCache{}
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisCache, err := cache.NewRedisReportCache(
			redisAddr,
			getEnv("REDIS_PASSWORD", ""),
			getEnvInt("REDIS_DB", 0),
		)
		if err != nil {
			log.Fatalw("failed to create report cache", "error", err)
		}
		if err := redisCache.Ping(ctx); err != nil {
			log.Fatalw("failed to ping redis", "error", err)
		}
		defer redisCache.Close()
		reportCache = redisCache
		log.Infow("report cache enabled", "addr", redisAddr)
	}

	// --- JWT and Auth Service ---
	jwtConfig := auth.DefaultJWTConfig(mustEnv("JWT_SECRET"))
	if ttl := getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute); ttl > 0 {
		jwtConfig.AccessTokenTTL = ttl
	}
	jwtService := auth.NewJWTService(jwtConfig)
	authService := auth.NewService(
		jwtService,
		getEnv("REPORT_API_USER", "reporting"),
		mustEnv("REPORT_API_PASSWORD_HASH"), // bcrypt hash
	)

	// --- Report Service ---
	recordRepo := report_repo.NewRecordRepo(pool)
	reportService := report.NewService(recordRepo, reportCache)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:          pool,
		Logger:        log,
		JWTValidator:  jwtService,
		AuthService:   authService,
		ReportService: reportService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
