package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/config"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/handlers"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/ratelimit"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/scheduler"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/store"
)

func main() {
	// .env is optional, absence is not an error
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	logger := newLogger(cfg.Logging)
	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
	} else {
		logger.Info("configuration loaded", "path", configPath)
	}

	dataFile := getEnv("DATA_FILE", cfg.Data.File)
	st := store.New(dataFile, logger)
	if err := st.Reload(); err != nil {
		logger.Error("initial dataset load failed", "file", dataFile, "error", err)
	}
	if st.Count() == 0 {
		logger.Warn("starting with an empty dataset", "file", dataFile)
	} else {
		logger.Info("dataset loaded", "file", dataFile, "listings", st.Count())
	}

	rateLimiter := ratelimit.NewRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.RequestsPerHour,
		cfg.RateLimit.Enabled,
	)

	appScheduler := scheduler.NewScheduler(st, cfg, logger)
	if err := appScheduler.Start(); err != nil {
		logger.Warn("failed to start scheduler", "error", err)
	}
	defer appScheduler.Stop()

	api := handlers.NewAPIHandler(st, cfg, rateLimiter, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/health", api.Health)
	r.GET("/api/listings", api.ListListings)
	r.GET("/api/listings/:id", api.GetListing)
	r.GET("/api/facets", api.GetFacets)
	r.GET("/api/stats", api.GetStats)
	r.POST("/api/mortgage", api.Mortgage)

	admin := r.Group("/api/admin")
	{
		admin.POST("/reload", api.Reload)
		admin.GET("/ratelimit", api.RateLimitStats)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	port := getEnv("PORT", strconv.Itoa(cfg.Server.Port))
	logger.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	if cfg.Color {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      cfg.SlogLevel(),
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
