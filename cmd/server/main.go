package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales-analytics/internal/config"
	"sales-analytics/internal/database"
	"sales-analytics/internal/handlers"
	custommw "sales-analytics/internal/middleware"
	"sales-analytics/internal/repositories"
	"sales-analytics/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	salesRepo, err := repositories.NewSalesRepository(db.DB)
	if err != nil {
		slog.Error("failed to create sales repository", "error", err)
		os.Exit(1)
	}

	metrics := services.NewPrometheusMetrics()
	salesService := services.NewSalesService(salesRepo, metrics, slog.Default())

	salesHandler := handlers.NewSalesHandler(salesService, cfg.IsDevelopment())
	adminHandler := handlers.NewAdminHandler(salesRepo, cfg.IsDevelopment())
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := newRouter(cfg, salesHandler, adminHandler, healthHandler)

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}

func newRouter(
	cfg *config.Config,
	salesHandler *handlers.SalesHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthCheckHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/sales", salesHandler.GetSales)
	api.GET("/filter-options", salesHandler.GetFilterOptions)
	api.GET("/statistics", salesHandler.GetStatistics)

	admin := api.Group("/admin", custommw.RequireAdminToken(cfg.Admin.JWTSecret))
	admin.POST("/truncate", adminHandler.TruncateSales)

	return e
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
