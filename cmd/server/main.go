package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/database"
	"rental-backoffice/internal/handlers"
	"rental-backoffice/internal/middleware"
	"rental-backoffice/internal/repositories"
	"rental-backoffice/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	ownerRepo := repositories.NewOwnerRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	statementRepo := repositories.NewStatementRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	converter := services.NewRateTableConverter(cfg.Engine.ExchangeRates, metrics)
	renderer := services.NewTextStatementRenderer()
	notifier := services.NewLogOwnerNotifier()

	builderService := services.NewStatementBuilderService(
		ownerRepo, propertyRepo, bookingRepo, expenseRepo, walletRepo, statementRepo,
		converter, metrics,
		services.StatementBuilderOptions{
			BookingStatuses:        cfg.Engine.BookingStatuses,
			ConversionWorkers:      cfg.Engine.ConversionWorkers,
			DefaultDisplayCurrency: cfg.Engine.DefaultDisplayCurrency,
		},
	)
	lifecycleService := services.NewStatementLifecycleService(
		statementRepo, walletRepo, renderer, notifier, metrics)
	walletService := services.NewWalletService(walletRepo, ownerRepo, metrics)

	// Handlers
	statementHandler := handlers.NewStatementHandler(builderService, lifecycleService)
	walletHandler := handlers.NewWalletHandler(walletService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	api.POST("/statements", statementHandler.GenerateStatement)
	api.GET("/statements/:id", statementHandler.GetStatement)
	api.DELETE("/statements/:id", statementHandler.DeleteStatement)
	api.POST("/statements/:id/finalize", statementHandler.FinalizeStatement)
	api.GET("/owners/:ownerId/statements", statementHandler.ListStatements)
	api.GET("/owners/:ownerId/wallet", walletHandler.GetWallet)
	api.POST("/owners/:ownerId/payouts", walletHandler.CreatePayout)

	// Start server with graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		slog.Info("server starting",
			"addr", addr,
			"environment", cfg.Server.Environment,
			"display_currency", cfg.Engine.DefaultDisplayCurrency)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
