package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", "error", err)
	}

	if err := run(logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	dashboardLogger := services.NewDashboardLogger(logger)
	breaker := services.NewStoreBreaker(services.DefaultStoreBreakerConfig(), func(oldState, newState services.BreakerState) {
		dashboardLogger.LogStoreBreakerStateChange(context.Background(), oldState, newState)
		metrics.RecordGauge(services.MetricStoreBreakerState, float64(newState), nil)
	})

	profileRepo := repositories.NewProfileRepository(db.DB)
	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	goalRepo := repositories.NewGoalRepository(db.DB)

	dashboard := services.NewDashboardService(
		profileRepo, accountRepo, transactionRepo, goalRepo,
		breaker, dashboardLogger, metrics, &cfg.Dashboard,
	)
	verifier := services.NewTokenVerifier(&cfg.Auth)
	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	errorHandler := middleware.NewErrorHandler(logger, metrics)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = errorHandler.HandleHTTPError
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(errorHandler.ReportErrors())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(rateLimiter.Middleware())

	healthHandler := handlers.NewHealthCheckHandler(db.DB, breaker)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	dashboardHandler := handlers.NewDashboardHandler(dashboard)
	// anonymous callers get the sample view
	api.GET("/dashboard", dashboardHandler.GetDashboard, middleware.OptionalAuth(verifier))
	api.POST("/dashboard/reload", dashboardHandler.Reload, middleware.OptionalAuth(verifier))

	authed := api.Group("/dashboard", middleware.RequireAuth(verifier))
	authed.POST("/real-data", dashboardHandler.MarkRealData)
	authed.GET("/:collection", dashboardHandler.GetCollection)
	authed.POST("/:collection", dashboardHandler.AddEntity)
	authed.PATCH("/:collection/:id", dashboardHandler.UpdateEntity)
	authed.DELETE("/:collection/:id", dashboardHandler.DeleteEntity)

	if cfg.IsDevelopment() && cfg.Dashboard.SeedingEnabled {
		seeder := services.NewDemoSeeder(profileRepo, accountRepo, transactionRepo, goalRepo, dashboardLogger, metrics)
		devHandler := handlers.NewDevHandler(seeder, dashboard, verifier)
		dev := api.Group("/dev")
		dev.POST("/token", devHandler.IssueToken)
		dev.POST("/seed", devHandler.SeedDemoData, middleware.RequireAuth(verifier))
		logger.Warn("development endpoints enabled", "prefix", "/api/v1/dev")
	}

	address := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rateLimiter.RunSweeper(gctx)
		return nil
	})
	g.Go(func() error {
		dashboard.RunSessionSweeper(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
