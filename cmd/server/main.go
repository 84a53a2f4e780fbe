package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/server"
	"finance-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	sessionSweepInterval = 5 * time.Minute
	shutdownTimeout      = 30 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Server.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	guard := repositories.NewStoreGuard(repositories.StoreGuardConfig{
		MaxFailures:     cfg.Engine.StoreMaxFailures,
		ResetTimeout:    cfg.Engine.StoreResetTimeout,
		HalfOpenMaxSucc: cfg.Engine.StoreHalfOpenMaxSucc,
	})
	persisted := repositories.NewLedger(db.DB, guard)

	demo, err := repositories.NewDemoLedger()
	if err != nil {
		return err
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	events := services.NewLedgerEventLogger(logger)

	deps := &services.LedgerDependencies{
		Persisted:            persisted,
		Demo:                 demo,
		Identity:             services.NewContextIdentityProvider(),
		Reconciler:           services.NewBalanceReconciler(persisted.Accounts, persisted.Transactions, events, metrics),
		Events:               events,
		Metrics:              metrics,
		BudgetWarningPercent: cfg.Engine.BudgetWarningPercent,
	}
	sessions := services.NewSessionRegistry(deps,
		cfg.Engine.MaxSessions,
		cfg.Engine.SessionTTL,
		cfg.Engine.AggregateCacheSize,
		cfg.Engine.AggregateCacheTTL,
	)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	router := server.NewRouter(server.Dependencies{
		Config:      cfg,
		Logger:      logger,
		Registerer:  prometheus.DefaultRegisterer,
		Gatherer:    prometheus.DefaultGatherer,
		Sessions:    sessions,
		Tokens:      services.NewTokenService(&cfg.JWT),
		Store:       sqlDB,
		RateLimiter: rateLimiter,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting finance tracker API", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		rateLimiter.Run(ctx)
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(sessionSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if removed := sessions.Sweep(); removed > 0 {
					logger.Debug("Expired sessions swept", "removed", removed)
				}
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
