package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/OilLobbyist/silver-tracker/internal/config"
	"github.com/OilLobbyist/silver-tracker/internal/scheduler"
	"github.com/OilLobbyist/silver-tracker/internal/server/handlers"
	"github.com/OilLobbyist/silver-tracker/internal/server/router"
	"github.com/OilLobbyist/silver-tracker/internal/service/pricing"
	"github.com/OilLobbyist/silver-tracker/internal/service/stack"
	"github.com/OilLobbyist/silver-tracker/pkg/clients/goldapi"
	"github.com/OilLobbyist/silver-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Logging.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	// A missing API key is a supported mode: the oracle then serves the
	// configured fallback price without touching the network.
	var quoteClient goldapi.Client
	if cfg.Metals.APIKey != "" {
		quoteClient = goldapi.NewClient(cfg.Metals.APIKey, cfg.Metals.BaseURL, cfg.Metals.Timeout)
		baseLogger.Info("goldapi client enabled")
	} else {
		baseLogger.Info("metals api key missing, live spot prices disabled",
			zap.Float64("fallback", cfg.Pricing.FallbackPrice))
	}

	oracle := pricing.NewOracle(quoteClient, cfg.Pricing.CacheTTL, cfg.Pricing.FallbackPrice, baseLogger.Named("svc.pricing"))
	stackSvc := stack.NewService(baseLogger.Named("svc.stack"))
	sessions := stack.NewSessionManager(nil)

	stackHandler := handlers.NewStackHandler(oracle, stackSvc, sessions, baseLogger.Named("handlers.stack"))
	engine := router.New(stackHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(sessions, cfg.Sessions.SweepSchedule, cfg.Sessions.MaxIdle, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
