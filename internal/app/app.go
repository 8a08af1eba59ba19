package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexrates/internal/adapters/cache"
	"nexrates/internal/adapters/httpclient"
	"nexrates/internal/adapters/postgres"
	"nexrates/internal/api"
	"nexrates/internal/config"
	"nexrates/internal/domain"
	"nexrates/internal/platform/db"
	httpserver "nexrates/internal/platform/http"
	"nexrates/internal/rate"
	"nexrates/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

const dayRatesCacheSize = 1024

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Schema
	if err = db.Migrate(startupCtx, appCfg.DbServer); err != nil {
		logrus.WithError(err).Error("Error applying migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// Day rates read cache
	dayRatesCache, err := cache.NewDayRatesCache(dayRatesCacheSize)
	if err != nil {
		logrus.WithError(err).Error("Error creating day rates cache")
		return err
	}
	defer dayRatesCache.Close()

	// Feed client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	feedClient := httpclient.NewFeedClient(&http.Client{Timeout: httpTimeout}, appCfg.Feed.DocURL)

	// Repositories and services
	dayRatesRepo := postgres.NewDayRatesRepository(pool)
	feedReader := rate.NewFeedReader(feedClient)
	rateService := rate.NewService(dayRatesRepo, dayRatesCache)
	rateValidator := rate.NewValidator(domain.SupportedCodes())

	// Scheduler: one startup backfill run plus a recurring update, guarded by
	// the single-instance lock. Losing the lock only disables ingestion.
	scheduler := rate.NewScheduler(
		dayRatesRepo,
		feedReader,
		dayRatesCache,
		appCfg.Scheduler.LockFile,
		time.Duration(appCfg.Scheduler.UpdateIntervalHours)*time.Hour,
	)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	if scheduler.Enabled() {
		logrus.Info("✅ Scheduler activation successful")
	}

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateValidator, rateService)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
