// @title RedFlag API
// @version 1.0
// @description Quality of Earnings red-flag scans for small business acquisitions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"redflag/analysis"
	"redflag/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var (
	dbPool        *pgxpool.Pool
	queries       Store
	reportCache   ReportCache = noopReportCache{}
	notifier      Notifier    = noopNotifier{}
	engineOptions             = analysis.DefaultOptions()
	logger                    = logrus.New()
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}
	logger = newLogger(cfg.LogLevel)

	if engineOptions, err = cfg.engineOptions(); err != nil {
		logger.WithError(err).Fatal("Error loading keyword tables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err = connectDatabase(ctx, cfg.connString())
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer dbPool.Close()

	if _, err := os.Stat(cfg.MigrationsPath); os.IsNotExist(err) {
		logger.WithField("path", cfg.MigrationsPath).Warn("Migrations directory not found, skipping migrations")
	} else if err := migrateDatabase(cfg.connString(), cfg.MigrationsPath); err != nil {
		logger.WithError(err).Fatal("Error running migrations")
	}

	queries = generated.New(dbPool)

	if cfg.RedisURL != "" {
		cache, err := newRedisReportCache(ctx, cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Fatal("Error connecting to report cache")
		}
		defer cache.Close()
		reportCache = cache
	}
	if cfg.SMTPHost != "" {
		notifier = newEmailNotifier(cfg, logger)
	}

	jobs, err := startJobs()
	if err != nil {
		logger.WithError(err).Fatal("Error scheduling jobs")
	}
	defer jobs.Stop()

	limiter := newUserRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	sweeperStop := make(chan struct{})
	go limiter.runSweeper(sweeperStop)
	defer close(sweeperStop)

	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(cfg, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Error during shutdown")
	}
}
