package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/robfig/cron/v3"
)

const (
	monthlyResetSchedule = "0 0 1 * *"
	stuckScanSchedule    = "@every 10m"
	stuckScanCutoff      = time.Hour
	jobTimeout           = time.Minute
)

// startJobs schedules the monthly quota reset and the stuck-scan reaper.
// The returned cron must be stopped on shutdown.
func startJobs() (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(monthlyResetSchedule, resetMonthlyScans); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(stuckScanSchedule, func() { failStuckScans(time.Now()) }); err != nil {
		return nil, err
	}

	c.Start()
	logger.Info("Background jobs scheduled")
	return c, nil
}

// resetMonthlyScans starts a new billing month. Unused paid quota rolls over.
func resetMonthlyScans() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := queries.ResetMonthlyScans(ctx)
	if err != nil {
		logger.WithError(err).Error("Monthly scan reset failed")
		return
	}
	logger.WithField("profiles", n).Info("Monthly scan counters reset")
}

// failStuckScans marks scans processing for longer than stuckScanCutoff as failed.
func failStuckScans(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cutoff := pgtype.Timestamptz{Time: now.Add(-stuckScanCutoff), Valid: true}
	n, err := queries.FailStuckScans(ctx, cutoff)
	if err != nil {
		logger.WithError(err).Error("Stuck scan sweep failed")
		return
	}
	if n > 0 {
		logger.WithField("scans", n).Warn("Marked stuck scans as failed")
	}
}
