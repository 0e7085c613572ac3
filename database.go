package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

const (
	connectMaxRetries    = 30
	connectRetryInterval = 2 * time.Second
)

// connectDatabase opens the pgx pool, retrying while Postgres starts up.
func connectDatabase(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	var lastErr error
	for i := 0; i < connectMaxRetries; i++ {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				logger.Info("Successfully connected to database")
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err
		logger.WithError(err).WithField("attempt", i+1).Warn("Error connecting to database")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectRetryInterval):
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectMaxRetries, lastErr)
}

func newMigrator(db *sql.DB, migrationsPath string) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	return m, nil
}

// runMigrations applies all pending up migrations. The caller owns db.
func runMigrations(db *sql.DB, migrationsPath string) error {
	m, err := newMigrator(db, migrationsPath)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// getMigrationVersion reports the applied schema version and whether the last
// migration failed part way.
func getMigrationVersion(db *sql.DB, migrationsPath string) (uint, bool, error) {
	m, err := newMigrator(db, migrationsPath)
	if err != nil {
		return 0, false, err
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// migrateDatabase runs migrations over a short-lived lib/pq connection.
func migrateDatabase(connStr, migrationsPath string) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	if err := runMigrations(db, migrationsPath); err != nil {
		return err
	}

	if version, dirty, err := getMigrationVersion(db, migrationsPath); err == nil {
		logger.WithField("version", version).WithField("dirty", dirty).Info("Database migrations completed")
	}
	return nil
}
