package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/app"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/config"
)

// RunMigrations applies all pending migrations for the configured driver.
func RunMigrations() error {
	cfg := config.Load()

	// Container is only needed for its logger here.
	container := app.NewContainer(cfg)

	return runMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
}

func runMigrations(logger *slog.Logger, driver string, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	migrationsPath := "file://migrations/postgresql"
	if driver == "mysql" {
		migrationsPath = "file://migrations/mysql"
	}

	m, err := migrate.New(migrationsPath, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
