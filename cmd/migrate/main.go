package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"rolecrm/internal/config"
	"rolecrm/internal/database"
	"rolecrm/internal/logger"
	"rolecrm/internal/seed"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|down|version|seed> [N]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return err
	}

	command := os.Args[1]

	if command == "seed" {
		return seedUsers(dbConfig)
	}
	if dbConfig.Driver != database.DriverPostgres {
		return fmt.Errorf("%s requires DB_DRIVER=postgres; sqlite is auto-migrated at startup", command)
	}

	m, err := database.NewMigrator(dbConfig)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Info("Migrations applied successfully")

	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				return fmt.Errorf("invalid step count: %w", err)
			}
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back %d migration(s)", steps)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

	default:
		return fmt.Errorf("unknown command: %s (use up, down, version, or seed)", command)
	}

	return nil
}

func seedUsers(dbConfig *database.Config) error {
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return err
	}
	defer func() { _ = manager.Close() }()

	if err := manager.RunMigrations(); err != nil {
		return err
	}
	if err := seed.EnsureUsers(manager.DB()); err != nil {
		return fmt.Errorf("seeding users failed: %w", err)
	}
	logger.Get().Info("Seed users ensured")
	return nil
}
