// Command seed replaces the benchmark table with the embedded reference set.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"pcbuilder/internal/config"
	"pcbuilder/internal/database"
	"pcbuilder/internal/repositories"
	"pcbuilder/internal/seed"
	"pcbuilder/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	_, restore, err := logger.Setup(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return err
	}
	defer restore()

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zap.L().Warn("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}

	n, err := seed.Run(repositories.NewGORMBenchmarkRepository(db))
	if err != nil {
		return err
	}
	zap.L().Info("Seeding finished", zap.Int("records", n))
	return nil
}
