package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/Atlas00000/sharevoices/internal/config"
	"github.com/Atlas00000/sharevoices/internal/infrastructure/database"
	"github.com/Atlas00000/sharevoices/internal/logger"
)

const applicationName = "content-service"

var rootCmd = &cobra.Command{
	Use:           "content-service",
	Short:         "Versioned article store with cache, search and event fan-out",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newReindexCmd())
	rootCmd.AddCommand(newVersionsCmd())
}

// loadConfig reads the environment and configures the process logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Configure(os.Stdout, cfg.LogLevel)
	return cfg, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPostgres(ctx, database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		StatementTimeout:  cfg.StoreTimeout,
		ApplicationName:   applicationName,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}
