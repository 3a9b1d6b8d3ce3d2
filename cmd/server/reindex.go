package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Atlas00000/sharevoices/internal/infrastructure/database"
	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/repository"
	"github.com/Atlas00000/sharevoices/internal/search"
)

func newReindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the search index from the article store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			pool, err := openPostgres(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			mongoClient, err := database.NewMongo(ctx, cfg.MongoURI)
			if err != nil {
				return err
			}
			defer func() { _ = mongoClient.Disconnect(context.Background()) }()

			versionRepo := repository.NewPostgresVersionRepository(pool)
			articleRepo := repository.NewPostgresArticleRepository(pool, versionRepo)
			index := search.NewMongoIndex(mongoClient, cfg.MongoDatabase, cfg.SearchCollection)

			count, err := search.NewSyncer(index, cfg.SearchTimeout, cfg.SearchMaxHits).Reindex(ctx, articleRepo.StreamAll)
			if err != nil {
				return fmt.Errorf("reindex after %d articles: %w", count, err)
			}

			logger.Info("reindex completed", slog.Int("articles", count))
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d articles\n", count)
			return nil
		},
	}
}
