package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Atlas00000/sharevoices/internal/cache"
	"github.com/Atlas00000/sharevoices/internal/config"
	"github.com/Atlas00000/sharevoices/internal/events"
	"github.com/Atlas00000/sharevoices/internal/handler"
	"github.com/Atlas00000/sharevoices/internal/infrastructure/database"
	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/metrics"
	"github.com/Atlas00000/sharevoices/internal/middleware"
	"github.com/Atlas00000/sharevoices/internal/repository"
	"github.com/Atlas00000/sharevoices/internal/search"
	"github.com/Atlas00000/sharevoices/internal/service"
	"github.com/Atlas00000/sharevoices/internal/stats"
	"github.com/Atlas00000/sharevoices/internal/validator"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		migrateOnStart bool
		reindexOnStart bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the engagement consumer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if migrateOnStart {
				if err := database.MigrateUp(cfg.PostgresURL()); err != nil {
					return err
				}
			}
			return serve(cmd.Context(), cfg, reindexOnStart)
		},
	}

	cmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")
	cmd.Flags().BoolVar(&reindexOnStart, "reindex", false, "Rebuild the search index in the background after startup")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, reindexOnStart bool) error {
	pool, err := openPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	redisClient, err := database.NewRedis(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return err
	}
	articleCache := cache.New(redisClient,
		cache.WithTimeout(cfg.CacheTimeout),
		cache.WithTTL(cfg.CacheTTL),
		cache.WithStatsTTL(cfg.StatsCacheTTL),
	)
	defer articleCache.Close()

	mongoClient, err := database.NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	index := search.NewMongoIndex(mongoClient, cfg.MongoDatabase, cfg.SearchCollection)
	if err := index.EnsureIndexes(ctx); err != nil {
		return err
	}
	syncer := search.NewSyncer(index, cfg.SearchTimeout, cfg.SearchMaxHits)

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	// Initialize repositories
	versionRepo := repository.NewPostgresVersionRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool, versionRepo)

	contentService := service.NewContentService(
		articleRepo,
		versionRepo,
		articleCache,
		syncer,
		publisher,
		stats.NewAggregator(articleRepo, versionRepo, articleCache),
		validator.NewValidator(),
		service.Config{
			StoreTimeout:  cfg.StoreTimeout,
			UpdateRetries: cfg.UpdateRetries,
		},
	)

	if cfg.EventsEnabled {
		consumer, err := events.NewConsumer(events.ConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaEngagementTopic,
			GroupID: cfg.KafkaConsumerGroup,
		}, contentService)
		if err != nil {
			logger.Warn("engagement consumer disabled", slog.String("error", err.Error()))
		} else {
			consumer.Start(ctx)
			defer consumer.Close()
		}
	}

	if reindexOnStart {
		go func() {
			count, err := contentService.Reindex(ctx)
			if err != nil {
				logger.Error("startup reindex failed", slog.String("error", err.Error()))
				return
			}
			logger.Info("startup reindex completed", slog.Int("articles", count))
		}()
	}

	articleHandler := handler.NewArticleHandler(contentService)
	healthHandler := handler.NewHealthHandler(pool,
		handler.Dependency{Name: "redis", Check: database.RedisCheck(redisClient)},
		handler.Dependency{Name: "mongo", Check: database.MongoCheck(mongoClient)},
	)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Identity())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	articleHandler.RegisterRoutes(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
	return nil
}

// newPublisher returns a Kafka publisher, or a no-op one when events are
// disabled or the brokers cannot be reached at startup.
func newPublisher(cfg *config.Config) (service.EventPublisher, func()) {
	if !cfg.EventsEnabled {
		return events.NoopPublisher{}, func() {}
	}

	producer, err := events.NewProducer(events.ProducerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaArticleTopic,
		Timeout: cfg.EventsTimeout,
	})
	if err != nil {
		logger.Warn("event publishing disabled", slog.String("error", err.Error()))
		return events.NoopPublisher{}, func() {}
	}

	publisher := events.NewPublisher(producer, cfg.KafkaArticleTopic, cfg.EventsTimeout)
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("close event publisher", slog.String("error", err.Error()))
		}
	}
}
