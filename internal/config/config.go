package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	StoreTimeout        time.Duration

	// Cache configuration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTimeout  time.Duration
	CacheTTL      time.Duration
	StatsCacheTTL time.Duration

	// Search index configuration
	MongoURI         string
	MongoDatabase    string
	SearchCollection string
	SearchTimeout    time.Duration
	SearchMaxHits    int

	// Event configuration
	KafkaBrokers         []string
	KafkaArticleTopic    string
	KafkaEngagementTopic string
	KafkaConsumerGroup   string
	EventsEnabled        bool
	EventsTimeout        time.Duration

	// Versioning
	UpdateRetries int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:          getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnvInt("DB_PORT", 5432),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "content_service"),
		DBSSLMode:            getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:           int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:           int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:    getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:    getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:  getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		StoreTimeout:         getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		CacheTimeout:         getEnvDuration("CACHE_TIMEOUT", 200*time.Millisecond),
		CacheTTL:             getEnvDuration("CACHE_TTL", time.Hour),
		StatsCacheTTL:        getEnvDuration("STATS_CACHE_TTL", 5*time.Minute),
		MongoURI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:        getEnv("MONGO_DATABASE", "content_search"),
		SearchCollection:     getEnv("SEARCH_COLLECTION", "articles"),
		SearchTimeout:        getEnvDuration("SEARCH_TIMEOUT", 300*time.Millisecond),
		SearchMaxHits:        getEnvInt("SEARCH_MAX_HITS", 1000),
		KafkaBrokers:         getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaArticleTopic:    getEnv("KAFKA_ARTICLE_TOPIC", "content.articles"),
		KafkaEngagementTopic: getEnv("KAFKA_ENGAGEMENT_TOPIC", "content.engagement"),
		KafkaConsumerGroup:   getEnv("KAFKA_CONSUMER_GROUP", "content-service"),
		EventsEnabled:        getEnvBool("EVENTS_ENABLED", true),
		EventsTimeout:        getEnvDuration("EVENTS_TIMEOUT", 500*time.Millisecond),
		UpdateRetries:        getEnvInt("UPDATE_RETRIES", 3),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.EventsEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_ENABLED is true")
	}
	if c.SearchMaxHits < 1 {
		return fmt.Errorf("SEARCH_MAX_HITS must be at least 1")
	}
	if c.UpdateRetries < 1 {
		return fmt.Errorf("UPDATE_RETRIES must be at least 1")
	}
	if c.CacheTTL <= 0 || c.StatsCacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL and STATS_CACHE_TTL must be positive")
	}
	return nil
}

// PostgresURL returns the database URL in the form expected by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList gets a comma separated environment variable with a default value.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
