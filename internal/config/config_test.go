package config

import (
	"os"
	"testing"
	"time"
)

var envVars = []string{
	"SERVER_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"REDIS_ADDR",
	"CACHE_TTL",
	"STATS_CACHE_TTL",
	"MONGO_URI",
	"SEARCH_MAX_HITS",
	"KAFKA_BROKERS",
	"EVENTS_ENABLED",
	"UPDATE_RETRIES",
	"LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envVars {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "content_service" {
			t.Errorf("DBName = %v, want content_service", cfg.DBName)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if cfg.RedisAddr != "localhost:6379" {
			t.Errorf("RedisAddr = %v, want localhost:6379", cfg.RedisAddr)
		}
		if cfg.CacheTTL != time.Hour {
			t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
		}
		if cfg.StatsCacheTTL != 5*time.Minute {
			t.Errorf("StatsCacheTTL = %v, want 5m", cfg.StatsCacheTTL)
		}
		if cfg.CacheTimeout != 200*time.Millisecond {
			t.Errorf("CacheTimeout = %v, want 200ms", cfg.CacheTimeout)
		}
		if cfg.SearchTimeout != 300*time.Millisecond {
			t.Errorf("SearchTimeout = %v, want 300ms", cfg.SearchTimeout)
		}
		if cfg.SearchMaxHits != 1000 {
			t.Errorf("SearchMaxHits = %v, want 1000", cfg.SearchMaxHits)
		}
		if len(cfg.KafkaBrokers) != 1 || cfg.KafkaBrokers[0] != "localhost:9092" {
			t.Errorf("KafkaBrokers = %v, want [localhost:9092]", cfg.KafkaBrokers)
		}
		if cfg.KafkaArticleTopic != "content.articles" {
			t.Errorf("KafkaArticleTopic = %v, want content.articles", cfg.KafkaArticleTopic)
		}
		if !cfg.EventsEnabled {
			t.Error("EventsEnabled = false, want true")
		}
		if cfg.UpdateRetries != 3 {
			t.Errorf("UpdateRetries = %v, want 3", cfg.UpdateRetries)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("REDIS_ADDR", "cache:6380")
		t.Setenv("CACHE_TTL", "10m")
		t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
		t.Setenv("EVENTS_ENABLED", "false")
		t.Setenv("UPDATE_RETRIES", "5")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.RedisAddr != "cache:6380" {
			t.Errorf("RedisAddr = %v, want cache:6380", cfg.RedisAddr)
		}
		if cfg.CacheTTL != 10*time.Minute {
			t.Errorf("CacheTTL = %v, want 10m", cfg.CacheTTL)
		}
		if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
			t.Errorf("KafkaBrokers = %v, want [k1:9092 k2:9092]", cfg.KafkaBrokers)
		}
		if cfg.EventsEnabled {
			t.Error("EventsEnabled = true, want false")
		}
		if cfg.UpdateRetries != 5 {
			t.Errorf("UpdateRetries = %v, want 5", cfg.UpdateRetries)
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SEARCH_MAX_HITS", "0")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for SEARCH_MAX_HITS=0")
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.StoreTimeout != 5*time.Second {
			t.Errorf("StoreTimeout = %v, want 5s", cfg.StoreTimeout)
		}
		if cfg.EventsTimeout != 500*time.Millisecond {
			t.Errorf("EventsTimeout = %v, want 500ms", cfg.EventsTimeout)
		}
	})
}

func TestPostgresURL(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "h",
		DBPort:     5432,
		DBName:     "d",
		DBSSLMode:  "disable",
	}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.PostgresURL(); got != want {
		t.Errorf("PostgresURL() = %q, want %q", got, want)
	}
}
