package database

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfigURL(t *testing.T) {
	cfg := PoolConfig{
		Host:            "db.internal",
		Port:            5433,
		User:            "content",
		Password:        "p@ss word",
		Database:        "content_service",
		SSLMode:         "require",
		ApplicationName: "content-service",
	}

	parsed, err := pgxpool.ParseConfig(cfg.URL())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", parsed.ConnConfig.Host)
	assert.Equal(t, uint16(5433), parsed.ConnConfig.Port)
	assert.Equal(t, "content", parsed.ConnConfig.User)
	assert.Equal(t, "p@ss word", parsed.ConnConfig.Password)
	assert.Equal(t, "content_service", parsed.ConnConfig.Database)
	assert.Equal(t, "content-service", parsed.ConnConfig.RuntimeParams["application_name"])
}
