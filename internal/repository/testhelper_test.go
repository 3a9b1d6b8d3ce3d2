package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/infrastructure/database"
)

const (
	testDBName     = "content_test"
	testDBUser     = "content"
	testDBPassword = "content"
)

// TestDB is a migrated PostgreSQL container shared by the tests of one
// top-level test function.
type TestDB struct {
	Pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

// SetupTestDB starts PostgreSQL, applies the embedded migrations and opens a
// pool through the same constructor the server uses.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")
	tdb := &TestDB{container: container}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err == nil {
		err = database.MigrateUp(connStr)
	}
	if err != nil {
		tdb.Cleanup(t)
		t.Fatalf("prepare schema: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	tdb.Pool, err = database.NewPostgres(ctx, database.PoolConfig{
		Host:             host,
		Port:             port.Int(),
		User:             testDBUser,
		Password:         testDBPassword,
		Database:         testDBName,
		SSLMode:          "disable",
		MaxConns:         10,
		MaxConnLifetime:  time.Hour,
		MaxConnIdleTime:  time.Minute,
		StatementTimeout: 5 * time.Second,
		ApplicationName:  "content-service-test",
	})
	if err != nil {
		tdb.Cleanup(t)
		t.Fatalf("open pool: %v", err)
	}

	return tdb
}

// Cleanup closes the pool and removes the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if err := testcontainers.TerminateContainer(tdb.container); err != nil {
		t.Logf("terminate postgres container: %v", err)
	}
}

// TruncateTables empties the given tables between subtests.
func (tdb *TestDB) TruncateTables(t *testing.T, tables ...string) {
	t.Helper()
	_, err := tdb.Pool.Exec(context.Background(), "TRUNCATE TABLE "+strings.Join(tables, ", "))
	require.NoError(t, err, "truncate %v", tables)
}

// newArticle builds a draft article ready to be created.
func newArticle(title string) *domain.Article {
	content := "Initial body for " + title
	return &domain.Article{
		ID:       uuid.New().String(),
		Slug:     domain.DeriveSlug(title),
		Title:    title,
		Content:  content,
		Category: "environment",
		Tags:     []string{"water"},
		AuthorID: uuid.New().String(),
		Status:   domain.StatusDraft,
		ReadTime: domain.EstimateReadTime(content),
	}
}

// createArticle inserts a new article and fails the test on error.
func createArticle(t *testing.T, repo interface {
	Create(context.Context, *domain.Article, string) error
}, title string) *domain.Article {
	t.Helper()
	a := newArticle(title)
	require.NoError(t, repo.Create(context.Background(), a, "editor-1"))
	return a
}
