package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/search"
)

func setupMongoIndex(t *testing.T) *search.MongoIndex {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("Failed to start mongo container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	index := search.NewMongoIndex(client, "content_search_test", "articles")
	require.NoError(t, index.EnsureIndexes(ctx))
	return index
}

func TestMongoIndex(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	index := setupMongoIndex(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	titleHit := testArticle("Clean Water Initiatives")
	bodyHit := testArticle("Community Wells")
	bodyHit.Content = "Drilling wells brings clean water to villages"
	miss := testArticle("Solar Panels")
	miss.Content = "Renewable energy for schools"

	for _, a := range []domain.Article{titleHit, bodyHit, miss} {
		require.NoError(t, index.Upsert(ctx, search.NewDocument(&a)))
	}

	t.Run("title matches rank first", func(t *testing.T) {
		ids, err := index.Search(ctx, "water", 10)
		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.Equal(t, titleHit.ID, ids[0])
		assert.Equal(t, bodyHit.ID, ids[1])
	})

	t.Run("limit caps hits", func(t *testing.T) {
		ids, err := index.Search(ctx, "water", 1)
		require.NoError(t, err)
		assert.Len(t, ids, 1)
	})

	t.Run("upsert replaces and delete removes", func(t *testing.T) {
		updated := miss
		updated.Title = "Solar Water Pumps"
		require.NoError(t, index.Upsert(ctx, search.NewDocument(&updated)))

		ids, err := index.Search(ctx, "pumps", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{miss.ID}, ids)

		require.NoError(t, index.Delete(ctx, miss.ID))
		require.NoError(t, index.Delete(ctx, miss.ID))

		ids, err = index.Search(ctx, "pumps", 10)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("ensure indexes is idempotent", func(t *testing.T) {
		assert.NoError(t, index.EnsureIndexes(ctx))
	})
}
