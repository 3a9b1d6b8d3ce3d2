package repository

import (
	"context"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

// ArticleRepository defines methods for article data access. Writes that touch
// versioned fields append to the version archive in the same transaction.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article, createdBy string) error
	Update(ctx context.Context, id string, patch domain.ArticlePatch, actorID string) (*UpdateResult, error)
	Publish(ctx context.Context, id string) (*domain.Article, error)
	Delete(ctx context.Context, id string) (*domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetByIDOrSlug(ctx context.Context, key string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int64, error)
	IncrementView(ctx context.Context, id string) (int64, error)
	IncrementEngagement(ctx context.Context, id string, kind domain.EngagementKind) (*domain.Article, error)
	StreamAll(ctx context.Context, callback func(domain.Article) error) error
	Aggregate(ctx context.Context) (*domain.GlobalStats, error)
}

// VersionRepository defines read access to the append-only version archive.
type VersionRepository interface {
	List(ctx context.Context, articleID string) ([]domain.ArticleVersion, error)
	Get(ctx context.Context, articleID string, version int) (*domain.ArticleVersion, error)
	Count(ctx context.Context, articleID string) (int, error)
}

// UpdateResult describes the outcome of an update.
type UpdateResult struct {
	Article      *domain.Article
	PreviousSlug string
	// Versioned is true when the update appended a version.
	Versioned bool
	Changes   []domain.Change
}
