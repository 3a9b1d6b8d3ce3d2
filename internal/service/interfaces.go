package service

import (
	"context"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

// ContentServiceInterface defines the article operations exposed over HTTP.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	// CreateArticle validates the input and stores the article with version 1.
	CreateArticle(ctx context.Context, actor domain.Actor, in domain.CreateArticleInput) (*domain.Article, error)
	// ListArticles returns a page of articles, optionally narrowed by a full-text query.
	ListArticles(ctx context.Context, filter domain.ArticleFilter) (*domain.ArticlePage, error)
	// GetArticle resolves an id or slug and counts a view.
	GetArticle(ctx context.Context, idOrSlug string) (*domain.Article, error)
	// UpdateArticle applies a partial update.
	UpdateArticle(ctx context.Context, actor domain.Actor, id string, patch domain.ArticlePatch) (*domain.Article, error)
	// DeleteArticle removes the article. Its history is retained.
	DeleteArticle(ctx context.Context, actor domain.Actor, id string) error
	// PublishArticle marks the article as published.
	PublishArticle(ctx context.Context, actor domain.Actor, id string) (*domain.Article, error)
	// ListVersions returns the history of an existing article, newest first.
	ListVersions(ctx context.Context, id string) ([]domain.ArticleVersion, error)
	// GetVersion returns a single historical snapshot.
	GetVersion(ctx context.Context, id string, version int) (*domain.ArticleVersion, error)
	// RestoreVersion copies a historical snapshot forward as a new version.
	RestoreVersion(ctx context.Context, actor domain.Actor, id string, version int) (*domain.Article, error)
	// ArticleStats returns derived metrics for one article.
	ArticleStats(ctx context.Context, id string) (*domain.ArticleStats, error)
	// GlobalStats returns derived metrics across all articles.
	GlobalStats(ctx context.Context) (*domain.GlobalStats, error)
}

// SearchSyncer keeps the search projection in step with the store.
// Upsert and Delete never fail the caller.
type SearchSyncer interface {
	Upsert(ctx context.Context, article *domain.Article)
	Delete(ctx context.Context, id string)
	Search(ctx context.Context, query string) ([]string, error)
	Reindex(ctx context.Context, stream func(context.Context, func(domain.Article) error) error) (int, error)
}

// EventPublisher emits article lifecycle events, best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ArticleEvent)
}
