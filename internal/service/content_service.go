package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Atlas00000/sharevoices/internal/cache"
	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/metrics"
	"github.com/Atlas00000/sharevoices/internal/repository"
	"github.com/Atlas00000/sharevoices/internal/search"
	"github.com/Atlas00000/sharevoices/internal/stats"
	"github.com/Atlas00000/sharevoices/internal/validator"
)

const (
	// DefaultStoreTimeout bounds a single call to the article store.
	DefaultStoreTimeout = 5 * time.Second

	// DefaultUpdateRetries is the number of attempts made when two writers
	// race for the same version number.
	DefaultUpdateRetries = 3
)

// Config holds ContentService tuning.
type Config struct {
	StoreTimeout  time.Duration
	UpdateRetries int
}

// ContentService orchestrates writes and reads across the article store, the
// version archive, the cache and the search index. The store is written first;
// cache invalidation, index sync and event publishing follow, in that order,
// and never fail a write that was already committed.
type ContentService struct {
	articles  repository.ArticleRepository
	versions  repository.VersionRepository
	cache     *cache.Cache
	search    SearchSyncer
	events    EventPublisher
	stats     *stats.Aggregator
	validator *validator.Validator

	storeTimeout  time.Duration
	updateRetries int
}

// NewContentService creates a new ContentService.
func NewContentService(
	articles repository.ArticleRepository,
	versions repository.VersionRepository,
	c *cache.Cache,
	syncer SearchSyncer,
	publisher EventPublisher,
	aggregator *stats.Aggregator,
	v *validator.Validator,
	cfg Config,
) *ContentService {
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}
	if cfg.UpdateRetries <= 0 {
		cfg.UpdateRetries = DefaultUpdateRetries
	}
	return &ContentService{
		articles:      articles,
		versions:      versions,
		cache:         c,
		search:        syncer,
		events:        publisher,
		stats:         aggregator,
		validator:     v,
		storeTimeout:  cfg.StoreTimeout,
		updateRetries: cfg.UpdateRetries,
	}
}

// CreateArticle validates the input, derives the slug and stores the article
// as a draft together with its first version.
func (s *ContentService) CreateArticle(ctx context.Context, actor domain.Actor, in domain.CreateArticleInput) (*domain.Article, error) {
	if in.AuthorID == "" {
		in.AuthorID = actor.ID
	}
	if err := s.validator.ValidateCreateArticle(&in); err != nil {
		return nil, err
	}

	slug := domain.DeriveSlug(in.Title)
	if slug == "" {
		return nil, domain.NewValidationError("title", "title_must_contain_letters_or_digits")
	}

	article := &domain.Article{
		ID:            uuid.New().String(),
		Slug:          slug,
		Title:         in.Title,
		Content:       in.Content,
		Category:      in.Category,
		Tags:          in.Tags,
		AuthorID:      in.AuthorID,
		Status:        domain.StatusDraft,
		FeaturedImage: in.FeaturedImage,
		MediaURLs:     in.MediaURLs,
		ReadTime:      domain.EstimateReadTime(search.PlainText(in.Content)),
	}

	timer := metrics.NewTimer()
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	err := s.articles.Create(storeCtx, article, actor.ID)
	cancel()
	metrics.ObserveMutation("create", timer, err)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	metrics.VersionsAppendedTotal.Inc()

	logger.WithArticleID(article.ID).InfoContext(ctx, "article created",
		slog.String("slug", article.Slug),
		slog.String("actor_id", actor.ID))

	s.afterWrite(ctx, article, domain.EventArticleCreated, actor.ID, article.Slug)
	return article, nil
}

// ListArticles returns a page of articles. With a search term the index ranks
// matching ids and the store applies the remaining filters over them. An
// unavailable index yields an empty page that is not cached.
func (s *ContentService) ListArticles(ctx context.Context, filter domain.ArticleFilter) (*domain.ArticlePage, error) {
	if err := s.validator.ValidateListFilter(&filter); err != nil {
		return nil, err
	}

	key := cache.ArticleListKey(filter)
	var cached domain.ArticlePage
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	fill := s.cache.BeginFill(ctx)
	if filter.Search != "" {
		ids, err := s.search.Search(ctx, filter.Search)
		if err != nil {
			logger.ErrorContext(ctx, "search unavailable, returning empty listing",
				slog.String("search", filter.Search),
				slog.String("error", err.Error()))
			page := domain.NewArticlePage(nil, 0, filter.Page, filter.Limit)
			return &page, nil
		}
		if ids == nil {
			ids = []string{}
		}
		filter.IDs = ids
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	articles, total, err := s.articles.List(storeCtx, filter)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	page := domain.NewArticlePage(articles, total, filter.Page, filter.Limit)
	fill.Set(ctx, key, page, s.cache.TTL())
	return &page, nil
}

// GetArticle resolves idOrSlug, cache first, and counts one view. The view
// increment always reaches the store; the cached copy is patched with the
// returned count rather than invalidated. A miss is cached only if no write
// landed while the store was read.
func (s *ContentService) GetArticle(ctx context.Context, idOrSlug string) (*domain.Article, error) {
	key := cache.ArticleKey(idOrSlug)

	var article domain.Article
	hit := s.cache.Get(ctx, key, &article)
	var fill cache.Fill
	if !hit {
		fill = s.cache.BeginFill(ctx)
		storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
		found, err := s.articles.GetByIDOrSlug(storeCtx, idOrSlug)
		cancel()
		if err != nil {
			return nil, err
		}
		article = *found
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	views, err := s.articles.IncrementView(storeCtx, article.ID)
	cancel()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// A cached copy of a deleted article.
			s.cache.InvalidateArticle(context.WithoutCancel(ctx), article.ID, article.Slug, idOrSlug)
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("increment views: %w", err)
	}
	article.ViewCount = views

	if !hit {
		fill.Set(ctx, key, article, s.cache.TTL())
	}
	return &article, nil
}

// UpdateArticle validates and applies a partial update. A content change
// appends a version; the derived read time follows the content.
func (s *ContentService) UpdateArticle(ctx context.Context, actor domain.Actor, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	if err := s.validator.ValidateArticlePatch(&patch); err != nil {
		return nil, err
	}
	if patch.Content != nil {
		readTime := domain.EstimateReadTime(search.PlainText(*patch.Content))
		patch.ReadTime = &readTime
	}

	timer := metrics.NewTimer()
	result, err := s.update(ctx, id, patch, actor.ID)
	metrics.ObserveMutation("update", timer, err)
	if err != nil {
		return nil, err
	}

	logger.WithArticleID(id).InfoContext(ctx, "article updated",
		slog.Bool("versioned", result.Versioned),
		slog.Int("version", result.Article.CurrentVersion),
		slog.String("actor_id", actor.ID))

	s.afterWrite(ctx, result.Article, domain.EventArticleUpdated, actor.ID, result.PreviousSlug, result.Article.Slug)
	return result.Article, nil
}

// DeleteArticle removes the article from the store, the cache and the index.
func (s *ContentService) DeleteArticle(ctx context.Context, actor domain.Actor, id string) error {
	timer := metrics.NewTimer()
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	deleted, err := s.articles.Delete(storeCtx, id)
	cancel()
	metrics.ObserveMutation("delete", timer, err)
	if err != nil {
		return err
	}

	logger.WithArticleID(id).InfoContext(ctx, "article deleted", slog.String("actor_id", actor.ID))

	bg := context.WithoutCancel(ctx)
	s.cache.InvalidateArticle(bg, deleted.ID, deleted.Slug)
	s.search.Delete(bg, deleted.ID)
	s.events.Publish(bg, domain.NewArticleEvent(domain.EventArticleDeleted, deleted, actor.ID))
	return nil
}

// PublishArticle publishes the article. Publishing twice is a no-op.
func (s *ContentService) PublishArticle(ctx context.Context, actor domain.Actor, id string) (*domain.Article, error) {
	timer := metrics.NewTimer()
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	article, err := s.articles.Publish(storeCtx, id)
	cancel()
	metrics.ObserveMutation("publish", timer, err)
	if err != nil {
		return nil, err
	}

	logger.WithArticleID(id).InfoContext(ctx, "article published", slog.String("actor_id", actor.ID))

	s.afterWrite(ctx, article, domain.EventArticlePublished, actor.ID, article.Slug)
	return article, nil
}

// ListVersions returns the history of an article, newest first. The history
// of a deleted article is retained but not served.
func (s *ContentService) ListVersions(ctx context.Context, id string) ([]domain.ArticleVersion, error) {
	if err := s.requireArticle(ctx, id); err != nil {
		return nil, err
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.versions.List(storeCtx, id)
}

// GetVersion returns one version of an existing article.
func (s *ContentService) GetVersion(ctx context.Context, id string, version int) (*domain.ArticleVersion, error) {
	if err := s.requireArticle(ctx, id); err != nil {
		return nil, err
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.versions.Get(storeCtx, id, version)
}

// RestoreVersion copies version's snapshot forward as a new version. History
// is never rewritten, and an archived article comes back as a draft.
func (s *ContentService) RestoreVersion(ctx context.Context, actor domain.Actor, id string, version int) (*domain.Article, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	snapshot, err := s.versions.Get(storeCtx, id, version)
	cancel()
	if err != nil {
		return nil, err
	}

	readTime := domain.EstimateReadTime(search.PlainText(snapshot.Content))
	tags := append([]string{}, snapshot.Tags...)
	patch := domain.ArticlePatch{
		Title:        &snapshot.Title,
		Content:      &snapshot.Content,
		Category:     &snapshot.Category,
		Tags:         tags,
		ReadTime:     &readTime,
		RestoredFrom: &version,
	}

	timer := metrics.NewTimer()
	result, err := s.update(ctx, id, patch, actor.ID)
	metrics.ObserveMutation("restore", timer, err)
	if err != nil {
		return nil, err
	}

	logger.WithArticleID(id).InfoContext(ctx, "article version restored",
		slog.Int("restored_from", version),
		slog.Int("version", result.Article.CurrentVersion),
		slog.String("actor_id", actor.ID))

	s.afterWrite(ctx, result.Article, domain.EventArticleRestored, actor.ID, result.PreviousSlug, result.Article.Slug)
	return result.Article, nil
}

// ArticleStats returns derived metrics for one article.
func (s *ContentService) ArticleStats(ctx context.Context, id string) (*domain.ArticleStats, error) {
	return s.stats.ArticleStats(ctx, id)
}

// GlobalStats returns derived metrics across all articles.
func (s *ContentService) GlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	return s.stats.GlobalStats(ctx)
}

// RecordEngagement applies a like or comment event and drops the cached views
// of the article.
func (s *ContentService) RecordEngagement(ctx context.Context, event domain.EngagementEvent) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	article, err := s.articles.IncrementEngagement(storeCtx, event.ArticleID, event.Kind)
	cancel()
	if err != nil {
		return err
	}

	s.cache.InvalidateArticle(context.WithoutCancel(ctx), article.ID, article.Slug)
	return nil
}

// Reindex rebuilds the search projection from the store.
func (s *ContentService) Reindex(ctx context.Context) (int, error) {
	return s.search.Reindex(ctx, s.articles.StreamAll)
}

// update runs the store update, retrying when a concurrent writer took the
// version number first.
func (s *ContentService) update(ctx context.Context, id string, patch domain.ArticlePatch, actorID string) (*repository.UpdateResult, error) {
	var err error
	for attempt := 1; attempt <= s.updateRetries; attempt++ {
		var result *repository.UpdateResult
		storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
		result, err = s.articles.Update(storeCtx, id, patch, actorID)
		cancel()
		if err == nil {
			if result.Versioned {
				metrics.VersionsAppendedTotal.Inc()
			}
			return result, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}

		metrics.VersionConflictsTotal.Inc()
		logger.WithArticleID(id).WarnContext(ctx, "version conflict, retrying update",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
	}
	return nil, fmt.Errorf("update article after %d attempts: %w", s.updateRetries, err)
}

func (s *ContentService) requireArticle(ctx context.Context, id string) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	_, err := s.articles.GetByID(storeCtx, id)
	return err
}

// afterWrite propagates a committed write to the derived stores. It runs on a
// context detached from the caller's cancellation so a disconnecting client
// cannot leave the cache stale.
func (s *ContentService) afterWrite(ctx context.Context, article *domain.Article, eventType domain.ArticleEventType, actorID string, slugs ...string) {
	bg := context.WithoutCancel(ctx)
	s.cache.InvalidateArticle(bg, article.ID, slugs...)
	s.search.Upsert(bg, article)
	s.events.Publish(bg, domain.NewArticleEvent(eventType, article, actorID))
}
