// Package stats derives per-article and global metrics from the article store.
// Results are cached for a short time and invalidated by writes.
package stats

import (
	"context"
	"math"
	"time"

	"github.com/Atlas00000/sharevoices/internal/cache"
	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/repository"
)

// Aggregator computes statistics, cache first.
type Aggregator struct {
	articles repository.ArticleRepository
	versions repository.VersionRepository
	cache    *cache.Cache
	now      func() time.Time
}

// NewAggregator creates a new Aggregator.
func NewAggregator(articles repository.ArticleRepository, versions repository.VersionRepository, c *cache.Cache) *Aggregator {
	return &Aggregator{
		articles: articles,
		versions: versions,
		cache:    c,
		now:      time.Now,
	}
}

// ArticleStats returns metrics for a single article. Returns domain.ErrNotFound
// if the article does not exist.
func (a *Aggregator) ArticleStats(ctx context.Context, id string) (*domain.ArticleStats, error) {
	return cache.GetOrLoad(ctx, a.cache, cache.ArticleStatsKey(id), a.cache.StatsTTL(),
		func(ctx context.Context) (*domain.ArticleStats, error) {
			return a.computeArticleStats(ctx, id)
		})
}

// GlobalStats returns totals and group counts across all articles.
func (a *Aggregator) GlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	return cache.GetOrLoad(ctx, a.cache, cache.GlobalStatsKey, a.cache.StatsTTL(), a.articles.Aggregate)
}

func (a *Aggregator) computeArticleStats(ctx context.Context, id string) (*domain.ArticleStats, error) {
	article, err := a.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	versions, err := a.versions.List(ctx, id)
	if err != nil {
		return nil, err
	}

	history := make([]domain.VersionSummary, 0, len(versions))
	for _, v := range versions {
		history = append(history, domain.VersionSummary{
			Version:   v.Version,
			CreatedAt: v.CreatedAt,
			Changes:   len(v.Changes),
		})
	}

	return &domain.ArticleStats{
		ArticleID:          article.ID,
		TotalViews:         article.ViewCount,
		TotalLikes:         article.LikeCount,
		TotalComments:      article.CommentCount,
		VersionCount:       len(versions),
		LastUpdated:        article.UpdatedAt,
		LastPublished:      article.PublishedAt,
		AverageViewsPerDay: AverageViewsPerDay(article, a.now()),
		EngagementRate:     EngagementRate(article),
		VersionHistory:     history,
	}, nil
}

// AverageViewsPerDay divides views by the number of started days since
// publication, counting at least one day. Unpublished articles score 0.
func AverageViewsPerDay(a *domain.Article, now time.Time) float64 {
	if a.PublishedAt == nil {
		return 0
	}
	days := math.Ceil(now.Sub(*a.PublishedAt).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return float64(a.ViewCount) / days
}

// EngagementRate is likes plus comments as a percentage of views.
func EngagementRate(a *domain.Article) float64 {
	if a.ViewCount == 0 {
		return 0
	}
	return float64(a.LikeCount+a.CommentCount) / float64(a.ViewCount) * 100
}
