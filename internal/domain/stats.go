package domain

import "time"

// ArticleStats is the derived metrics view of a single article.
type ArticleStats struct {
	ArticleID          string           `json:"article_id"`
	TotalViews         int64            `json:"total_views"`
	TotalLikes         int64            `json:"total_likes"`
	TotalComments      int64            `json:"total_comments"`
	VersionCount       int              `json:"version_count"`
	LastUpdated        time.Time        `json:"last_updated"`
	LastPublished      *time.Time       `json:"last_published,omitempty"`
	AverageViewsPerDay float64          `json:"average_views_per_day"`
	EngagementRate     float64          `json:"engagement_rate"`
	VersionHistory     []VersionSummary `json:"version_history"`
}

// GroupCount is a count of articles sharing a key (category or author).
type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// GlobalStats aggregates metrics across every article.
type GlobalStats struct {
	TotalArticles     int64        `json:"total_articles"`
	PublishedArticles int64        `json:"published_articles"`
	TotalViews        int64        `json:"total_views"`
	TotalLikes        int64        `json:"total_likes"`
	TotalComments     int64        `json:"total_comments"`
	CategoryStats     []GroupCount `json:"category_stats"`
	AuthorStats       []GroupCount `json:"author_stats"`
}
