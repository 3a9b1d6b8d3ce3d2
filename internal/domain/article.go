package domain

import "time"

// ArticleStatus represents the publication state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// Article represents the current, mutable state of a piece of content.
type Article struct {
	ID             string        `json:"id"`
	Slug           string        `json:"slug"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	Category       string        `json:"category"`
	Tags           []string      `json:"tags"`
	AuthorID       string        `json:"author_id"`
	Status         ArticleStatus `json:"status"`
	FeaturedImage  *string       `json:"featured_image,omitempty"`
	MediaURLs      []string      `json:"media_urls,omitempty"`
	CurrentVersion int           `json:"current_version"`
	ViewCount      int64         `json:"view_count"`
	LikeCount      int64         `json:"like_count"`
	CommentCount   int64         `json:"comment_count"`
	ReadTime       int           `json:"read_time"`
	PublishedAt    *time.Time    `json:"published_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Snapshot returns the versioned fields of the article.
func (a *Article) Snapshot() Snapshot {
	return Snapshot{
		Title:    a.Title,
		Content:  a.Content,
		Category: a.Category,
		Tags:     a.Tags,
	}
}

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []string{"draft", "published", "archived"}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// allowedTransitions lists status changes reachable through a regular update.
// Publish is an explicit operation and bypasses this table.
var allowedTransitions = map[ArticleStatus][]ArticleStatus{
	StatusDraft:     {StatusPublished},
	StatusPublished: {StatusArchived, StatusDraft},
	StatusArchived:  {StatusDraft},
}

// CanTransition reports whether an update may move an article from one status to another.
func CanTransition(from, to ArticleStatus) bool {
	if from == to {
		return true
	}
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CreateArticleInput carries the fields accepted when creating an article.
type CreateArticleInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	AuthorID      string   `json:"author_id"`
	FeaturedImage *string  `json:"featured_image,omitempty"`
	MediaURLs     []string `json:"media_urls,omitempty"`
}

// ArticlePatch is a partial update. Nil fields are left untouched.
type ArticlePatch struct {
	Title         *string        `json:"title,omitempty"`
	Content       *string        `json:"content,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	Status        *ArticleStatus `json:"status,omitempty"`
	FeaturedImage *string        `json:"featured_image,omitempty"`
	MediaURLs     []string       `json:"media_urls,omitempty"`

	// RestoredFrom is set by the restore flow and forces a new version.
	RestoredFrom *int `json:"-"`
	// ReadTime is derived from Content by the service, never taken from clients.
	ReadTime *int `json:"-"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Category == nil && p.Tags == nil &&
		p.Status == nil && p.FeaturedImage == nil && p.MediaURLs == nil && p.RestoredFrom == nil
}

// ArticleFilter holds listing parameters.
type ArticleFilter struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Category string `json:"category"`
	Status   string `json:"status"`
	AuthorID string `json:"author_id"`
	Search   string `json:"search"`

	// IDs restricts the listing to the given ids, preserving their order.
	IDs []string `json:"-"`
}

// Offset returns the number of rows to skip for the filter's page.
func (f ArticleFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// ArticlePage is a single page of a listing.
type ArticlePage struct {
	Articles   []Article `json:"articles"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

// NewArticlePage builds a page and computes the page count.
func NewArticlePage(articles []Article, total int64, page, limit int) ArticlePage {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	if articles == nil {
		articles = []Article{}
	}
	return ArticlePage{
		Articles:   articles,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// EngagementKind identifies a counter fed by the interaction service.
type EngagementKind string

const (
	EngagementLike    EngagementKind = "like"
	EngagementComment EngagementKind = "comment"
)
