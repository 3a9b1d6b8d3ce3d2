package cache

import (
	"fmt"
	"net/url"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

// Key namespace. Caller-supplied segments are escaped so they never contain
// the ':' separator, which keeps keys of different shapes apart.
const (
	GlobalStatsKey     = "global:stats"
	ArticleListPattern = "articles:*"

	// generationKey counts article writes. It sits outside the articles:*
	// pattern so listing invalidation never resets it.
	generationKey = "generation:articles"
)

// ArticleKey is the entity key for an article looked up by id or slug.
func ArticleKey(idOrSlug string) string {
	return "article:" + segment(idOrSlug)
}

// ArticleStatsKey is the statistics key for an article.
func ArticleStatsKey(id string) string {
	return "article:stats:" + segment(id)
}

// ArticleListKey encodes every listing parameter so distinct queries never share an entry.
func ArticleListKey(f domain.ArticleFilter) string {
	return fmt.Sprintf("articles:%d:%d:%s:%s:%s:%s", f.Page, f.Limit,
		segment(f.Category), segment(string(f.Status)), segment(f.AuthorID), segment(f.Search))
}

func segment(s string) string {
	return url.QueryEscape(s)
}
