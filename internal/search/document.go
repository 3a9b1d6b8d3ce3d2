package search

import (
	"time"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

// Document is the searchable projection of an article.
type Document struct {
	ID        string               `bson:"_id"`
	Slug      string               `bson:"slug"`
	Title     string               `bson:"title"`
	Content   string               `bson:"content"`
	Category  string               `bson:"category"`
	Tags      []string             `bson:"tags"`
	AuthorID  string               `bson:"author_id"`
	Status    domain.ArticleStatus `bson:"status"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// NewDocument projects an article into the index representation. Content is
// reduced to plain text.
func NewDocument(a *domain.Article) Document {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return Document{
		ID:        a.ID,
		Slug:      a.Slug,
		Title:     a.Title,
		Content:   PlainText(a.Content),
		Category:  a.Category,
		Tags:      tags,
		AuthorID:  a.AuthorID,
		Status:    a.Status,
		UpdatedAt: a.UpdatedAt,
	}
}
