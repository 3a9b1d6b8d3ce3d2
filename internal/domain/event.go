package domain

import "time"

// ArticleEventType names a lifecycle event published after a successful write.
type ArticleEventType string

const (
	EventArticleCreated   ArticleEventType = "article.created"
	EventArticleUpdated   ArticleEventType = "article.updated"
	EventArticlePublished ArticleEventType = "article.published"
	EventArticleRestored  ArticleEventType = "article.restored"
	EventArticleDeleted   ArticleEventType = "article.deleted"
)

// ArticleEvent is the payload sent to downstream consumers such as notifications.
type ArticleEvent struct {
	Type       ArticleEventType `json:"type"`
	ArticleID  string           `json:"article_id"`
	Slug       string           `json:"slug"`
	AuthorID   string           `json:"author_id"`
	Status     ArticleStatus    `json:"status"`
	Version    int              `json:"version"`
	ActorID    string           `json:"actor_id,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewArticleEvent builds an event from the article state after the write.
func NewArticleEvent(eventType ArticleEventType, a *Article, actorID string) ArticleEvent {
	return ArticleEvent{
		Type:       eventType,
		ArticleID:  a.ID,
		Slug:       a.Slug,
		AuthorID:   a.AuthorID,
		Status:     a.Status,
		Version:    a.CurrentVersion,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
}

// EngagementEvent is consumed from the interaction service.
type EngagementEvent struct {
	ArticleID string         `json:"article_id"`
	Kind      EngagementKind `json:"kind"`
}
