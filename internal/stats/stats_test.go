package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/stats"
)

func TestAverageViewsPerDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name        string
		views       int64
		publishedAt *time.Time
		want        float64
	}{
		{name: "never published", views: 40, want: 0},
		{name: "published today counts one day", views: 40, publishedAt: at(2 * time.Hour), want: 40},
		{name: "partial day rounds up", views: 40, publishedAt: at(36 * time.Hour), want: 20},
		{name: "whole days", views: 90, publishedAt: at(72 * time.Hour), want: 30},
		{name: "future timestamp clamps to one day", views: 5, publishedAt: at(-time.Hour), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &domain.Article{ViewCount: tt.views, PublishedAt: tt.publishedAt}
			assert.InDelta(t, tt.want, stats.AverageViewsPerDay(a, now), 0.0001)
		})
	}
}

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name                   string
		views, likes, comments int64
		want                   float64
	}{
		{name: "no views", views: 0, likes: 3, comments: 1, want: 0},
		{name: "no engagement", views: 100, want: 0},
		{name: "quarter engaged", views: 40, likes: 6, comments: 4, want: 25},
		{name: "more engagement than views", views: 2, likes: 3, comments: 1, want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &domain.Article{ViewCount: tt.views, LikeCount: tt.likes, CommentCount: tt.comments}
			assert.InDelta(t, tt.want, stats.EngagementRate(a), 0.0001)
		})
	}
}
