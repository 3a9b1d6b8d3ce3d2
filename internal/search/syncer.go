package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/metrics"
)

const (
	defaultTimeout = 300 * time.Millisecond
	defaultMaxHits = 1000
)

// Syncer applies article changes to an Index with a bounded timeout.
// Write failures are logged and counted, never returned.
type Syncer struct {
	index   Index
	timeout time.Duration
	maxHits int
}

// NewSyncer wraps index. Non-positive values fall back to the defaults.
func NewSyncer(index Index, timeout time.Duration, maxHits int) *Syncer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxHits <= 0 {
		maxHits = defaultMaxHits
	}
	return &Syncer{index: index, timeout: timeout, maxHits: maxHits}
}

// Upsert projects the article into the index.
func (s *Syncer) Upsert(ctx context.Context, a *domain.Article) {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.index.Upsert(ctx, NewDocument(a)); err != nil {
		s.fail(ctx, "upsert", a.ID, err)
		return
	}
	metrics.ObserveDependencyCall(metrics.DependencySearch, "upsert", started)
}

// Delete removes the article from the index.
func (s *Syncer) Delete(ctx context.Context, id string) {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.index.Delete(ctx, id); err != nil {
		s.fail(ctx, "delete", id, err)
		return
	}
	metrics.ObserveDependencyCall(metrics.DependencySearch, "delete", started)
}

// Search returns ranked article ids. Index failures are reported as
// domain.ErrDependencyUnavailable.
func (s *Syncer) Search(ctx context.Context, query string) ([]string, error) {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ids, err := s.index.Search(ctx, query, s.maxHits)
	if err != nil {
		s.fail(ctx, "search", query, err)
		return nil, fmt.Errorf("search %q: %w: %v", query, domain.ErrDependencyUnavailable, err)
	}
	metrics.ObserveDependencyCall(metrics.DependencySearch, "search", started)
	return ids, nil
}

// Reindex rebuilds the projection from a full scan of the store. Unlike
// regular sync, failures abort the rebuild and are returned.
func (s *Syncer) Reindex(ctx context.Context, stream func(context.Context, func(domain.Article) error) error) (int, error) {
	if err := s.index.EnsureIndexes(ctx); err != nil {
		return 0, fmt.Errorf("ensure indexes: %w", err)
	}

	count := 0
	err := stream(ctx, func(a domain.Article) error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		if err := s.index.Upsert(callCtx, NewDocument(&a)); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("reindex: %w", err)
	}

	logger.InfoContext(ctx, "search index rebuilt", slog.Int("documents", count))
	return count, nil
}

func (s *Syncer) fail(ctx context.Context, operation, subject string, err error) {
	metrics.ObserveDependencyFailure(metrics.DependencySearch, operation)
	logger.WarnContext(ctx, "search index operation failed",
		slog.String("operation", operation),
		slog.String("subject", subject),
		slog.String("error", err.Error()))
}
