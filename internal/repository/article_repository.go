package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

const articleColumns = `id, slug, title, content, category, tags, author_id, status, featured_image, media_urls,
	current_version, view_count, like_count, comment_count, read_time, published_at, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool     *pgxpool.Pool
	versions *PostgresVersionRepository
	now      func() time.Time
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository that
// appends versions through the given version repository.
func NewPostgresArticleRepository(pool *pgxpool.Pool, versions *PostgresVersionRepository) *PostgresArticleRepository {
	return &PostgresArticleRepository{
		pool:     pool,
		versions: versions,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts the article together with version 1 in a single transaction.
// Returns domain.ErrConflict if the slug is taken.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article, createdBy string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	taken, err := slugTaken(ctx, tx, a.Slug, a.ID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("create article %q: %w", a.Slug, domain.ErrConflict)
	}

	v := &domain.ArticleVersion{
		ArticleID: a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Category:  a.Category,
		Tags:      a.Tags,
		AuthorID:  a.AuthorID,
		CreatedBy: createdBy,
	}
	if err := r.versions.appendTx(ctx, tx, v); err != nil {
		return err
	}
	a.CurrentVersion = v.Version

	err = tx.QueryRow(ctx, `
		INSERT INTO articles (id, slug, title, content, category, tags, author_id, status, featured_image,
			media_urls, current_version, read_time, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`, a.ID, a.Slug, a.Title, a.Content, a.Category, nonNil(a.Tags), a.AuthorID, a.Status, a.FeaturedImage,
		nonNil(a.MediaURLs), a.CurrentVersion, a.ReadTime, a.PublishedAt,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "articles_slug_key") {
			return fmt.Errorf("create article %q: %w", a.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("insert article: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("commit article: %w", domain.ErrConflict)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}

	a.Tags = nonNil(a.Tags)
	a.MediaURLs = nonNil(a.MediaURLs)
	return nil
}

// Update applies a patch under the article's row lock. A content change or a
// restore appends a version in the same transaction; metadata-only changes do not.
func (r *PostgresArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch, actorID string) (*UpdateResult, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanArticle(tx.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lock article: %w", err)
	}

	next, err := domain.ApplyPatch(*current, patch, r.now())
	if err != nil {
		return nil, err
	}

	if next.Slug != current.Slug {
		taken, err := slugTaken(ctx, tx, next.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("update slug %q: %w", next.Slug, domain.ErrConflict)
		}
	}

	result := &UpdateResult{PreviousSlug: current.Slug}
	if domain.NeedsVersion(*current, next, patch) {
		v := &domain.ArticleVersion{
			ArticleID: id,
			Title:     next.Title,
			Content:   next.Content,
			Category:  next.Category,
			Tags:      next.Tags,
			AuthorID:  next.AuthorID,
			Changes:   domain.VersionChanges(*current, next, patch),
			CreatedBy: actorID,
		}
		if err := r.versions.appendTx(ctx, tx, v); err != nil {
			return nil, err
		}
		next.CurrentVersion = v.Version
		result.Versioned = true
		result.Changes = v.Changes
	}

	_, err = tx.Exec(ctx, `
		UPDATE articles
		SET slug = $2, title = $3, content = $4, category = $5, tags = $6, status = $7, featured_image = $8,
			media_urls = $9, current_version = $10, read_time = $11, published_at = $12, updated_at = $13
		WHERE id = $1
	`, id, next.Slug, next.Title, next.Content, next.Category, nonNil(next.Tags), next.Status, next.FeaturedImage,
		nonNil(next.MediaURLs), next.CurrentVersion, next.ReadTime, next.PublishedAt, next.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "articles_slug_key") {
			return nil, fmt.Errorf("update slug %q: %w", next.Slug, domain.ErrConflict)
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	next.Tags = nonNil(next.Tags)
	next.MediaURLs = nonNil(next.MediaURLs)
	result.Article = &next
	return result, nil
}

// Publish marks the article as published, stamping published_at the first time.
// Publishing an already published article is a no-op apart from updated_at.
func (r *PostgresArticleRepository) Publish(ctx context.Context, id string) (*domain.Article, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}

	a, err := scanArticle(r.pool.QueryRow(ctx, `
		UPDATE articles
		SET status = 'published', published_at = COALESCE(published_at, NOW()), updated_at = NOW()
		WHERE id = $1
		RETURNING `+articleColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("publish article: %w", err)
	}
	return a, nil
}

// Delete removes the article and returns its last state. Versions are retained.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) (*domain.Article, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}

	a, err := scanArticle(r.pool.QueryRow(ctx,
		`DELETE FROM articles WHERE id = $1 RETURNING `+articleColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete article: %w", err)
	}
	return a, nil
}

// GetByID returns the article with the given id or domain.ErrNotFound.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
}

// GetByIDOrSlug resolves key as an id when it parses as a UUID, otherwise as a slug.
func (r *PostgresArticleRepository) GetByIDOrSlug(ctx context.Context, key string) (*domain.Article, error) {
	if isUUID(key) {
		return r.GetByID(ctx, key)
	}
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, key)
}

func (r *PostgresArticleRepository) getOne(ctx context.Context, query string, arg any) (*domain.Article, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// List returns a page of articles and the total number of matches. When
// filter.IDs is non-nil the result is restricted to those ids in that order.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int64, error) {
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []domain.Article{}, 0, nil
	}

	var conditions []string
	var args []any
	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		conditions = append(conditions, "category = "+addArg(filter.Category))
	}
	if filter.Status != "" {
		conditions = append(conditions, "status = "+addArg(filter.Status))
	}
	if filter.AuthorID != "" {
		if !isUUID(filter.AuthorID) {
			return []domain.Article{}, 0, nil
		}
		conditions = append(conditions, "author_id = "+addArg(filter.AuthorID))
	}
	orderBy := "created_at DESC, id"
	if filter.IDs != nil {
		ids := make([]string, 0, len(filter.IDs))
		for _, id := range filter.IDs {
			if isUUID(id) {
				ids = append(ids, id)
			}
		}
		placeholder := addArg(ids)
		conditions = append(conditions, "id = ANY("+placeholder+"::uuid[])")
		orderBy = "array_position(" + placeholder + "::uuid[], id)"
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}
	if total == 0 {
		return []domain.Article{}, 0, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles` + where +
		` ORDER BY ` + orderBy +
		` LIMIT ` + addArg(filter.Limit) + ` OFFSET ` + addArg(filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, filter.Limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate articles: %w", err)
	}

	return articles, total, nil
}

// IncrementView atomically increments the view counter and returns the new value.
func (r *PostgresArticleRepository) IncrementView(ctx context.Context, id string) (int64, error) {
	if !isUUID(id) {
		return 0, domain.ErrNotFound
	}

	var count int64
	err := r.pool.QueryRow(ctx,
		`UPDATE articles SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`, id,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return count, nil
}

// IncrementEngagement atomically increments the like or comment counter and
// returns the article after the increment.
func (r *PostgresArticleRepository) IncrementEngagement(ctx context.Context, id string, kind domain.EngagementKind) (*domain.Article, error) {
	var column string
	switch kind {
	case domain.EngagementLike:
		column = "like_count"
	case domain.EngagementComment:
		column = "comment_count"
	default:
		return nil, domain.NewValidationError("kind", "unknown_engagement_kind")
	}
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}

	a, err := scanArticle(r.pool.QueryRow(ctx,
		`UPDATE articles SET `+column+` = `+column+` + 1 WHERE id = $1 RETURNING `+articleColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("increment %s: %w", column, err)
	}
	return a, nil
}

// StreamAll streams every article ordered by creation time with O(1) memory.
func (r *PostgresArticleRepository) StreamAll(ctx context.Context, callback func(domain.Article) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY created_at, id`)
	if err != nil {
		return fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return err
		}

		if err := callback(*a); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// Aggregate computes totals and per-category and per-author article counts.
// Groups are ordered by count descending, then key ascending.
func (r *PostgresArticleRepository) Aggregate(ctx context.Context) (*domain.GlobalStats, error) {
	stats := &domain.GlobalStats{}
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'published'),
			COALESCE(SUM(view_count), 0)::BIGINT,
			COALESCE(SUM(like_count), 0)::BIGINT,
			COALESCE(SUM(comment_count), 0)::BIGINT
		FROM articles
	`).Scan(&stats.TotalArticles, &stats.PublishedArticles, &stats.TotalViews, &stats.TotalLikes, &stats.TotalComments)
	if err != nil {
		return nil, fmt.Errorf("aggregate articles: %w", err)
	}

	if stats.CategoryStats, err = r.groupCounts(ctx, "category"); err != nil {
		return nil, err
	}
	if stats.AuthorStats, err = r.groupCounts(ctx, "author_id::text"); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *PostgresArticleRepository) groupCounts(ctx context.Context, expr string) ([]domain.GroupCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+expr+` AS key, COUNT(*) AS count FROM articles GROUP BY key ORDER BY count DESC, key ASC`)
	if err != nil {
		return nil, fmt.Errorf("group articles by %s: %w", expr, err)
	}
	defer rows.Close()

	groups := make([]domain.GroupCount, 0)
	for rows.Next() {
		var g domain.GroupCount
		if err := rows.Scan(&g.Key, &g.Count); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// slugTaken reports whether another article already uses slug.
func slugTaken(ctx context.Context, q querier, slug, exceptID string) (bool, error) {
	var taken bool
	if err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`, slug, exceptID,
	).Scan(&taken); err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return taken, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	if err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Content, &a.Category, &a.Tags, &a.AuthorID, &a.Status,
		&a.FeaturedImage, &a.MediaURLs, &a.CurrentVersion, &a.ViewCount, &a.LikeCount, &a.CommentCount,
		&a.ReadTime, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan article: %w", err)
	}
	return &a, nil
}
