package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

const versionColumns = `article_id, version, title, content, category, tags, author_id, changes, created_by, created_at`

// PostgresVersionRepository implements VersionRepository using PostgreSQL.
// Versions are only ever inserted, through appendTx inside an article transaction.
type PostgresVersionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVersionRepository creates a new PostgresVersionRepository.
func NewPostgresVersionRepository(pool *pgxpool.Pool) *PostgresVersionRepository {
	return &PostgresVersionRepository{pool: pool}
}

// appendTx assigns the next version number for the article and inserts the
// version within tx. The caller must hold the article row lock.
func (r *PostgresVersionRepository) appendTx(ctx context.Context, tx pgx.Tx, v *domain.ArticleVersion) error {
	if err := tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM article_versions WHERE article_id = $1`,
		v.ArticleID,
	).Scan(&v.Version); err != nil {
		return fmt.Errorf("next version: %w", err)
	}

	changes := v.Changes
	if changes == nil {
		changes = []domain.Change{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO article_versions (article_id, version, title, content, category, tags, author_id, changes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`, v.ArticleID, v.Version, v.Title, v.Content, v.Category, nonNil(v.Tags), v.AuthorID, changesJSON, v.CreatedBy,
	).Scan(&v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "article_versions_pkey") {
			return fmt.Errorf("append version %d: %w", v.Version, ErrVersionConflict)
		}
		return fmt.Errorf("insert version: %w", err)
	}

	v.Changes = changes
	return nil
}

// List returns every version of an article, newest first.
func (r *PostgresVersionRepository) List(ctx context.Context, articleID string) ([]domain.ArticleVersion, error) {
	if !isUUID(articleID) {
		return []domain.ArticleVersion{}, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+versionColumns+` FROM article_versions WHERE article_id = $1 ORDER BY version DESC`,
		articleID,
	)
	if err != nil {
		return nil, fmt.Errorf("query versions: %w", err)
	}
	defer rows.Close()

	versions := make([]domain.ArticleVersion, 0)
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate versions: %w", err)
	}

	return versions, nil
}

// Get returns a single version. Returns domain.ErrNotFound if it does not exist.
func (r *PostgresVersionRepository) Get(ctx context.Context, articleID string, version int) (*domain.ArticleVersion, error) {
	if !isUUID(articleID) {
		return nil, domain.ErrNotFound
	}

	v, err := scanVersion(r.pool.QueryRow(ctx,
		`SELECT `+versionColumns+` FROM article_versions WHERE article_id = $1 AND version = $2`,
		articleID, version,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// Count returns the number of versions recorded for an article.
func (r *PostgresVersionRepository) Count(ctx context.Context, articleID string) (int, error) {
	if !isUUID(articleID) {
		return 0, nil
	}

	var count int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM article_versions WHERE article_id = $1`, articleID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count versions: %w", err)
	}
	return count, nil
}

func scanVersion(row pgx.Row) (*domain.ArticleVersion, error) {
	var v domain.ArticleVersion
	var changesJSON []byte
	if err := row.Scan(&v.ArticleID, &v.Version, &v.Title, &v.Content, &v.Category, &v.Tags,
		&v.AuthorID, &changesJSON, &v.CreatedBy, &v.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan version: %w", err)
	}
	if err := json.Unmarshal(changesJSON, &v.Changes); err != nil {
		return nil, fmt.Errorf("decode changes of version %d: %w", v.Version, err)
	}
	if v.Changes == nil {
		v.Changes = []domain.Change{}
	}
	return &v, nil
}
