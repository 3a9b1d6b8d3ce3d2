// Package search keeps the full-text projection of articles in step with the
// article store. The projection is a derived view: writes to it are
// best-effort and it can always be rebuilt from the store.
package search

import "context"

// Index is a full-text index of article documents.
type Index interface {
	// Upsert inserts or replaces the document with the same id.
	Upsert(ctx context.Context, doc Document) error
	// Delete removes a document. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
	// Search returns the ids of matching documents, best match first.
	Search(ctx context.Context, query string, limit int) ([]string, error)
	// EnsureIndexes creates the text index if it does not exist.
	EnsureIndexes(ctx context.Context) error
}
