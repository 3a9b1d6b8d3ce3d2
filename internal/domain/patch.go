package domain

import (
	"fmt"
	"slices"
	"time"
)

// ApplyPatch returns a copy of the article with the patch applied. The slug is
// recomputed when the title changes, status changes are checked against
// CanTransition, and PublishedAt is stamped the first time an article is published.
func ApplyPatch(current Article, patch ArticlePatch, now time.Time) (Article, error) {
	next := current
	next.Tags = slices.Clone(current.Tags)
	next.MediaURLs = slices.Clone(current.MediaURLs)

	if patch.Title != nil && *patch.Title != current.Title {
		slug := DeriveSlug(*patch.Title)
		if slug == "" {
			return Article{}, NewValidationError("title", "title_must_contain_letters_or_digits")
		}
		next.Title = *patch.Title
		next.Slug = slug
	}
	if patch.Content != nil {
		next.Content = *patch.Content
	}
	if patch.ReadTime != nil {
		next.ReadTime = *patch.ReadTime
	}
	if patch.Category != nil {
		next.Category = *patch.Category
	}
	if patch.Tags != nil {
		next.Tags = slices.Clone(patch.Tags)
	}
	if patch.FeaturedImage != nil {
		next.FeaturedImage = patch.FeaturedImage
	}
	if patch.MediaURLs != nil {
		next.MediaURLs = slices.Clone(patch.MediaURLs)
	}

	if patch.Status != nil {
		if !IsValidStatus(string(*patch.Status)) {
			return Article{}, NewValidationError("status", "invalid_status")
		}
		if !CanTransition(current.Status, *patch.Status) {
			return Article{}, NewValidationError("status",
				fmt.Sprintf("cannot_transition_from_%s_to_%s", current.Status, *patch.Status))
		}
		next.Status = *patch.Status
	}
	if patch.RestoredFrom != nil && next.Status == StatusArchived {
		next.Status = StatusDraft
	}
	if next.Status == StatusPublished && next.PublishedAt == nil {
		published := now
		next.PublishedAt = &published
	}

	next.UpdatedAt = now
	return next, nil
}

// NeedsVersion reports whether moving from current to next must append a version.
func NeedsVersion(current, next Article, patch ArticlePatch) bool {
	return patch.RestoredFrom != nil || current.Content != next.Content
}

// VersionChanges builds the change list for a new version. A status move made
// by the same update, such as a restore reopening an archived article, is
// recorded after the content fields.
func VersionChanges(current, next Article, patch ArticlePatch) []Change {
	changes := DiffSnapshots(current.Snapshot(), next.Snapshot())
	if current.Status != next.Status {
		changes = append(changes, Change{Field: FieldStatus, OldValue: StatusValue(current.Status), NewValue: StatusValue(next.Status)})
	}
	if patch.RestoredFrom != nil {
		changes = append([]Change{RestoreChange(*patch.RestoredFrom)}, changes...)
	}
	return changes
}
