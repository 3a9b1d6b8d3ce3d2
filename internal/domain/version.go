package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// Field names recorded in version changes.
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldCategory = "category"
	FieldTags     = "tags"
	FieldStatus   = "status"
	FieldRestore  = "restore"
)

// ArticleVersion is an immutable snapshot of an article's editable content.
type ArticleVersion struct {
	ArticleID string    `json:"article_id"`
	Version   int       `json:"version"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	AuthorID  string    `json:"author_id"`
	Changes   []Change  `json:"changes"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot returns the versioned fields captured by the version.
func (v *ArticleVersion) Snapshot() Snapshot {
	return Snapshot{
		Title:    v.Title,
		Content:  v.Content,
		Category: v.Category,
		Tags:     v.Tags,
	}
}

// Snapshot groups the fields that make up a version.
type Snapshot struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

// Change describes one field delta between consecutive versions.
type Change struct {
	Field    string      `json:"field"`
	OldValue ChangeValue `json:"old_value"`
	NewValue ChangeValue `json:"new_value"`
}

// ChangeKind tags the type held by a ChangeValue.
type ChangeKind string

const (
	ChangeKindNull    ChangeKind = "null"
	ChangeKindString  ChangeKind = "string"
	ChangeKindStrings ChangeKind = "strings"
	ChangeKindStatus  ChangeKind = "status"
)

// ChangeValue is a tagged union over the value types a change can carry.
// The zero value is the null variant.
type ChangeValue struct {
	kind   ChangeKind
	str    string
	strs   []string
	status ArticleStatus
}

// NullValue returns the null variant.
func NullValue() ChangeValue { return ChangeValue{kind: ChangeKindNull} }

// StringValue wraps a string.
func StringValue(s string) ChangeValue { return ChangeValue{kind: ChangeKindString, str: s} }

// StringsValue wraps a string list. The slice is copied.
func StringsValue(ss []string) ChangeValue {
	return ChangeValue{kind: ChangeKindStrings, strs: slices.Clone(ss)}
}

// StatusValue wraps an article status.
func StatusValue(s ArticleStatus) ChangeValue { return ChangeValue{kind: ChangeKindStatus, status: s} }

// Kind returns the variant tag.
func (v ChangeValue) Kind() ChangeKind {
	if v.kind == "" {
		return ChangeKindNull
	}
	return v.kind
}

// IsNull reports whether the value is the null variant.
func (v ChangeValue) IsNull() bool { return v.Kind() == ChangeKindNull }

// AsString returns the string payload.
func (v ChangeValue) AsString() (string, bool) { return v.str, v.kind == ChangeKindString }

// AsStrings returns the string list payload.
func (v ChangeValue) AsStrings() ([]string, bool) { return v.strs, v.kind == ChangeKindStrings }

// AsStatus returns the status payload.
func (v ChangeValue) AsStatus() (ArticleStatus, bool) { return v.status, v.kind == ChangeKindStatus }

type changeValueJSON struct {
	Kind  ChangeKind      `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value as {"kind": ..., "value": ...}.
func (v ChangeValue) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.Kind() {
	case ChangeKindNull:
		return json.Marshal(changeValueJSON{Kind: ChangeKindNull})
	case ChangeKindString:
		payload = v.str
	case ChangeKindStrings:
		strs := v.strs
		if strs == nil {
			strs = []string{}
		}
		payload = strs
	case ChangeKindStatus:
		payload = v.status
	default:
		return nil, fmt.Errorf("unknown change kind %q", v.kind)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(changeValueJSON{Kind: v.kind, Value: raw})
}

// UnmarshalJSON decodes the tagged form produced by MarshalJSON.
func (v *ChangeValue) UnmarshalJSON(data []byte) error {
	var wire changeValueJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Kind {
	case "", ChangeKindNull:
		*v = NullValue()
	case ChangeKindString:
		var s string
		if err := json.Unmarshal(wire.Value, &s); err != nil {
			return fmt.Errorf("decode string change value: %w", err)
		}
		*v = StringValue(s)
	case ChangeKindStrings:
		var ss []string
		if err := json.Unmarshal(wire.Value, &ss); err != nil {
			return fmt.Errorf("decode strings change value: %w", err)
		}
		*v = StringsValue(ss)
	case ChangeKindStatus:
		var s string
		if err := json.Unmarshal(wire.Value, &s); err != nil {
			return fmt.Errorf("decode status change value: %w", err)
		}
		if !IsValidStatus(s) {
			return fmt.Errorf("invalid status change value %q", s)
		}
		*v = StatusValue(ArticleStatus(s))
	default:
		return fmt.Errorf("unknown change kind %q", wire.Kind)
	}
	return nil
}

// DiffSnapshots lists the versioned fields that differ between two snapshots,
// in a fixed field order.
func DiffSnapshots(before, after Snapshot) []Change {
	var changes []Change
	if before.Title != after.Title {
		changes = append(changes, Change{Field: FieldTitle, OldValue: StringValue(before.Title), NewValue: StringValue(after.Title)})
	}
	if before.Content != after.Content {
		changes = append(changes, Change{Field: FieldContent, OldValue: StringValue(before.Content), NewValue: StringValue(after.Content)})
	}
	if before.Category != after.Category {
		changes = append(changes, Change{Field: FieldCategory, OldValue: StringValue(before.Category), NewValue: StringValue(after.Category)})
	}
	if !slices.Equal(before.Tags, after.Tags) {
		changes = append(changes, Change{Field: FieldTags, OldValue: StringsValue(before.Tags), NewValue: StringsValue(after.Tags)})
	}
	return changes
}

// RestoreChange is the marker recorded first in a version created by a restore.
func RestoreChange(version int) Change {
	return Change{
		Field:    FieldRestore,
		OldValue: NullValue(),
		NewValue: StringValue(fmt.Sprintf("restored to version %d", version)),
	}
}

// VersionSummary is the compact history entry used by statistics.
type VersionSummary struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Changes   int       `json:"changes"`
}
