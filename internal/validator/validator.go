package validator

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

// Input limits.
const (
	MinTitleLength    = 3
	MaxTitleLength    = 200
	MinContentLength  = 10
	MaxContentLength  = 50000
	MinCategoryLength = 2
	MaxCategoryLength = 50
	MaxTags           = 10
	MaxTagLength      = 50
	MaxPageSize       = 100
	MaxSearchLength   = 200

	DefaultPage     = 1
	DefaultPageSize = 10
)

var validStatus = []interface{}{domain.StatusDraft, domain.StatusPublished, domain.StatusArchived}

// Validator provides validation methods for article inputs. Failures are
// returned as *domain.ValidationError keyed by JSON field name.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateArticle validates the input of a create request.
func (v *Validator) ValidateCreateArticle(in *domain.CreateArticleInput) error {
	return toDomainError(validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(MinTitleLength, MaxTitleLength).Error("title_must_be_3_to_200_characters"),
		),
		validation.Field(&in.Content,
			validation.Required.Error("content_required"),
			validation.RuneLength(MinContentLength, MaxContentLength).Error("content_must_be_10_to_50000_characters"),
		),
		validation.Field(&in.Category,
			validation.Required.Error("category_required"),
			validation.RuneLength(MinCategoryLength, MaxCategoryLength).Error("category_must_be_2_to_50_characters"),
		),
		validation.Field(&in.Tags,
			validation.Required.Error("tags_required"),
			validation.Length(1, MaxTags).Error("tags_must_have_1_to_10_items"),
			validation.Each(tagRules()...),
		),
		validation.Field(&in.AuthorID,
			validation.Required.Error("author_id_required"),
			is.UUID.Error("invalid_author_id"),
		),
		validation.Field(&in.FeaturedImage,
			validation.NilOrNotEmpty.Error("featured_image_must_not_be_empty"),
			is.URL.Error("invalid_featured_image_url"),
		),
		validation.Field(&in.MediaURLs,
			validation.Each(is.URL.Error("invalid_media_url")),
		),
	))
}

// ValidateArticlePatch validates a partial update. Absent fields are skipped;
// present fields follow the create rules.
func (v *Validator) ValidateArticlePatch(p *domain.ArticlePatch) error {
	if p.IsEmpty() {
		return domain.NewValidationError("body", "no_fields_to_update")
	}

	return toDomainError(validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.NilOrNotEmpty.Error("title_required"),
			validation.RuneLength(MinTitleLength, MaxTitleLength).Error("title_must_be_3_to_200_characters"),
		),
		validation.Field(&p.Content,
			validation.NilOrNotEmpty.Error("content_required"),
			validation.RuneLength(MinContentLength, MaxContentLength).Error("content_must_be_10_to_50000_characters"),
		),
		validation.Field(&p.Category,
			validation.NilOrNotEmpty.Error("category_required"),
			validation.RuneLength(MinCategoryLength, MaxCategoryLength).Error("category_must_be_2_to_50_characters"),
		),
		validation.Field(&p.Tags,
			validation.NilOrNotEmpty.Error("tags_must_have_1_to_10_items"),
			validation.Length(1, MaxTags).Error("tags_must_have_1_to_10_items"),
			validation.Each(tagRules()...),
		),
		validation.Field(&p.Status,
			validation.NilOrNotEmpty.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
		validation.Field(&p.FeaturedImage,
			validation.NilOrNotEmpty.Error("featured_image_must_not_be_empty"),
			is.URL.Error("invalid_featured_image_url"),
		),
		validation.Field(&p.MediaURLs,
			validation.Each(is.URL.Error("invalid_media_url")),
		),
	))
}

// ValidateListFilter applies listing defaults and validates the result.
func (v *Validator) ValidateListFilter(f *domain.ArticleFilter) error {
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = DefaultPageSize
	}

	return toDomainError(validation.ValidateStruct(f,
		validation.Field(&f.Page,
			validation.Min(1).Error("page_must_be_positive"),
		),
		validation.Field(&f.Limit,
			validation.Min(1).Error("limit_must_be_positive"),
			validation.Max(MaxPageSize).Error("limit_must_not_exceed_100"),
		),
		validation.Field(&f.Status,
			validation.In("draft", "published", "archived").Error("invalid_status"),
		),
		validation.Field(&f.AuthorID,
			is.UUID.Error("invalid_author_id"),
		),
		validation.Field(&f.Search,
			validation.RuneLength(0, MaxSearchLength).Error("search_too_long"),
		),
	))
}

func tagRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("tag_must_not_be_empty"),
		validation.RuneLength(1, MaxTagLength).Error("tag_too_long"),
	}
}

// toDomainError converts ozzo validation errors into a domain.ValidationError.
// Internal rule errors are returned unchanged.
func toDomainError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for field, fieldErr := range ve {
			if fieldErr != nil {
				fields[field] = fieldErr.Error()
			}
		}
		return &domain.ValidationError{Fields: fields}
	}
	return err
}
