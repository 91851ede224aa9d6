package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Bounds for value objects.
const (
	MaxTitleLength        = 255
	MaxSlugLength         = 250
	MaxAuthorNameLength   = 100
	MaxBioLength          = 1000
	MaxCategoryNameLength = 100
	MaxDescriptionLength  = 1000
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ArticleID identifies an article.
type ArticleID string

// AuthorID identifies an author.
type AuthorID string

// CategoryID identifies a category.
type CategoryID string

// Title is a trimmed, non-empty article title.
type Title string

// Content is the non-empty article body.
type Content string

// Slug is a URL-safe identifier derived from a title or name.
type Slug string

// AuthorName is a trimmed, non-empty author display name.
type AuthorName string

// Email is a lower-cased, syntactically valid address.
type Email string

// Bio is an optional author biography.
type Bio string

// CategoryName is a trimmed, non-empty category name.
type CategoryName string

// CategoryDescription is an optional category description.
type CategoryDescription string

// CategoryOrder is the non-negative sort position among siblings.
type CategoryOrder int

func parseUUID(raw string) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// NewArticleID validates raw as a UUID.
func NewArticleID(raw string) (ArticleID, error) {
	id, ok := parseUUID(raw)
	if !ok {
		return "", NewError(CodeInvalidID, "article id %q is not a valid UUID", raw)
	}
	return ArticleID(id), nil
}

// NewAuthorID validates raw as a UUID.
func NewAuthorID(raw string) (AuthorID, error) {
	id, ok := parseUUID(raw)
	if !ok {
		return "", NewError(CodeInvalidID, "author id %q is not a valid UUID", raw)
	}
	return AuthorID(id), nil
}

// NewCategoryID validates raw as a UUID.
func NewCategoryID(raw string) (CategoryID, error) {
	id, ok := parseUUID(raw)
	if !ok {
		return "", NewError(CodeInvalidID, "category id %q is not a valid UUID", raw)
	}
	return CategoryID(id), nil
}

// NewTitle trims raw and enforces 1..MaxTitleLength runes.
func NewTitle(raw string) (Title, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", NewError(CodeInvalidTitle, "title must not be empty")
	}
	if utf8.RuneCountInString(v) > MaxTitleLength {
		return "", NewError(CodeInvalidTitle, "title must be at most %d characters", MaxTitleLength)
	}
	return Title(v), nil
}

// NewContent rejects blank content. Surrounding whitespace is kept.
func NewContent(raw string) (Content, error) {
	if strings.TrimSpace(raw) == "" {
		return "", NewError(CodeInvalidContent, "content must not be empty")
	}
	return Content(raw), nil
}

// NewSlug checks the slug format and length.
func NewSlug(raw string) (Slug, error) {
	if raw == "" {
		return "", NewError(CodeInvalidSlug, "slug must not be empty")
	}
	if len(raw) > MaxSlugLength {
		return "", NewError(CodeInvalidSlug, "slug must be at most %d characters", MaxSlugLength)
	}
	if !slugPattern.MatchString(raw) {
		return "", NewError(CodeInvalidSlug, "slug %q must contain only lowercase letters, digits and single hyphens", raw)
	}
	return Slug(raw), nil
}

// NewAuthorName trims raw and enforces 1..MaxAuthorNameLength runes.
func NewAuthorName(raw string) (AuthorName, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", NewError(CodeInvalidAuthorName, "author name must not be empty")
	}
	if utf8.RuneCountInString(v) > MaxAuthorNameLength {
		return "", NewError(CodeInvalidAuthorName, "author name must be at most %d characters", MaxAuthorNameLength)
	}
	return AuthorName(v), nil
}

// NewEmail normalizes raw to lower case and validates its format.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", NewError(CodeInvalidEmail, "email must not be empty")
	}
	if err := is.EmailFormat.Validate(v); err != nil {
		return "", NewError(CodeInvalidEmail, "email %q is not a valid address", raw)
	}
	return Email(v), nil
}

// NewBio trims raw and enforces the maximum length. Empty is allowed.
func NewBio(raw string) (Bio, error) {
	v := strings.TrimSpace(raw)
	if utf8.RuneCountInString(v) > MaxBioLength {
		return "", NewError(CodeInvalidBio, "bio must be at most %d characters", MaxBioLength)
	}
	return Bio(v), nil
}

// NewCategoryName trims raw and enforces 1..MaxCategoryNameLength runes.
func NewCategoryName(raw string) (CategoryName, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", NewError(CodeInvalidCategoryName, "category name must not be empty")
	}
	if utf8.RuneCountInString(v) > MaxCategoryNameLength {
		return "", NewError(CodeInvalidCategoryName, "category name must be at most %d characters", MaxCategoryNameLength)
	}
	return CategoryName(v), nil
}

// NewCategoryDescription trims raw and enforces the maximum length.
func NewCategoryDescription(raw string) (CategoryDescription, error) {
	v := strings.TrimSpace(raw)
	if utf8.RuneCountInString(v) > MaxDescriptionLength {
		return "", NewError(CodeInvalidDescription, "category description must be at most %d characters", MaxDescriptionLength)
	}
	return CategoryDescription(v), nil
}

// NewCategoryOrder rejects negative positions.
func NewCategoryOrder(raw int) (CategoryOrder, error) {
	if raw < 0 {
		return 0, NewError(CodeInvalidOrder, "category order must be non-negative, got %d", raw)
	}
	return CategoryOrder(raw), nil
}

// Timestamps holds creation and last modification times.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTimestamps requires both times and UpdatedAt >= CreatedAt.
func NewTimestamps(createdAt, updatedAt time.Time) (Timestamps, error) {
	if createdAt.IsZero() || updatedAt.IsZero() {
		return Timestamps{}, NewError(CodeInvalidTimestamps, "created_at and updated_at are required")
	}
	if updatedAt.Before(createdAt) {
		return Timestamps{}, NewError(CodeInvalidTimestamps, "updated_at must not be before created_at")
	}
	return Timestamps{CreatedAt: createdAt, UpdatedAt: updatedAt}, nil
}

// CreatedNow returns timestamps with both fields set to now.
func CreatedNow(now time.Time) Timestamps {
	return Timestamps{CreatedAt: now, UpdatedAt: now}
}

// Touch returns a copy with UpdatedAt moved to now, never before CreatedAt.
func (t Timestamps) Touch(now time.Time) Timestamps {
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	return Timestamps{CreatedAt: t.CreatedAt, UpdatedAt: now}
}
