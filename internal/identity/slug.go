package identity

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"blog-cms/internal/domain"
)

// DefaultMaxSuffixAttempts bounds the -1, -2, ... collision search.
const DefaultMaxSuffixAttempts = 100

// fallbackSlugLength is the number of hex digits kept for text without
// Latin letters or digits.
const fallbackSlugLength = 12

var slugNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("blog-cms/slug"))

// SlugExists reports whether a slug is already taken.
type SlugExists func(ctx context.Context, slug domain.Slug) (bool, error)

// SlugGenerator derives URL-safe slugs from titles and names.
type SlugGenerator interface {
	// Slugify converts text into a slug without checking uniqueness.
	Slugify(text string) (domain.Slug, error)
	// GenerateUnique slugifies text and appends -1, -2, ... until exists
	// reports the candidate as free.
	GenerateUnique(ctx context.Context, text string, exists SlugExists) (domain.Slug, error)
}

// Slugger is the default SlugGenerator. Accents are stripped, letters are
// lower-cased and every other run of characters becomes one hyphen. Text
// whose letters are all outside a-z (CJK, Cyrillic, ...) gets a stable hex
// slug derived from the text itself.
type Slugger struct {
	maxLength   int
	maxAttempts int
}

// NewSlugger creates a Slugger bounded to domain.MaxSlugLength.
func NewSlugger() *Slugger {
	return &Slugger{maxLength: domain.MaxSlugLength, maxAttempts: DefaultMaxSuffixAttempts}
}

// Slugify implements SlugGenerator.
func (s *Slugger) Slugify(text string) (domain.Slug, error) {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), text)
	if err != nil {
		return "", fmt.Errorf("normalize %q: %w", text, err)
	}

	var b strings.Builder
	pendingHyphen := false
	hasWords := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			hasWords = true
		}
		pendingHyphen = true
	}

	slug := truncateSlug(b.String(), s.maxLength)
	if slug == "" && hasWords {
		slug = fallbackSlug(folded)
	}
	if slug == "" {
		return "", domain.NewError(domain.CodeInvalidSlug, "cannot derive a slug from %q", text)
	}
	return domain.NewSlug(slug)
}

func fallbackSlug(text string) string {
	id := uuid.NewSHA1(slugNamespace, []byte(strings.TrimSpace(text)))
	return strings.ReplaceAll(id.String(), "-", "")[:fallbackSlugLength]
}

// GenerateUnique implements SlugGenerator.
func (s *Slugger) GenerateUnique(ctx context.Context, text string, exists SlugExists) (domain.Slug, error) {
	base, err := s.Slugify(text)
	if err != nil {
		return "", err
	}

	candidate := base
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		suffix := "-" + strconv.Itoa(attempt)
		candidate = domain.Slug(truncateSlug(string(base), s.maxLength-len(suffix)) + suffix)
	}

	return "", domain.NewError(domain.CodeSlugAlreadyExists, "no free slug for %q after %d attempts", text, s.maxAttempts)
}

// truncateSlug cuts an ASCII slug to max bytes without leaving a trailing hyphen.
func truncateSlug(slug string, max int) string {
	if len(slug) > max {
		slug = slug[:max]
	}
	return strings.TrimRight(slug, "-")
}
