// Package security cleans user-supplied article HTML before it is stored.
package security

import (
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizer cleans article bodies and plain-text fields.
type ContentSanitizer interface {
	// Sanitize keeps an allow-list of formatting tags and drops scripts,
	// frames, styles and event attributes. Output is stable for equal input.
	Sanitize(rawHTML string) string
	// StripTags removes all markup and returns plain text, for titles and
	// names.
	StripTags(raw string) string
}

type contentSanitizer struct {
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

// NewContentSanitizer builds the article policy:
//   - text tags: p, br, h2-h4, ul, ol, li, blockquote, pre, code, strong, em
//   - a[href] and img[src, alt] with absolute https URLs only
//   - links open in a new tab with noreferrer
func NewContentSanitizer() ContentSanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "h2", "h3", "h4",
		"ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	p.AllowAttrs("alt").OnElements("img")
	p.AllowAttrs("src").OnElements("img")
	p.AllowURLSchemeWithCustomPolicy("https", func(*url.URL) bool {
		return true
	})

	return &contentSanitizer{
		policy: p,
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *contentSanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}

func (s *contentSanitizer) StripTags(raw string) string {
	return strings.TrimSpace(html.UnescapeString(s.strict.Sanitize(raw)))
}
