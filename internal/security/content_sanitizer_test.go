package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "keeps formatting",
			input:    "<h2>Intro</h2><p>Some <strong>bold</strong> and <em>soft</em> text</p>",
			contains: []string{"<h2>Intro</h2>", "<strong>bold</strong>", "<em>soft</em>"},
		},
		{
			name:     "keeps code blocks",
			input:    "<pre><code>func main() {}</code></pre>",
			contains: []string{"<pre><code>func main() {}</code></pre>"},
		},
		{
			name:        "drops scripts",
			input:       `<p>hi</p><script>alert("x")</script>`,
			contains:    []string{"<p>hi</p>"},
			notContains: []string{"<script", "alert"},
		},
		{
			name:        "drops event attributes",
			input:       `<p onclick="steal()">click</p>`,
			contains:    []string{"<p>click</p>"},
			notContains: []string{"onclick"},
		},
		{
			name:        "drops iframes and styles",
			input:       `<iframe src="https://evil.example"></iframe><style>p{}</style><p>ok</p>`,
			notContains: []string{"<iframe", "<style"},
		},
		{
			name:     "links get target and rel",
			input:    `<a href="https://go.dev">Go</a>`,
			contains: []string{`href="https://go.dev"`, `target="_blank"`, "noreferrer"},
		},
		{
			name:        "javascript links are dropped",
			input:       `<a href="javascript:alert(1)">x</a>`,
			notContains: []string{"javascript:"},
		},
		{
			name:        "http images are dropped",
			input:       `<img src="http://example.com/a.png" alt="a">`,
			notContains: []string{"http://example.com"},
		},
		{
			name:     "https images are kept",
			input:    `<img src="https://example.com/a.png" alt="a">`,
			contains: []string{`src="https://example.com/a.png"`, `alt="a"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestSanitize_Deterministic(t *testing.T) {
	sanitizer := NewContentSanitizer()
	input := `<p>Hello <a href="https://go.dev">Go</a></p><script>x()</script>`

	assert.Equal(t, sanitizer.Sanitize(input), sanitizer.Sanitize(input))
	assert.Equal(t, "", sanitizer.Sanitize(""))
}

func TestStripTags(t *testing.T) {
	sanitizer := NewContentSanitizer()

	assert.Equal(t, "Hello World", sanitizer.StripTags("  <b>Hello</b> World "))
	assert.Equal(t, "Tom & Jerry", sanitizer.StripTags("Tom & Jerry"))
	assert.False(t, strings.Contains(sanitizer.StripTags("<script>x()</script>Title"), "<script"))
}
