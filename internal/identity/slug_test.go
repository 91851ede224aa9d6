package identity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
)

func TestSlugger_Slugify(t *testing.T) {
	s := NewSlugger()

	tests := []struct {
		in   string
		want domain.Slug
	}{
		{"My Title", "my-title"},
		{"  Hello,   World!  ", "hello-world"},
		{"Café crème brûlée", "cafe-creme-brulee"},
		{"Go 1.24 released", "go-1-24-released"},
		{"already-a-slug", "already-a-slug"},
		{"--dashes--", "dashes"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := s.Slugify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlugger_Slugify_Empty(t *testing.T) {
	s := NewSlugger()

	_, err := s.Slugify("!!!")
	assert.True(t, domain.IsCode(err, domain.CodeInvalidSlug))
}

func TestSlugger_Slugify_NonLatin(t *testing.T) {
	s := NewSlugger()

	first, err := s.Slugify("日本語のタイトル")
	require.NoError(t, err)
	assert.Len(t, string(first), fallbackSlugLength)

	again, err := s.Slugify("日本語のタイトル")
	require.NoError(t, err)
	assert.Equal(t, first, again)

	other, err := s.Slugify("Новости")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	mixed, err := s.Slugify("Go 入門")
	require.NoError(t, err)
	assert.Equal(t, domain.Slug("go"), mixed)
}

func TestSlugger_Slugify_Truncates(t *testing.T) {
	s := NewSlugger()

	got, err := s.Slugify(strings.Repeat("ab ", 200))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), domain.MaxSlugLength)
	assert.False(t, strings.HasSuffix(string(got), "-"))
}

func TestSlugger_GenerateUnique(t *testing.T) {
	ctx := context.Background()
	s := NewSlugger()

	t.Run("free base slug", func(t *testing.T) {
		got, err := s.GenerateUnique(ctx, "News", func(context.Context, domain.Slug) (bool, error) {
			return false, nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.Slug("news"), got)
	})

	t.Run("suffixes on collision", func(t *testing.T) {
		taken := map[domain.Slug]bool{"news": true, "news-1": true}
		got, err := s.GenerateUnique(ctx, "News", func(_ context.Context, slug domain.Slug) (bool, error) {
			return taken[slug], nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.Slug("news-2"), got)
	})

	t.Run("suffix respects max length", func(t *testing.T) {
		long := strings.Repeat("a", domain.MaxSlugLength)
		calls := 0
		got, err := s.GenerateUnique(ctx, long, func(context.Context, domain.Slug) (bool, error) {
			calls++
			return calls == 1, nil
		})
		require.NoError(t, err)
		assert.Len(t, string(got), domain.MaxSlugLength)
		assert.True(t, strings.HasSuffix(string(got), "-1"))
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		boom := errors.New("db down")
		_, err := s.GenerateUnique(ctx, "News", func(context.Context, domain.Slug) (bool, error) {
			return false, boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		_, err := s.GenerateUnique(ctx, "News", func(context.Context, domain.Slug) (bool, error) {
			return true, nil
		})
		assert.True(t, domain.IsCode(err, domain.CodeSlugAlreadyExists))
	})
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.NextIdentity(), g.NextIdentity()
	assert.NotEqual(t, first, second)
	_, err := domain.NewArticleID(first)
	assert.NoError(t, err)
}
