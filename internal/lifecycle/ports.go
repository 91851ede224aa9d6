// Package lifecycle implements the state transitions of articles, authors
// and categories. Every operation is a stateless value: it takes the current
// snapshot and validated inputs and returns the next snapshot together with
// the events the transition produced. Persistence is left to the caller.
package lifecycle

import (
	"context"
	"time"

	"blog-cms/internal/domain"
)

// Clock returns the current time.
type Clock func() time.Time

// SystemClock is the production clock, in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

func orSystem(c Clock) Clock {
	if c == nil {
		return SystemClock
	}
	return c
}

// ArticleSlugLookup checks article slug usage.
type ArticleSlugLookup interface {
	ExistsWithSlug(ctx context.Context, slug domain.Slug) (bool, error)
}

// AuthorLookup finds authors by email.
type AuthorLookup interface {
	FindByEmail(ctx context.Context, email domain.Email) (*domain.Author, error)
}

// AuthorArticleCounter counts articles referencing an author.
type AuthorArticleCounter interface {
	CountArticlesByAuthorID(ctx context.Context, id domain.AuthorID) (int, error)
}

// CategoryLookup reads categories for parent and slug checks.
type CategoryLookup interface {
	FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error)
	ExistsWithSlug(ctx context.Context, slug domain.Slug) (bool, error)
}

// CategoryChildCounter counts direct children of a category.
type CategoryChildCounter interface {
	CountChildren(ctx context.Context, id domain.CategoryID) (int, error)
}
