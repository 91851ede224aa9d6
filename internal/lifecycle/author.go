package lifecycle

import (
	"context"
	"fmt"

	"blog-cms/internal/domain"
)

// AuthorProfile holds the validated editable fields of an author.
type AuthorProfile struct {
	Name  domain.AuthorName
	Email domain.Email
	Bio   domain.Bio
}

// AuthorCreator registers authors with unique emails.
type AuthorCreator struct {
	authors AuthorLookup
	now     Clock
}

// NewAuthorCreator creates an AuthorCreator.
func NewAuthorCreator(authors AuthorLookup, now Clock) *AuthorCreator {
	return &AuthorCreator{authors: authors, now: orSystem(now)}
}

// Create fails with AUTHOR_ALREADY_EXISTS when the email is registered.
func (c *AuthorCreator) Create(ctx context.Context, id domain.AuthorID, p AuthorProfile) (domain.Author, []domain.Event, error) {
	existing, err := c.authors.FindByEmail(ctx, p.Email)
	if err != nil {
		return domain.Author{}, nil, fmt.Errorf("find author by email: %w", err)
	}
	if existing != nil {
		return domain.Author{}, nil, domain.NewError(domain.CodeAuthorAlreadyExists, "an author with email %s already exists", p.Email)
	}

	author := domain.Author{
		ID:         id,
		Name:       p.Name,
		Email:      p.Email,
		Bio:        p.Bio,
		Timestamps: domain.CreatedNow(c.now()),
	}
	return author, []domain.Event{domain.AuthorCreated{
		AuthorID:  author.ID,
		Name:      author.Name,
		Email:     author.Email,
		CreatedAt: author.Timestamps.CreatedAt,
	}}, nil
}

// AuthorUpdater edits author profiles.
type AuthorUpdater struct {
	authors AuthorLookup
	now     Clock
}

// NewAuthorUpdater creates an AuthorUpdater.
func NewAuthorUpdater(authors AuthorLookup, now Clock) *AuthorUpdater {
	return &AuthorUpdater{authors: authors, now: orSystem(now)}
}

// Update fails with AUTHOR_ALREADY_EXISTS when the new email belongs to a
// different author.
func (u *AuthorUpdater) Update(ctx context.Context, current domain.Author, p AuthorProfile) (domain.Author, []domain.Event, error) {
	if p.Email != current.Email {
		existing, err := u.authors.FindByEmail(ctx, p.Email)
		if err != nil {
			return domain.Author{}, nil, fmt.Errorf("find author by email: %w", err)
		}
		if existing != nil && existing.ID != current.ID {
			return domain.Author{}, nil, domain.NewError(domain.CodeAuthorAlreadyExists, "an author with email %s already exists", p.Email)
		}
	}

	if p.Name == current.Name && p.Email == current.Email && p.Bio == current.Bio {
		return current, nil, nil
	}

	next := current
	next.Name = p.Name
	next.Email = p.Email
	next.Bio = p.Bio
	next.Timestamps = current.Timestamps.Touch(u.now())

	return next, []domain.Event{domain.AuthorUpdated{
		AuthorID:  next.ID,
		Name:      next.Name,
		Email:     next.Email,
		UpdatedAt: next.Timestamps.UpdatedAt,
	}}, nil
}

// AuthorDeleter guards author removal.
type AuthorDeleter struct {
	articles AuthorArticleCounter
	now      Clock
}

// NewAuthorDeleter creates an AuthorDeleter.
func NewAuthorDeleter(articles AuthorArticleCounter, now Clock) *AuthorDeleter {
	return &AuthorDeleter{articles: articles, now: orSystem(now)}
}

// Delete fails with AUTHOR_HAS_ARTICLES while any article references the author.
func (d *AuthorDeleter) Delete(ctx context.Context, current domain.Author) ([]domain.Event, error) {
	count, err := d.articles.CountArticlesByAuthorID(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("count author articles: %w", err)
	}
	if count > 0 {
		return nil, domain.NewError(domain.CodeAuthorHasArticles, "author %s still has %d article(s)", current.ID, count)
	}

	return []domain.Event{domain.AuthorDeleted{
		AuthorID:  current.ID,
		Email:     current.Email,
		DeletedAt: d.now(),
	}}, nil
}
