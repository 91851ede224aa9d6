package repository

import (
	"context"
	"time"

	"blog-cms/internal/domain"
)

// ArticleRepository defines methods for article data access.
// Finders return nil, nil when nothing matches.
type ArticleRepository interface {
	FindByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error)
	Add(ctx context.Context, article domain.Article) error
	Save(ctx context.Context, article domain.Article) error
	Remove(ctx context.Context, id domain.ArticleID) error
	ExistsWithSlug(ctx context.Context, slug domain.Slug) (bool, error)
	FindAllPaginated(ctx context.Context, page, limit int, filter domain.ArticleFilter) (domain.Page[domain.Article], error)
}

// AuthorRepository defines methods for author data access.
type AuthorRepository interface {
	FindByID(ctx context.Context, id domain.AuthorID) (*domain.Author, error)
	FindByEmail(ctx context.Context, email domain.Email) (*domain.Author, error)
	Add(ctx context.Context, author domain.Author) error
	Update(ctx context.Context, author domain.Author) error
	Remove(ctx context.Context, id domain.AuthorID) error
	CountArticlesByAuthorID(ctx context.Context, id domain.AuthorID) (int, error)
	FindAllPaginated(ctx context.Context, page, limit int) (domain.Page[domain.Author], error)
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error)
	ExistsWithSlug(ctx context.Context, slug domain.Slug) (bool, error)
	Add(ctx context.Context, category domain.Category) error
	Update(ctx context.Context, category domain.Category) error
	Remove(ctx context.Context, id domain.CategoryID) error
	CountChildren(ctx context.Context, id domain.CategoryID) (int, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
}

// OutboxMessage is a serialized domain event waiting for delivery.
type OutboxMessage struct {
	ID          int64
	EventName   string
	AggregateID string
	Payload     []byte
	OccurredAt  time.Time
	CreatedAt   time.Time
}

// OutboxRepository stores events for the relay worker.
type OutboxRepository interface {
	Append(ctx context.Context, messages ...OutboxMessage) error
	// FetchPending returns undelivered messages ordered by ID.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []int64, at time.Time) error
	CountPending(ctx context.Context) (int, error)
}
