package lifecycle

import (
	"context"
	"fmt"

	"blog-cms/internal/domain"
)

// NewArticle holds the validated inputs for article creation.
type NewArticle struct {
	ID       domain.ArticleID
	Title    domain.Title
	Content  domain.Content
	Slug     domain.Slug
	AuthorID domain.AuthorID
}

// ArticleCreator builds new draft articles.
type ArticleCreator struct {
	slugs ArticleSlugLookup
	now   Clock
}

// NewArticleCreator creates an ArticleCreator. A nil clock uses SystemClock.
func NewArticleCreator(slugs ArticleSlugLookup, now Clock) *ArticleCreator {
	return &ArticleCreator{slugs: slugs, now: orSystem(now)}
}

// Create fails with ARTICLE_ALREADY_EXISTS when the slug is taken, otherwise
// returns a draft article and its ArticleCreated event.
func (c *ArticleCreator) Create(ctx context.Context, in NewArticle) (domain.Article, []domain.Event, error) {
	taken, err := c.slugs.ExistsWithSlug(ctx, in.Slug)
	if err != nil {
		return domain.Article{}, nil, fmt.Errorf("check article slug: %w", err)
	}
	if taken {
		return domain.Article{}, nil, domain.NewError(domain.CodeArticleAlreadyExists, "an article with slug %q already exists", in.Slug)
	}

	now := c.now()
	article := domain.Article{
		ID:         in.ID,
		Title:      in.Title,
		Content:    in.Content,
		Slug:       in.Slug,
		Status:     domain.StatusDraft,
		AuthorID:   in.AuthorID,
		Timestamps: domain.CreatedNow(now),
	}

	return article, []domain.Event{domain.ArticleCreated{
		ArticleID: article.ID,
		Title:     article.Title,
		Slug:      article.Slug,
		AuthorID:  article.AuthorID,
		Status:    article.Status,
		CreatedAt: article.Timestamps.CreatedAt,
	}}, nil
}
