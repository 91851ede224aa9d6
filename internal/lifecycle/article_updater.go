package lifecycle

import (
	"context"
	"fmt"

	"blog-cms/internal/domain"
	"blog-cms/internal/identity"
)

// ArticleUpdater edits title and content of unpublished articles. It backs
// both UpdateArticle and AutoSaveArticle.
type ArticleUpdater struct {
	slugs   ArticleSlugLookup
	slugger identity.SlugGenerator
	now     Clock
}

// NewArticleUpdater creates an ArticleUpdater.
func NewArticleUpdater(slugs ArticleSlugLookup, slugger identity.SlugGenerator, now Clock) *ArticleUpdater {
	return &ArticleUpdater{slugs: slugs, slugger: slugger, now: orSystem(now)}
}

// Update applies title and content. Published articles are always refused.
// When the title changes the slug is recomputed, and a different slug must be
// free. A call that changes nothing returns current and no events.
func (u *ArticleUpdater) Update(ctx context.Context, current domain.Article, title domain.Title, content domain.Content) (domain.Article, []domain.Event, error) {
	if current.IsPublished() {
		return domain.Article{}, nil, domain.NewError(domain.CodePublishedArticleRequiresApproval, "article %s is published, edits require a new approval", current.ID)
	}

	var changed []string
	next := current

	if title != current.Title {
		changed = append(changed, domain.FieldTitle)
		next.Title = title

		slug, err := u.slugger.Slugify(string(title))
		if err != nil {
			return domain.Article{}, nil, err
		}
		if slug != current.Slug {
			taken, err := u.slugs.ExistsWithSlug(ctx, slug)
			if err != nil {
				return domain.Article{}, nil, fmt.Errorf("check article slug: %w", err)
			}
			if taken {
				return domain.Article{}, nil, domain.NewError(domain.CodeSlugAlreadyExists, "slug %q is already used by another article", slug)
			}
			next.Slug = slug
		}
	}

	if content != current.Content {
		changed = append(changed, domain.FieldContent)
		next.Content = content
	}

	if len(changed) == 0 {
		return current, nil, nil
	}

	next.Timestamps = current.Timestamps.Touch(u.now())

	return next, []domain.Event{domain.ArticleUpdated{
		ArticleID:     next.ID,
		Title:         next.Title,
		Slug:          next.Slug,
		ChangedFields: changed,
		UpdatedAt:     next.Timestamps.UpdatedAt,
	}}, nil
}
