package lifecycle

import (
	"time"

	"blog-cms/internal/domain"
)

// ArticlePublisher makes approved articles live.
type ArticlePublisher struct {
	now Clock
}

// NewArticlePublisher creates an ArticlePublisher.
func NewArticlePublisher(now Clock) *ArticlePublisher {
	return &ArticlePublisher{now: orSystem(now)}
}

// Publish transitions approved to published. publishAt, when non-nil, is
// used as publishedAt (it may be in the future); otherwise now is used.
func (p *ArticlePublisher) Publish(current domain.Article, publishAt *time.Time) (domain.Article, []domain.Event, error) {
	switch current.Status {
	case domain.StatusApproved:
	case domain.StatusPublished:
		return domain.Article{}, nil, domain.NewError(domain.CodeArticleAlreadyPublished, "article %s is already published", current.ID)
	default:
		return domain.Article{}, nil, domain.NewError(domain.CodeArticleNotApproved, "article %s is %s, only approved articles can be published", current.ID, current.Status)
	}

	now := p.now()
	publishedAt := now
	if publishAt != nil {
		if publishAt.Before(current.Timestamps.CreatedAt) {
			return domain.Article{}, nil, domain.NewError(domain.CodeInvalidPublishTime, "publish time %s is before the article was created", publishAt.Format(time.RFC3339))
		}
		publishedAt = publishAt.UTC()
	}

	next := current
	next.Status = domain.StatusPublished
	next.PublishedAt = &publishedAt
	next.Timestamps = current.Timestamps.Touch(now)

	return next, []domain.Event{domain.ArticlePublished{
		ArticleID:   next.ID,
		Slug:        next.Slug,
		AuthorID:    next.AuthorID,
		PublishedAt: publishedAt,
		OccurredAt:  next.Timestamps.UpdatedAt,
	}}, nil
}
