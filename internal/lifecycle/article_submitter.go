package lifecycle

import "blog-cms/internal/domain"

// ArticleSubmitter moves drafts and rejected articles into review.
type ArticleSubmitter struct {
	now Clock
}

// NewArticleSubmitter creates an ArticleSubmitter.
func NewArticleSubmitter(now Clock) *ArticleSubmitter {
	return &ArticleSubmitter{now: orSystem(now)}
}

// Submit transitions draft|rejected to pending_review.
func (s *ArticleSubmitter) Submit(current domain.Article) (domain.Article, []domain.Event, error) {
	if err := checkSubmittable(current); err != nil {
		return domain.Article{}, nil, err
	}

	now := s.now()
	next := current
	next.Status = domain.StatusPendingReview
	next.Timestamps = current.Timestamps.Touch(now)

	return next, []domain.Event{domain.ArticleSubmittedForReview{
		ArticleID:   next.ID,
		AuthorID:    next.AuthorID,
		FromStatus:  current.Status,
		SubmittedAt: next.Timestamps.UpdatedAt,
	}}, nil
}

func checkSubmittable(a domain.Article) error {
	switch a.Status {
	case domain.StatusDraft, domain.StatusRejected:
		return nil
	case domain.StatusPendingReview:
		return domain.NewError(domain.CodeAlreadyPendingReview, "article %s is already pending review", a.ID)
	case domain.StatusApproved:
		return domain.NewError(domain.CodeAlreadyApproved, "article %s is already approved", a.ID)
	case domain.StatusPublished:
		return domain.NewError(domain.CodeCannotSubmitPublished, "article %s is published and cannot be submitted for review", a.ID)
	default:
		return domain.NewError(domain.CodeCannotSubmitArchived, "article %s is archived and cannot be submitted for review", a.ID)
	}
}
