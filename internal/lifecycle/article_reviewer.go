package lifecycle

import (
	"strings"

	"blog-cms/internal/domain"
)

// ArticleReviewer applies approve/reject decisions to articles in review.
type ArticleReviewer struct {
	now Clock
}

// NewArticleReviewer creates an ArticleReviewer.
func NewArticleReviewer(now Clock) *ArticleReviewer {
	return &ArticleReviewer{now: orSystem(now)}
}

// Review transitions pending_review to approved or rejected.
func (r *ArticleReviewer) Review(current domain.Article, reviewerID string, decision domain.ReviewDecision) (domain.Article, []domain.Event, error) {
	if err := checkReviewable(current); err != nil {
		return domain.Article{}, nil, err
	}
	if _, err := domain.ParseReviewOutcome(string(decision.Outcome())); err != nil {
		return domain.Article{}, nil, err
	}
	reviewerID = strings.TrimSpace(reviewerID)
	if reviewerID == "" {
		return domain.Article{}, nil, domain.NewError(domain.CodeInvalidDecision, "reviewer id is required")
	}

	now := r.now()
	next := current
	next.Timestamps = current.Timestamps.Touch(now)
	next.LastReview = &domain.Review{
		ReviewerID: reviewerID,
		Outcome:    decision.Outcome(),
		Reason:     decision.Reason(),
		ReviewedAt: next.Timestamps.UpdatedAt,
	}

	if decision.IsApproval() {
		next.Status = domain.StatusApproved
		return next, []domain.Event{domain.ArticleApproved{
			ArticleID:  next.ID,
			ReviewerID: reviewerID,
			Reason:     decision.Reason(),
			ApprovedAt: next.Timestamps.UpdatedAt,
		}}, nil
	}

	next.Status = domain.StatusRejected
	return next, []domain.Event{domain.ArticleRejected{
		ArticleID:  next.ID,
		ReviewerID: reviewerID,
		Reason:     decision.Reason(),
		RejectedAt: next.Timestamps.UpdatedAt,
	}}, nil
}

func checkReviewable(a domain.Article) error {
	switch a.Status {
	case domain.StatusPendingReview:
		return nil
	case domain.StatusApproved:
		return domain.NewError(domain.CodeAlreadyApproved, "article %s is already approved", a.ID)
	case domain.StatusPublished:
		return domain.NewError(domain.CodeCannotReviewPublished, "article %s is published and cannot be reviewed", a.ID)
	case domain.StatusArchived:
		return domain.NewError(domain.CodeCannotReviewArchived, "article %s is archived and cannot be reviewed", a.ID)
	default:
		return domain.NewError(domain.CodeInvalidReviewStatus, "article %s is %s, only articles pending review can be reviewed", a.ID, a.Status)
	}
}
