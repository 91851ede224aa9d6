package domain

import "time"

// ArticleStatus is the editorial state of an article.
type ArticleStatus string

const (
	StatusDraft         ArticleStatus = "draft"
	StatusPendingReview ArticleStatus = "pending_review"
	StatusApproved      ArticleStatus = "approved"
	StatusRejected      ArticleStatus = "rejected"
	StatusPublished     ArticleStatus = "published"
	StatusArchived      ArticleStatus = "archived"
)

// ValidStatuses contains all article statuses.
var ValidStatuses = []ArticleStatus{
	StatusDraft,
	StatusPendingReview,
	StatusApproved,
	StatusRejected,
	StatusPublished,
	StatusArchived,
}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// ParseArticleStatus converts the wire form into an ArticleStatus.
func ParseArticleStatus(raw string) (ArticleStatus, error) {
	if !IsValidStatus(raw) {
		return "", NewError(CodeInvalidStatus, "unknown article status %q", raw)
	}
	return ArticleStatus(raw), nil
}

// Review is the last review decision recorded on an article.
type Review struct {
	ReviewerID string
	Outcome    ReviewOutcome
	Reason     string
	ReviewedAt time.Time
}

// Article is an immutable snapshot of the article aggregate. Lifecycle
// operations return modified copies; nothing mutates a snapshot in place.
type Article struct {
	ID          ArticleID
	Title       Title
	Content     Content
	Slug        Slug
	Status      ArticleStatus
	AuthorID    AuthorID
	Timestamps  Timestamps
	PublishedAt *time.Time
	LastReview  *Review
}

// IsPublished reports whether the article is live.
func (a Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// ArticleRecord is the primitive form of an article at persistence boundaries.
type ArticleRecord struct {
	ID           string
	Title        string
	Content      string
	Slug         string
	Status       string
	AuthorID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	PublishedAt  *time.Time
	ReviewerID   *string
	ReviewResult *string
	ReviewReason *string
	ReviewedAt   *time.Time
}

// RehydrateArticle rebuilds a snapshot from stored primitives. Any invalid
// field yields a DATA_CORRUPTION error.
func RehydrateArticle(r ArticleRecord) (Article, error) {
	corrupt := func(err error) (Article, error) {
		return Article{}, ErrCorrupted("article", r.ID, err)
	}

	id, err := NewArticleID(r.ID)
	if err != nil {
		return corrupt(err)
	}
	title, err := NewTitle(r.Title)
	if err != nil {
		return corrupt(err)
	}
	content, err := NewContent(r.Content)
	if err != nil {
		return corrupt(err)
	}
	slug, err := NewSlug(r.Slug)
	if err != nil {
		return corrupt(err)
	}
	status, err := ParseArticleStatus(r.Status)
	if err != nil {
		return corrupt(err)
	}
	authorID, err := NewAuthorID(r.AuthorID)
	if err != nil {
		return corrupt(err)
	}
	ts, err := NewTimestamps(r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return corrupt(err)
	}
	if (status == StatusPublished) != (r.PublishedAt != nil) {
		return corrupt(NewError(CodeInvalidTimestamps, "published_at must be set iff status is published"))
	}

	a := Article{
		ID:          id,
		Title:       title,
		Content:     content,
		Slug:        slug,
		Status:      status,
		AuthorID:    authorID,
		Timestamps:  ts,
		PublishedAt: r.PublishedAt,
	}

	if r.ReviewResult != nil && r.ReviewedAt != nil {
		outcome, err := ParseReviewOutcome(*r.ReviewResult)
		if err != nil {
			return corrupt(err)
		}
		review := &Review{Outcome: outcome, ReviewedAt: *r.ReviewedAt}
		if r.ReviewerID != nil {
			review.ReviewerID = *r.ReviewerID
		}
		if r.ReviewReason != nil {
			review.Reason = *r.ReviewReason
		}
		a.LastReview = review
	}

	return a, nil
}

// Record converts the snapshot into its primitive form.
func (a Article) Record() ArticleRecord {
	r := ArticleRecord{
		ID:          string(a.ID),
		Title:       string(a.Title),
		Content:     string(a.Content),
		Slug:        string(a.Slug),
		Status:      string(a.Status),
		AuthorID:    string(a.AuthorID),
		CreatedAt:   a.Timestamps.CreatedAt,
		UpdatedAt:   a.Timestamps.UpdatedAt,
		PublishedAt: a.PublishedAt,
	}
	if a.LastReview != nil {
		reviewer := a.LastReview.ReviewerID
		result := string(a.LastReview.Outcome)
		reason := a.LastReview.Reason
		reviewedAt := a.LastReview.ReviewedAt
		r.ReviewerID = &reviewer
		r.ReviewResult = &result
		r.ReviewReason = &reason
		r.ReviewedAt = &reviewedAt
	}
	return r
}

// ArticleFilter narrows paginated article listings.
type ArticleFilter struct {
	Status   *ArticleStatus
	AuthorID *AuthorID
}
