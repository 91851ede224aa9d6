package domain

import "time"

// Event names.
const (
	EventArticleCreated            = "article.created"
	EventArticleSubmittedForReview = "article.submitted_for_review"
	EventArticleApproved           = "article.approved"
	EventArticleRejected           = "article.rejected"
	EventArticlePublished          = "article.published"
	EventArticleUpdated            = "article.updated"
	EventArticleDeleted            = "article.deleted"
	EventAuthorCreated             = "author.created"
	EventAuthorUpdated             = "author.updated"
	EventAuthorDeleted             = "author.deleted"
	EventCategoryCreated           = "category.created"
	EventCategoryUpdated           = "category.updated"
	EventCategoryDeleted           = "category.deleted"
)

// Event is an immutable fact about a completed transition.
type Event interface {
	EventName() string
	AggregateID() string
	OccurredOn() time.Time
}

// ArticleCreated is emitted when a draft article is created.
type ArticleCreated struct {
	ArticleID ArticleID     `json:"article_id"`
	Title     Title         `json:"title"`
	Slug      Slug          `json:"slug"`
	AuthorID  AuthorID      `json:"author_id"`
	Status    ArticleStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func (e ArticleCreated) EventName() string     { return EventArticleCreated }
func (e ArticleCreated) AggregateID() string   { return string(e.ArticleID) }
func (e ArticleCreated) OccurredOn() time.Time { return e.CreatedAt }

// ArticleSubmittedForReview is emitted when an article enters review.
type ArticleSubmittedForReview struct {
	ArticleID   ArticleID     `json:"article_id"`
	AuthorID    AuthorID      `json:"author_id"`
	FromStatus  ArticleStatus `json:"from_status"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

func (e ArticleSubmittedForReview) EventName() string     { return EventArticleSubmittedForReview }
func (e ArticleSubmittedForReview) AggregateID() string   { return string(e.ArticleID) }
func (e ArticleSubmittedForReview) OccurredOn() time.Time { return e.SubmittedAt }

// ArticleApproved is emitted on a positive review. Reason may be empty.
type ArticleApproved struct {
	ArticleID  ArticleID `json:"article_id"`
	ReviewerID string    `json:"reviewer_id"`
	Reason     string    `json:"reason,omitempty"`
	ApprovedAt time.Time `json:"approved_at"`
}

func (e ArticleApproved) EventName() string     { return EventArticleApproved }
func (e ArticleApproved) AggregateID() string   { return string(e.ArticleID) }
func (e ArticleApproved) OccurredOn() time.Time { return e.ApprovedAt }

// ArticleRejected is emitted on a negative review.
type ArticleRejected struct {
	ArticleID  ArticleID `json:"article_id"`
	ReviewerID string    `json:"reviewer_id"`
	Reason     string    `json:"reason"`
	RejectedAt time.Time `json:"rejected_at"`
}

func (e ArticleRejected) EventName() string     { return EventArticleRejected }
func (e ArticleRejected) AggregateID() string   { return string(e.ArticleID) }
func (e ArticleRejected) OccurredOn() time.Time { return e.RejectedAt }

// ArticlePublished is emitted when an approved article goes live.
type ArticlePublished struct {
	ArticleID   ArticleID `json:"article_id"`
	Slug        Slug      `json:"slug"`
	AuthorID    AuthorID  `json:"author_id"`
	PublishedAt time.Time `json:"published_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e ArticlePublished) EventName() string     { return EventArticlePublished }
func (e ArticlePublished) AggregateID() string   { return string(e.ArticleID) }
func (e ArticlePublished) OccurredOn() time.Time { return e.OccurredAt }

// Changed field names reported by ArticleUpdated.
const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// ArticleUpdated is emitted when title or content change.
type ArticleUpdated struct {
	ArticleID     ArticleID `json:"article_id"`
	Title         Title     `json:"title"`
	Slug          Slug      `json:"slug"`
	ChangedFields []string  `json:"changed_fields"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e ArticleUpdated) EventName() string     { return EventArticleUpdated }
func (e ArticleUpdated) AggregateID() string   { return string(e.ArticleID) }
func (e ArticleUpdated) OccurredOn() time.Time { return e.UpdatedAt }

// ArticleDeleted is the tombstone for a removed article.
type ArticleDeleted struct {
	ArticleID ArticleID `json:"article_id"`
	Slug      Slug      `json:"slug"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e ArticleDeleted) EventName() string     { return EventArticleDeleted }
func (e ArticleDeleted) AggregateID() string   { return string(e.ArticleID) }
func (e ArticleDeleted) OccurredOn() time.Time { return e.DeletedAt }

// AuthorCreated is emitted when an author registers.
type AuthorCreated struct {
	AuthorID  AuthorID   `json:"author_id"`
	Name      AuthorName `json:"name"`
	Email     Email      `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
}

func (e AuthorCreated) EventName() string     { return EventAuthorCreated }
func (e AuthorCreated) AggregateID() string   { return string(e.AuthorID) }
func (e AuthorCreated) OccurredOn() time.Time { return e.CreatedAt }

// AuthorUpdated is emitted when an author profile changes.
type AuthorUpdated struct {
	AuthorID  AuthorID   `json:"author_id"`
	Name      AuthorName `json:"name"`
	Email     Email      `json:"email"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (e AuthorUpdated) EventName() string     { return EventAuthorUpdated }
func (e AuthorUpdated) AggregateID() string   { return string(e.AuthorID) }
func (e AuthorUpdated) OccurredOn() time.Time { return e.UpdatedAt }

// AuthorDeleted is the tombstone for a removed author.
type AuthorDeleted struct {
	AuthorID  AuthorID  `json:"author_id"`
	Email     Email     `json:"email"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e AuthorDeleted) EventName() string     { return EventAuthorDeleted }
func (e AuthorDeleted) AggregateID() string   { return string(e.AuthorID) }
func (e AuthorDeleted) OccurredOn() time.Time { return e.DeletedAt }

// CategoryCreated is emitted when a category is added.
type CategoryCreated struct {
	CategoryID CategoryID   `json:"category_id"`
	Name       CategoryName `json:"name"`
	Slug       Slug         `json:"slug"`
	ParentID   *CategoryID  `json:"parent_id,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (e CategoryCreated) EventName() string     { return EventCategoryCreated }
func (e CategoryCreated) AggregateID() string   { return string(e.CategoryID) }
func (e CategoryCreated) OccurredOn() time.Time { return e.CreatedAt }

// CategoryUpdated is emitted when a category changes.
type CategoryUpdated struct {
	CategoryID CategoryID   `json:"category_id"`
	Name       CategoryName `json:"name"`
	Slug       Slug         `json:"slug"`
	ParentID   *CategoryID  `json:"parent_id,omitempty"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (e CategoryUpdated) EventName() string     { return EventCategoryUpdated }
func (e CategoryUpdated) AggregateID() string   { return string(e.CategoryID) }
func (e CategoryUpdated) OccurredOn() time.Time { return e.UpdatedAt }

// CategoryDeleted is the tombstone for a removed category.
type CategoryDeleted struct {
	CategoryID CategoryID `json:"category_id"`
	Slug       Slug       `json:"slug"`
	DeletedAt  time.Time  `json:"deleted_at"`
}

func (e CategoryDeleted) EventName() string     { return EventCategoryDeleted }
func (e CategoryDeleted) AggregateID() string   { return string(e.CategoryID) }
func (e CategoryDeleted) OccurredOn() time.Time { return e.DeletedAt }
