package gateway

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-cms/internal/validator"
)

// Path parameters are copied into the *_id fields by the transport, so the
// body cannot address a different resource.

// CreateArticleRequest represents the request for creating an article.
type CreateArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Slug     string `json:"slug"`
	AuthorID string `json:"author_id"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validator.Title()...),
		validation.Field(&r.Content, validator.Content()...),
		validation.Field(&r.Slug, validator.Slug()...),
		validation.Field(&r.AuthorID, validator.ID("author_id")...),
	)
}

// UpdateArticleRequest replaces title and content.
type UpdateArticleRequest struct {
	ArticleID string `json:"article_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, validator.ID("article_id")...),
		validation.Field(&r.Title, validator.Title()...),
		validation.Field(&r.Content, validator.Content()...),
	)
}

// AutoSaveArticleRequest carries a partial edit. Missing or blank fields
// keep the stored value.
type AutoSaveArticleRequest struct {
	ArticleID string  `json:"article_id"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
}

func (r AutoSaveArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, validator.ID("article_id")...),
		validation.Field(&r.Title, validator.OptionalTitle()...),
	)
}

// ArticleIDRequest addresses one article. It serves submit, get and delete.
type ArticleIDRequest struct {
	ArticleID string `json:"article_id"`
}

func (r ArticleIDRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, validator.ID("article_id")...),
	)
}

// ReviewArticleRequest approves or rejects a pending article.
type ReviewArticleRequest struct {
	ArticleID  string `json:"article_id"`
	ReviewerID string `json:"reviewer_id"`
	Decision   string `json:"decision"`
	Reason     string `json:"reason"`
}

func (r ReviewArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, validator.ID("article_id")...),
		validation.Field(&r.ReviewerID, validation.Required.Error("reviewer_id_required")),
		validation.Field(&r.Decision, validator.Decision()...),
		validation.Field(&r.Reason, validator.Reason(r.Decision)...),
	)
}

// PublishArticleRequest publishes an approved article, now or at
// PublishAt (RFC 3339).
type PublishArticleRequest struct {
	ArticleID string `json:"article_id"`
	PublishAt string `json:"publish_at"`
}

func (r PublishArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, validator.ID("article_id")...),
		validation.Field(&r.PublishAt, validator.Timestamp("publish_at")...),
	)
}

// ListArticlesRequest pages through articles.
type ListArticlesRequest struct {
	Page     int    `json:"page" form:"page"`
	Limit    int    `json:"limit" form:"limit"`
	Status   string `json:"status" form:"status"`
	AuthorID string `json:"author_id" form:"author_id"`
}

func (r ListArticlesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validator.Page()...),
		validation.Field(&r.Limit, validator.Limit()...),
		validation.Field(&r.Status, validator.Status()...),
		validation.Field(&r.AuthorID, validator.OptionalID("author_id")...),
	)
}

// CreateAuthorRequest registers an author.
type CreateAuthorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validator.AuthorName()...),
		validation.Field(&r.Email, validator.Email()...),
		validation.Field(&r.Bio, validator.Bio()...),
	)
}

// UpdateAuthorRequest replaces an author profile.
type UpdateAuthorRequest struct {
	AuthorID string `json:"author_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validator.ID("author_id")...),
		validation.Field(&r.Name, validator.AuthorName()...),
		validation.Field(&r.Email, validator.Email()...),
		validation.Field(&r.Bio, validator.Bio()...),
	)
}

// AuthorIDRequest addresses one author.
type AuthorIDRequest struct {
	AuthorID string `json:"author_id"`
}

func (r AuthorIDRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validator.ID("author_id")...),
	)
}

// ListAuthorsRequest pages through authors.
type ListAuthorsRequest struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

func (r ListAuthorsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validator.Page()...),
		validation.Field(&r.Limit, validator.Limit()...),
	)
}

// CategoryRequest creates or replaces a category. CategoryID is empty on
// create.
type CategoryRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id"`
	Order       int    `json:"order"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryID, validator.OptionalID("category_id")...),
		validation.Field(&r.Name, validator.CategoryName()...),
		validation.Field(&r.Slug, validator.Slug()...),
		validation.Field(&r.Description, validator.Description()...),
		validation.Field(&r.ParentID, validator.OptionalID("parent_id")...),
		validation.Field(&r.Order, validator.Order()...),
	)
}

// CategoryIDRequest addresses one category.
type CategoryIDRequest struct {
	CategoryID string `json:"category_id"`
}

func (r CategoryIDRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryID, validator.ID("category_id")...),
	)
}

// CategoryTreeRequest loads the category forest down to MaxDepth.
type CategoryTreeRequest struct {
	MaxDepth int `json:"max_depth" form:"max_depth"`
}

func (r CategoryTreeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MaxDepth, validator.TreeDepth()...),
	)
}
