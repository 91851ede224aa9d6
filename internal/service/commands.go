package service

import "time"

// Commands and queries carry primitives only. Handlers convert them into
// domain value objects, so every input error surfaces as a domain error.

// CreateArticleCommand creates a draft. An empty ArticleID is generated and
// an empty Slug is derived from the title.
type CreateArticleCommand struct {
	ArticleID string
	Title     string
	Content   string
	Slug      string
	AuthorID  string
}

// UpdateArticleCommand replaces title and content.
type UpdateArticleCommand struct {
	ArticleID string
	Title     string
	Content   string
}

// AutoSaveArticleCommand saves whichever fields are present; nil or blank
// fields keep their current value.
type AutoSaveArticleCommand struct {
	ArticleID string
	Title     *string
	Content   *string
}

// SubmitArticleCommand sends an article to review.
type SubmitArticleCommand struct {
	ArticleID string
}

// ReviewArticleCommand approves or rejects a pending article.
type ReviewArticleCommand struct {
	ArticleID  string
	ReviewerID string
	Decision   string
	Reason     string
}

// PublishArticleCommand publishes an approved article. A nil PublishAt
// publishes now.
type PublishArticleCommand struct {
	ArticleID string
	PublishAt *time.Time
}

// DeleteArticleCommand removes an article.
type DeleteArticleCommand struct {
	ArticleID string
}

// GetArticleQuery loads one article.
type GetArticleQuery struct {
	ArticleID string
}

// ListArticlesQuery pages through articles. Empty Status and AuthorID do
// not filter.
type ListArticlesQuery struct {
	Page     int
	Limit    int
	Status   string
	AuthorID string
}

// CreateAuthorCommand registers an author. An empty AuthorID is generated.
type CreateAuthorCommand struct {
	AuthorID string
	Name     string
	Email    string
	Bio      string
}

// UpdateAuthorCommand replaces an author profile.
type UpdateAuthorCommand struct {
	AuthorID string
	Name     string
	Email    string
	Bio      string
}

// DeleteAuthorCommand removes an author without articles.
type DeleteAuthorCommand struct {
	AuthorID string
}

// GetAuthorQuery loads one author.
type GetAuthorQuery struct {
	AuthorID string
}

// ListAuthorsQuery pages through authors.
type ListAuthorsQuery struct {
	Page  int
	Limit int
}

// CreateCategoryCommand adds a category. Empty CategoryID is generated,
// empty Slug is derived from Name and empty ParentID creates a root.
type CreateCategoryCommand struct {
	CategoryID  string
	Name        string
	Slug        string
	Description string
	ParentID    string
	Order       int
}

// UpdateCategoryCommand replaces a category. Empty Slug keeps the current
// slug unless the name changed; empty ParentID moves it to the root.
type UpdateCategoryCommand struct {
	CategoryID  string
	Name        string
	Slug        string
	Description string
	ParentID    string
	Order       int
}

// DeleteCategoryCommand removes a leaf category.
type DeleteCategoryCommand struct {
	CategoryID string
}

// GetCategoryQuery loads one category.
type GetCategoryQuery struct {
	CategoryID string
}

// ListCategoryTreeQuery loads the category forest. MaxDepth 0 selects
// domain.DefaultCategoryTreeDepth.
type ListCategoryTreeQuery struct {
	MaxDepth int
}
