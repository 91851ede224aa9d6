package service

import (
	"context"

	"blog-cms/internal/domain"
)

// ArticleServiceInterface defines the article use cases.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	CreateArticle(ctx context.Context, cmd CreateArticleCommand) (domain.Article, error)
	UpdateArticle(ctx context.Context, cmd UpdateArticleCommand) (domain.Article, error)
	AutoSaveArticle(ctx context.Context, cmd AutoSaveArticleCommand) (domain.Article, error)
	SubmitArticleForReview(ctx context.Context, cmd SubmitArticleCommand) (domain.Article, error)
	ReviewArticle(ctx context.Context, cmd ReviewArticleCommand) (domain.Article, error)
	PublishArticle(ctx context.Context, cmd PublishArticleCommand) (domain.Article, error)
	DeleteArticle(ctx context.Context, cmd DeleteArticleCommand) error
	GetArticle(ctx context.Context, q GetArticleQuery) (domain.Article, error)
	ListArticles(ctx context.Context, q ListArticlesQuery) (domain.Page[domain.Article], error)
}

// AuthorServiceInterface defines the author use cases.
// Used for dependency injection and mocking in tests.
type AuthorServiceInterface interface {
	CreateAuthor(ctx context.Context, cmd CreateAuthorCommand) (domain.Author, error)
	UpdateAuthor(ctx context.Context, cmd UpdateAuthorCommand) (domain.Author, error)
	DeleteAuthor(ctx context.Context, cmd DeleteAuthorCommand) error
	GetAuthor(ctx context.Context, q GetAuthorQuery) (domain.Author, error)
	ListAuthors(ctx context.Context, q ListAuthorsQuery) (domain.Page[domain.Author], error)
}

// CategoryServiceInterface defines the category use cases.
// Used for dependency injection and mocking in tests.
type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, cmd CreateCategoryCommand) (domain.Category, error)
	UpdateCategory(ctx context.Context, cmd UpdateCategoryCommand) (domain.Category, error)
	DeleteCategory(ctx context.Context, cmd DeleteCategoryCommand) error
	GetCategory(ctx context.Context, q GetCategoryQuery) (domain.Category, error)
	ListCategoryTree(ctx context.Context, q ListCategoryTreeQuery) ([]domain.CategoryNode, error)
}

var (
	_ ArticleServiceInterface  = (*ArticleService)(nil)
	_ AuthorServiceInterface   = (*AuthorService)(nil)
	_ CategoryServiceInterface = (*CategoryService)(nil)
)
