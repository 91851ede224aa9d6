package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/domain"
)

const articleColumns = `id, title, content, slug, status, author_id, created_at, updated_at,
	published_at, reviewer_id, review_result, review_reason, reviewed_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// FindByID retrieves an article by ID.
func (r *PostgresArticleRepository) FindByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, string(id))

	article, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Add inserts a new article. An existing ID or slug is ARTICLE_ALREADY_EXISTS.
func (r *PostgresArticleRepository) Add(ctx context.Context, article domain.Article) error {
	rec := article.Record()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, content, slug, status, author_id, created_at, updated_at,
			published_at, reviewer_id, review_result, review_reason, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, rec.ID, rec.Title, rec.Content, rec.Slug, rec.Status, rec.AuthorID, rec.CreatedAt, rec.UpdatedAt,
		rec.PublishedAt, rec.ReviewerID, rec.ReviewResult, rec.ReviewReason, rec.ReviewedAt)

	switch {
	case err == nil:
		return nil
	case violation(err, pgUniqueViolation, "pkey"):
		return domain.NewError(domain.CodeArticleAlreadyExists, "article %s already exists", rec.ID)
	case violation(err, pgUniqueViolation, "slug"):
		return domain.NewError(domain.CodeArticleAlreadyExists, "an article with slug %q already exists", rec.Slug)
	case violation(err, pgForeignKeyViolation, "author_id"):
		return domain.ErrAuthorNotFound(article.AuthorID)
	default:
		return fmt.Errorf("insert article: %w", err)
	}
}

// Save inserts the article or overwrites the stored row with the same ID.
func (r *PostgresArticleRepository) Save(ctx context.Context, article domain.Article) error {
	rec := article.Record()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, content, slug, status, author_id, created_at, updated_at,
			published_at, reviewer_id, review_result, review_reason, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			slug = EXCLUDED.slug,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at,
			published_at = EXCLUDED.published_at,
			reviewer_id = EXCLUDED.reviewer_id,
			review_result = EXCLUDED.review_result,
			review_reason = EXCLUDED.review_reason,
			reviewed_at = EXCLUDED.reviewed_at
	`, rec.ID, rec.Title, rec.Content, rec.Slug, rec.Status, rec.AuthorID, rec.CreatedAt, rec.UpdatedAt,
		rec.PublishedAt, rec.ReviewerID, rec.ReviewResult, rec.ReviewReason, rec.ReviewedAt)

	switch {
	case err == nil:
		return nil
	case violation(err, pgUniqueViolation, "slug"):
		return domain.NewError(domain.CodeSlugAlreadyExists, "slug %q is already used by another article", rec.Slug)
	case violation(err, pgForeignKeyViolation, "author_id"):
		return domain.ErrAuthorNotFound(article.AuthorID)
	default:
		return fmt.Errorf("save article: %w", err)
	}
}

// Remove deletes an article. Removing a missing article is not an error.
func (r *PostgresArticleRepository) Remove(ctx context.Context, id domain.ArticleID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, string(id)); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// ExistsWithSlug reports whether any article uses slug.
func (r *PostgresArticleRepository) ExistsWithSlug(ctx context.Context, slug domain.Slug) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1)`, string(slug)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check article slug: %w", err)
	}
	return exists, nil
}

// FindAllPaginated lists articles newest first.
func (r *PostgresArticleRepository) FindAllPaginated(ctx context.Context, page, limit int, filter domain.ArticleFilter) (domain.Page[domain.Article], error) {
	result := domain.Page[domain.Article]{Items: []domain.Article{}, Page: page, Limit: limit}

	where, args := articleFilterClause(filter)

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`+where, args...).Scan(&result.Total); err != nil {
		return result, fmt.Errorf("count articles: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM articles%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		articleColumns, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, limit, domain.Offset(page, limit))...)
	if err != nil {
		return result, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, article)
	}

	return result, rows.Err()
}

func articleFilterClause(filter domain.ArticleFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.AuthorID != nil {
		args = append(args, string(*filter.AuthorID))
		conds = append(conds, fmt.Sprintf("author_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var rec domain.ArticleRecord
	err := row.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.Slug, &rec.Status, &rec.AuthorID,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.PublishedAt,
		&rec.ReviewerID, &rec.ReviewResult, &rec.ReviewReason, &rec.ReviewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, err
		}
		return domain.Article{}, fmt.Errorf("scan article: %w", err)
	}
	return domain.RehydrateArticle(rec)
}
