package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/domain"
)

const categoryColumns = `id, name, slug, description, parent_id, sort_order, created_at, updated_at`

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// FindByID retrieves a category by ID.
func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	category, err := scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, string(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ExistsWithSlug reports whether any category uses slug.
func (r *PostgresCategoryRepository) ExistsWithSlug(ctx context.Context, slug domain.Slug) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`, string(slug)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category slug: %w", err)
	}
	return exists, nil
}

// Add inserts a new category.
func (r *PostgresCategoryRepository) Add(ctx context.Context, category domain.Category) error {
	rec := category.Record()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (id, name, slug, description, parent_id, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rec.ID, rec.Name, rec.Slug, rec.Description, rec.ParentID, rec.Order, rec.CreatedAt, rec.UpdatedAt)
	return translateCategoryErr(err, category, "insert category")
}

// Update overwrites a category.
func (r *PostgresCategoryRepository) Update(ctx context.Context, category domain.Category) error {
	rec := category.Record()
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, parent_id = $5, sort_order = $6, updated_at = $7
		WHERE id = $1
	`, rec.ID, rec.Name, rec.Slug, rec.Description, rec.ParentID, rec.Order, rec.UpdatedAt)
	if err != nil {
		return translateCategoryErr(err, category, "update category")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound(category.ID)
	}
	return nil
}

// Remove deletes a category.
func (r *PostgresCategoryRepository) Remove(ctx context.Context, id domain.CategoryID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, string(id))
	if violation(err, pgForeignKeyViolation, "parent_id") {
		return domain.NewError(domain.CodeCategoryHasChildren, "category %s has child categories", id)
	}
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// CountChildren counts the direct children of a category.
func (r *PostgresCategoryRepository) CountChildren(ctx context.Context, id domain.CategoryID) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE parent_id = $1`, string(id)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count child categories: %w", err)
	}
	return count, nil
}

// FindAll returns every category.
func (r *PostgresCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func translateCategoryErr(err error, category domain.Category, op string) error {
	switch {
	case err == nil:
		return nil
	case violation(err, pgUniqueViolation, "slug"):
		return domain.NewError(domain.CodeCategoryAlreadyExists, "a category with slug %q already exists", category.Slug)
	case violation(err, pgForeignKeyViolation, "parent_id") && category.ParentID != nil:
		return domain.NewError(domain.CodeParentCategoryNotFound, "parent category %s not found", *category.ParentID)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var rec domain.CategoryRecord
	err := row.Scan(&rec.ID, &rec.Name, &rec.Slug, &rec.Description, &rec.ParentID, &rec.Order, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, err
		}
		return domain.Category{}, fmt.Errorf("scan category: %w", err)
	}
	return domain.RehydrateCategory(rec)
}
