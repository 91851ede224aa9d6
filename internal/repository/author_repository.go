package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-cms/internal/domain"
)

const authorColumns = `id, name, email, bio, created_at, updated_at`

// PostgresAuthorRepository implements AuthorRepository using PostgreSQL.
type PostgresAuthorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuthorRepository creates a new PostgresAuthorRepository.
func NewPostgresAuthorRepository(pool *pgxpool.Pool) *PostgresAuthorRepository {
	return &PostgresAuthorRepository{pool: pool}
}

// FindByID retrieves an author by ID.
func (r *PostgresAuthorRepository) FindByID(ctx context.Context, id domain.AuthorID) (*domain.Author, error) {
	return r.findOne(ctx, `SELECT `+authorColumns+` FROM authors WHERE id = $1`, string(id))
}

// FindByEmail retrieves an author by email.
func (r *PostgresAuthorRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.Author, error) {
	return r.findOne(ctx, `SELECT `+authorColumns+` FROM authors WHERE email = $1`, string(email))
}

func (r *PostgresAuthorRepository) findOne(ctx context.Context, query string, arg string) (*domain.Author, error) {
	author, err := scanAuthor(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Add inserts a new author.
func (r *PostgresAuthorRepository) Add(ctx context.Context, author domain.Author) error {
	rec := author.Record()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO authors (id, name, email, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, rec.Name, rec.Email, rec.Bio, rec.CreatedAt, rec.UpdatedAt)
	return translateAuthorErr(err, rec.Email, "insert author")
}

// Update overwrites the editable fields of an author.
func (r *PostgresAuthorRepository) Update(ctx context.Context, author domain.Author) error {
	rec := author.Record()
	tag, err := r.pool.Exec(ctx, `
		UPDATE authors SET name = $2, email = $3, bio = $4, updated_at = $5
		WHERE id = $1
	`, rec.ID, rec.Name, rec.Email, rec.Bio, rec.UpdatedAt)
	if err != nil {
		return translateAuthorErr(err, rec.Email, "update author")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAuthorNotFound(author.ID)
	}
	return nil
}

// Remove deletes an author.
func (r *PostgresAuthorRepository) Remove(ctx context.Context, id domain.AuthorID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, string(id))
	if violation(err, pgForeignKeyViolation, "author_id") {
		return domain.NewError(domain.CodeAuthorHasArticles, "author %s still has articles", id)
	}
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

// CountArticlesByAuthorID counts the articles referencing an author.
func (r *PostgresAuthorRepository) CountArticlesByAuthorID(ctx context.Context, id domain.AuthorID) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles WHERE author_id = $1`, string(id)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count author articles: %w", err)
	}
	return count, nil
}

// FindAllPaginated lists authors ordered by name.
func (r *PostgresAuthorRepository) FindAllPaginated(ctx context.Context, page, limit int) (domain.Page[domain.Author], error) {
	result := domain.Page[domain.Author]{Items: []domain.Author{}, Page: page, Limit: limit}

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&result.Total); err != nil {
		return result, fmt.Errorf("count authors: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT `+authorColumns+` FROM authors ORDER BY name, id LIMIT $1 OFFSET $2`,
		limit, domain.Offset(page, limit))
	if err != nil {
		return result, fmt.Errorf("query authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, author)
	}

	return result, rows.Err()
}

func translateAuthorErr(err error, email, op string) error {
	switch {
	case err == nil:
		return nil
	case violation(err, pgUniqueViolation, "email"):
		return domain.NewError(domain.CodeAuthorAlreadyExists, "an author with email %s already exists", email)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func scanAuthor(row pgx.Row) (domain.Author, error) {
	var rec domain.AuthorRecord
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Bio, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Author{}, err
		}
		return domain.Author{}, fmt.Errorf("scan author: %w", err)
	}
	return domain.RehydrateAuthor(rec)
}
