package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// violation reports whether err is a Postgres error with the given SQLSTATE
// on a constraint whose name contains fragment.
func violation(err error, code, fragment string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && strings.Contains(pgErr.ConstraintName, fragment)
}
