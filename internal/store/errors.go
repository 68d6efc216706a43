package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrDuplicateEmail is returned when a user with the given email
	// already exists. The unique constraint on users.email is the
	// authority, so concurrent registrations cannot race past the check.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
)

// isUniqueViolation reports whether err is a unique-constraint violation
// from either backing driver (Postgres in production, SQLite in tests).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return true
	}

	return false
}
