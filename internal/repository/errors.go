package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// uniqueViolation reports whether the store itself rejected a write on a
// uniqueness constraint. Usecase pre-checks are a fast path for a friendly
// message; under concurrent identical submissions this signal is the
// authoritative duplicate detection.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
