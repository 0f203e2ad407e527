package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error taxonomy surfaced to handlers. Wrapped with %w so handlers
// classify via errors.Is and map to a status code.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

const uniqueViolationCode = "23505"

// classify normalizes driver errors into the taxonomy. Anything not
// recognized passes through unchanged and ends up as a 500.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrConflict
	}
	return err
}
