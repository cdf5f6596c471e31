package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"workoutapi/internal/repository"
)

// PostgreSQL error code for unique_violation.
const uniqueViolationCode = "23505"

// mapUniqueViolation translates a pgconn unique-violation error into the
// repository sentinel so callers do not depend on driver error codes.
// The violated constraint name is kept in the message.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", repository.ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}
