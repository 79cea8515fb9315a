package pgsql

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ratewise/currency_rates_app/internal/apperrors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapPgError translates driver-level failures into application errors.
// Unique violations become ErrDuplicate, foreign key violations ErrNotFound
// (the referenced row is missing), and connection-class failures (SQLSTATE
// class 08) ErrUnavailable. Anything else is returned unchanged.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return apperrors.ErrDuplicate
		case pgErr.Code == pgForeignKeyViolation:
			return apperrors.ErrNotFound
		case strings.HasPrefix(pgErr.Code, "08"):
			return apperrors.ErrUnavailable
		}
	}
	return err
}
