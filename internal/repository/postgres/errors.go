package postgres

import (
	"errors"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError translates driver errors into domain sentinels so callers never import pgx.
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", what, domain.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: referenced row missing: %w", what, domain.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

func toDate(t time.Time) domain.Date {
	return domain.NewDate(t)
}

// dateArg returns nil for a zero date so column defaults apply.
func dateArg(d domain.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Time
}
