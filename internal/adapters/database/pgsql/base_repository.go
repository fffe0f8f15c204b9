package pgsql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/property_ledger/internal/apperrors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository carries the connection pool shared by every repository.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// NewBaseRepository wraps a pool.
func NewBaseRepository(pool *pgxpool.Pool) BaseRepository {
	return BaseRepository{Pool: pool}
}

// translate maps driver errors onto the application sentinels.
func translate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", msg, apperrors.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", msg, apperrors.ErrValidation, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// nullable turns "" into a SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
