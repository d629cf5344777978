package gormstore

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/phrazzld/athlete-api/internal/store"
	"gorm.io/gorm"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// fallbackErrorMessage is used when a driver error sanitizes to nothing.
const fallbackErrorMessage = "unexpected database error"

var sqlStateSuffix = regexp.MustCompile(`\s*\(SQLSTATE [0-9A-Z]{5}\)\s*$`)

// MapError maps a database error to the matching store error while keeping
// the original error in the chain for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
		case foreignKeyViolationCode, checkViolationCode, notNullViolationCode:
			return fmt.Errorf("%w: constraint %s: %w", store.ErrInvalidEntity, pgErr.ConstraintName, err)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", store.ErrDuplicate, err)
		case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
	}

	return err
}

// SanitizeError reduces a driver error to a short fragment that is safe to
// return to clients: driver prefixes and SQLSTATE suffixes are removed, only
// the first line is kept, then only the text after the last colon, with
// quoted identifiers dropped.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		msg = pgErr.Message
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		msg = liteErr.Error()
	}

	return sanitizeMessage(msg)
}

func sanitizeMessage(msg string) string {
	line, _, _ := strings.Cut(msg, "\n")
	line = sqlStateSuffix.ReplaceAllString(line, "")

	if i := strings.LastIndex(line, ": "); i >= 0 {
		line = line[i+2:]
	}

	line = strings.Trim(strings.TrimSpace(line), `"'`)
	if i := strings.IndexAny(line, `"'`); i >= 0 {
		line = line[:i]
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return fallbackErrorMessage
	}
	return line
}

// persistenceError wraps a failed write as a *store.StoreError carrying the
// sanitized fragment.
func persistenceError(entity, operation string, err error) error {
	return store.NewStoreError(entity, operation, SanitizeError(err), MapError(err))
}
