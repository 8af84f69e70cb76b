package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// validateID rejects identifiers that are not UUIDs before they reach the store,
// the way a UUID-typed column would.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return nil
}

func newID() string {
	return uuid.New().String()
}

// isUniqueViolation reports whether err is a unique-constraint violation.
// GORM v1.25+ wraps these as gorm.ErrDuplicatedKey when TranslateError is on;
// the message checks cover dialects without a translator.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") || // PostgreSQL
		strings.Contains(errStr, "UNIQUE constraint") || // SQLite
		strings.Contains(errStr, "Duplicate entry") // MySQL
}

// isForeignKeyViolation reports whether err is a foreign-key violation.
// SQLite says "FOREIGN KEY constraint failed", PostgreSQL "violates foreign key
// constraint" and MySQL "a foreign key constraint fails".
func isForeignKeyViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// handleError converts database-specific errors to repository errors.
func handleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", ErrMissingReference, err)
	default:
		return err
	}
}
