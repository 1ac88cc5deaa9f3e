package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Sentinel errors the handlers translate into HTTP statuses. Raw pq errors
// never leave this package.
var (
	// ErrDuplicate marks a unique-constraint violation (duplicate student
	// code, concurrent receipt number collision).
	ErrDuplicate = errors.New("duplicate value")

	// ErrBadReference marks a foreign-key violation: a payment or mapping
	// referenced a row that does not exist.
	ErrBadReference = errors.New("referenced row does not exist")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// normalizeError converts driver-level errors into the package's sentinel
// errors, keeping the violated constraint name for diagnostics.
func normalizeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrDuplicate, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, ErrBadReference, pqErr.Constraint)
		}
	}

	return fmt.Errorf("%s: %v", op, err)
}
