package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// classifyError maps raw driver errors onto the shared taxonomy so callers
// can branch with errors.Is instead of inspecting SQLite result codes.
// Errors that already carry a taxonomy sentinel pass through unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrValidation) ||
		errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrConflict) ||
		errors.Is(err, types.ErrInsufficientStock) ||
		errors.Is(err, types.ErrTransient) ||
		errors.Is(err, types.ErrConnection) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", types.ErrNotFound, err)
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlitelib.SQLITE_CONSTRAINT,
			sqlitelib.SQLITE_CONSTRAINT_UNIQUE,
			sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlitelib.SQLITE_CONSTRAINT_CHECK,
			sqlitelib.SQLITE_CONSTRAINT_NOTNULL,
			sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %v", types.ErrValidation, err)
		case sqlitelib.SQLITE_BUSY,
			sqlitelib.SQLITE_BUSY_SNAPSHOT,
			sqlitelib.SQLITE_BUSY_TIMEOUT,
			sqlitelib.SQLITE_LOCKED:
			return fmt.Errorf("%w: %v", types.ErrTransient, err)
		case sqlitelib.SQLITE_CANTOPEN,
			sqlitelib.SQLITE_NOTADB,
			sqlitelib.SQLITE_IOERR:
			return fmt.Errorf("%w: %v", types.ErrConnection, err)
		}
	}
	return err
}

// isUniqueViolation reports whether err is specifically a unique or
// primary-key constraint failure, used where duplicates carry meaning
// (shipment replays, import rows).
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
