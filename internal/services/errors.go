package services

import (
	"database/sql"
	"errors"
	"strings"
)

var (
	ErrBadCreds         = errors.New("invalid email or password")
	ErrNotAuthenticated = errors.New("login required")
	ErrNotFound         = errors.New("not found")

	// ErrConflict surfaces a unique-index violation that slipped past the
	// application-level probe, e.g. two concurrent creates with one email.
	ErrConflict = errors.New("record already exists")
)

// storeErr maps driver errors onto the service sentinels. No locking guards
// the uniqueness probes, so the index is the final arbiter.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrConflict
	}
	return err
}
