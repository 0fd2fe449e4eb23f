package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// classifySQLiteError translates constraint violations reported by the
// SQLite driver into store sentinels. Any other error is returned as is.
//
//   - UNIQUE on remote_id      → [ErrRemoteIDConflict]
//   - FOREIGN KEY on a parent  → [ErrParentNotFound]
func classifySQLiteError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique:
		return fmt.Errorf("%w: %w", ErrRemoteIDConflict, err)
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %w", ErrParentNotFound, err)
	}

	return err
}
