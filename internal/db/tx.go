// Package db holds small helpers shared by the SQLite-backed stores.
package db

import (
	"database/sql"
	"time"
)

// WithTx runs fn within a transaction, committing when it returns nil and
// rolling back otherwise.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after a successful commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// UnixTime converts a nullable Unix timestamp in seconds. NULL is the zero
// time.
func UnixTime(n sql.NullInt64) time.Time {
	if !n.Valid {
		return time.Time{}
	}
	return time.Unix(n.Int64, 0)
}
