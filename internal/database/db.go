package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the roster database. Foreign keys are enforced so a review row
// can never reference a missing provider.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	if err != nil {
		return nil, err
	}
	// the roster is written once by Seed and read once at startup; a single
	// connection is all sqlite ever sees
	db.SetMaxOpenConns(1)
	return db, nil
}

// WithTx runs fn in a transaction, rolling back if fn fails. Seeding uses it
// so a partial roster never persists.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
