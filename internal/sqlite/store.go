// Package sqlite implements the embedded storage backend for cltodo: one
// database file holding one todos table, opened fresh on every invocation.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// maxOpenConns bounds the driver's connection pool. A single invocation
// issues at most two statements, so the pool is never contended.
const maxOpenConns = 5

// schemaDDL creates the todos table. STRICT makes the storage engine reject
// rows that do not match the declared column types. Runs on every open;
// never drops or alters an existing table.
const schemaDDL = `CREATE TABLE IF NOT EXISTS todos (
    id INTEGER PRIMARY KEY,
    date TEXT NOT NULL,
    text TEXT NOT NULL,
    priority INTEGER NOT NULL
) STRICT;`

// Store is a handle on one todos database file. Each CLI invocation opens a
// Store, issues its statements, and closes it; no state survives the
// process.
type Store struct {
	db      *sql.DB
	created bool
}

// Open opens the database file at path, creating it if absent, and ensures
// the schema exists. The caller owns the returned Store and must Close it.
func Open(path string) (*Store, error) {
	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{db: db, created: created}, nil
}

// Created reports whether Open created a new database file rather than
// opening an existing one. The CLI prints an advisory notice when it did.
func (s *Store) Created() bool {
	return s.created
}

// Close releases the connection pool. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
