// Package store persists Person records in the persons table.
//
// Two implementations share the Store interface: Postgres over a pgx pool
// and SQL over a database/sql handle (SQLite in practice).
package store

import (
	"context"
	"errors"
)

// Sentinel errors returned by every Store implementation.
// The driver error is joined to the sentinel.
var (
	ErrEnsureSchema = errors.New("store: failed to ensure schema")
	ErrInsert       = errors.New("store: failed to insert person")
	ErrSelect       = errors.New("store: failed to select persons")
	ErrPing         = errors.New("store: ping failed")
)

// Person is one row of the persons table.
type Person struct {
	Name   string `db:"name"`
	Number int32  `db:"number"`
}

// Store is the persistence port used by the handlers.
type Store interface {
	// EnsureSchema creates the persons table if it does not exist.
	// Calling it repeatedly is a no-op.
	EnsureSchema(ctx context.Context) error
	// Insert appends one row.
	Insert(ctx context.Context, p Person) error
	// SelectAll returns every row in storage order.
	SelectAll(ctx context.Context) ([]Person, error)
	// Ping verifies the connection.
	Ping(ctx context.Context) error
	// Close releases the underlying handle.
	Close() error
}

const (
	insertPostgres = `INSERT INTO persons (name, number) VALUES ($1, $2)`
	insertSQL      = `INSERT INTO persons (name, number) VALUES (?, ?)`
	selectAll      = `SELECT name, number FROM persons`
)
