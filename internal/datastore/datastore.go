package datastore

import (
	"context"
	"database/sql"
)

// Record is a column to value map written by Insert and Update.
type Record map[string]any

// Key is a column to value equality filter. It holds a single id or a
// composite key.
type Key map[string]any

// Row is the scanning side of *sql.Row and *sql.Rows.
type Row interface {
	Scan(dest ...any) error
}

// Table describes how rows of a table map onto T.
type Table[T any] struct {
	Name string
	// Columns are selected and returned in this order; Scan must read them
	// in the same order.
	Columns []string
	Scan    func(Row) (T, error)
	// UpdatedAt names a timestamp column set to now() on every update.
	UpdatedAt string
	OrderBy   []string
}

// Gateway is the persistence contract the services depend on.
//
// All methods return *Error on failure. A nil result together with a nil
// error means the store succeeded without returning data.
type Gateway[T any] interface {
	Insert(ctx context.Context, rec Record) (*T, error)
	SelectAll(ctx context.Context) ([]T, error)
	SelectOne(ctx context.Context, key Key) (*T, error)
	SelectWhere(ctx context.Context, column string, value any) ([]T, error)
	Update(ctx context.Context, key Key, rec Record) (*T, error)
	Delete(ctx context.Context, key Key) (*T, error)
}

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
