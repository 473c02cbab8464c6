package datastore

import (
	"context"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Postgres implements Gateway with squirrel-built statements over database/sql.
// Writes use RETURNING so a single round trip yields the affected row.
type Postgres[T any] struct {
	db        Querier
	table     Table[T]
	sb        sq.StatementBuilderType
	returning string
}

// NewPostgres panics when db is nil or table is incomplete.
func NewPostgres[T any](db Querier, table Table[T]) *Postgres[T] {
	if db == nil {
		panic("datastore: db is required")
	}
	if table.Name == "" || len(table.Columns) == 0 || table.Scan == nil {
		panic("datastore: table needs a name, columns and a scan func")
	}
	return &Postgres[T]{
		db:        db,
		table:     table,
		sb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		returning: "RETURNING " + strings.Join(table.Columns, ", "),
	}
}

func (p *Postgres[T]) Insert(ctx context.Context, rec Record) (*T, error) {
	if len(rec) == 0 {
		return nil, wrap("insert", p.table.Name, ErrEmptyRecord)
	}
	q := p.sb.Insert(p.table.Name).SetMap(rec).Suffix(p.returning)
	return p.one(ctx, "insert", q)
}

func (p *Postgres[T]) SelectAll(ctx context.Context) ([]T, error) {
	return p.many(ctx, "select", p.selectBuilder())
}

func (p *Postgres[T]) SelectOne(ctx context.Context, key Key) (*T, error) {
	if len(key) == 0 {
		return nil, wrap("select", p.table.Name, ErrEmptyKey)
	}
	return p.one(ctx, "select", p.selectBuilder().Where(sq.Eq(key)))
}

func (p *Postgres[T]) SelectWhere(ctx context.Context, column string, value any) ([]T, error) {
	if !slices.Contains(p.table.Columns, column) {
		return nil, wrap("select", p.table.Name, fmt.Errorf("%w: %q", ErrUnknownColumn, column))
	}
	return p.many(ctx, "select", p.selectBuilder().Where(sq.Eq{column: value}))
}

// Update applies rec to the row matching key. An empty rec reads the current row.
func (p *Postgres[T]) Update(ctx context.Context, key Key, rec Record) (*T, error) {
	if len(key) == 0 {
		return nil, wrap("update", p.table.Name, ErrEmptyKey)
	}
	if len(rec) == 0 {
		return p.SelectOne(ctx, key)
	}

	q := p.sb.Update(p.table.Name).SetMap(rec)
	if col := p.table.UpdatedAt; col != "" {
		if _, ok := rec[col]; !ok {
			q = q.Set(col, sq.Expr("now()"))
		}
	}
	return p.one(ctx, "update", q.Where(sq.Eq(key)).Suffix(p.returning))
}

func (p *Postgres[T]) Delete(ctx context.Context, key Key) (*T, error) {
	if len(key) == 0 {
		return nil, wrap("delete", p.table.Name, ErrEmptyKey)
	}
	q := p.sb.Delete(p.table.Name).Where(sq.Eq(key)).Suffix(p.returning)
	return p.one(ctx, "delete", q)
}

func (p *Postgres[T]) selectBuilder() sq.SelectBuilder {
	q := p.sb.Select(p.table.Columns...).From(p.table.Name)
	if len(p.table.OrderBy) > 0 {
		q = q.OrderBy(p.table.OrderBy...)
	}
	return q
}

func (p *Postgres[T]) one(ctx context.Context, op string, q sq.Sqlizer) (*T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, wrap(op, p.table.Name, err)
	}

	item, err := p.table.Scan(p.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrap(op, p.table.Name, err)
	}
	return &item, nil
}

func (p *Postgres[T]) many(ctx context.Context, op string, q sq.Sqlizer) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, wrap(op, p.table.Name, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, p.table.Name, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := p.table.Scan(rows)
		if err != nil {
			return nil, wrap(op, p.table.Name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, p.table.Name, err)
	}
	return items, nil
}
