package datastore_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
)

type widget struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	MadeOn    *datastore.Date
	CreatedAt time.Time
}

var widgetColumns = []string{"id", "name", "price", "made_on", "created_at"}

var widgets = datastore.Table[widget]{
	Name:    "widgets",
	Columns: widgetColumns,
	Scan: func(row datastore.Row) (widget, error) {
		var w widget
		err := row.Scan(&w.ID, &w.Name, &w.Price, &w.MadeOn, &w.CreatedAt)
		return w, err
	},
	UpdatedAt: "updated_at",
	OrderBy:   []string{"created_at", "id"},
}

const returning = `RETURNING id, name, price, made_on, created_at`

var createdAt = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func newGateway(t *testing.T) (*datastore.Postgres[widget], sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return datastore.NewPostgres(db, widgets), mock
}

func widgetRows() *sqlmock.Rows {
	return sqlmock.NewRows(widgetColumns)
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func TestPostgres_Insert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns inserted row", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)
		price := decimal.RequireFromString("50.00")

		mock.ExpectQuery(q(`INSERT INTO widgets (name,price) VALUES ($1,$2) `+returning)).
			WithArgs("bolt", price).
			WillReturnRows(widgetRows().AddRow("w1", "bolt", "50.00", nil, createdAt))

		got, err := gw.Insert(ctx, datastore.Record{"name": "bolt", "price": price})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "w1", got.ID)
		assert.True(t, price.Equal(got.Price))
		assert.Nil(t, got.MadeOn)
		assert.Equal(t, createdAt, got.CreatedAt)
	})

	t.Run("classifies unique violation", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`INSERT INTO widgets`)).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		got, err := gw.Insert(ctx, datastore.Record{"name": "bolt"})
		assert.Nil(t, got)
		assert.Equal(t, datastore.CodeUniqueViolation, datastore.CodeOf(err))

		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr, "driver error stays reachable")
	})

	t.Run("classifies foreign key violation", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`INSERT INTO widgets`)).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err := gw.Insert(ctx, datastore.Record{"name": "bolt"})
		assert.Equal(t, datastore.CodeForeignKeyViolation, datastore.CodeOf(err))
	})

	t.Run("rejects empty record without a query", func(t *testing.T) {
		t.Parallel()
		gw, _ := newGateway(t)

		_, err := gw.Insert(ctx, datastore.Record{})
		assert.Equal(t, datastore.CodeInvalidInput, datastore.CodeOf(err))
		assert.ErrorIs(t, err, datastore.ErrEmptyRecord)
	})
}

func TestPostgres_SelectAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty table yields empty slice", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`SELECT id, name, price, made_on, created_at FROM widgets ORDER BY created_at, id`)).
			WillReturnRows(widgetRows())

		got, err := gw.SelectAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("preserves row order", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`FROM widgets ORDER BY created_at, id`)).
			WillReturnRows(widgetRows().
				AddRow("w1", "bolt", "1.50", time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), createdAt).
				AddRow("w2", "nut", "0.25", nil, createdAt))

		got, err := gw.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "w1", got[0].ID)
		require.NotNil(t, got[0].MadeOn)
		assert.Equal(t, "2024-05-06", got[0].MadeOn.String())
		assert.Equal(t, "w2", got[1].ID)
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`FROM widgets`)).WillReturnError(errors.New("connection reset"))

		got, err := gw.SelectAll(ctx)
		assert.Nil(t, got)
		assert.Equal(t, datastore.CodeUnknown, datastore.CodeOf(err))
	})

	t.Run("row iteration error", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`FROM widgets`)).
			WillReturnRows(widgetRows().
				AddRow("w1", "bolt", "1.50", nil, createdAt).
				RowError(0, errors.New("broken pipe")))

		_, err := gw.SelectAll(ctx)
		assert.Error(t, err)
	})
}

func TestPostgres_SelectOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`FROM widgets WHERE id = $1 ORDER BY created_at, id`)).
			WithArgs("w1").
			WillReturnRows(widgetRows().AddRow("w1", "bolt", "1.50", nil, createdAt))

		got, err := gw.SelectOne(ctx, datastore.Key{"id": "w1"})
		require.NoError(t, err)
		assert.Equal(t, "bolt", got.Name)
	})

	t.Run("zero rows", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`FROM widgets WHERE id = $1`)).
			WithArgs("missing").
			WillReturnRows(widgetRows())

		got, err := gw.SelectOne(ctx, datastore.Key{"id": "missing"})
		assert.Nil(t, got)
		assert.True(t, datastore.IsNoRows(err))
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("malformed uuid reported by postgres", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`FROM widgets WHERE id = $1`)).
			WillReturnError(&pgconn.PgError{Code: "22P02"})

		_, err := gw.SelectOne(ctx, datastore.Key{"id": "not-a-uuid"})
		assert.Equal(t, datastore.CodeInvalidInput, datastore.CodeOf(err))
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		gw, _ := newGateway(t)

		_, err := gw.SelectOne(ctx, datastore.Key{})
		assert.ErrorIs(t, err, datastore.ErrEmptyKey)
	})
}

func TestPostgres_SelectWhere(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("filters by column", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`FROM widgets WHERE name = $1 ORDER BY created_at, id`)).
			WithArgs("bolt").
			WillReturnRows(widgetRows().AddRow("w1", "bolt", "1.50", nil, createdAt))

		got, err := gw.SelectWhere(ctx, "name", "bolt")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`FROM widgets WHERE name = $1`)).
			WithArgs("gear").
			WillReturnRows(widgetRows())

		got, err := gw.SelectWhere(ctx, "name", "gear")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown column is rejected before querying", func(t *testing.T) {
		t.Parallel()
		gw, _ := newGateway(t)

		_, err := gw.SelectWhere(ctx, "name; DROP TABLE widgets", "x")
		assert.ErrorIs(t, err, datastore.ErrUnknownColumn)
		assert.Equal(t, datastore.CodeInvalidInput, datastore.CodeOf(err))
	})
}

func TestPostgres_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("sets columns and touches updated_at", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`UPDATE widgets SET name = $1, updated_at = now() WHERE id = $2 `+returning)).
			WithArgs("washer", "w1").
			WillReturnRows(widgetRows().AddRow("w1", "washer", "1.50", nil, createdAt))

		got, err := gw.Update(ctx, datastore.Key{"id": "w1"}, datastore.Record{"name": "washer"})
		require.NoError(t, err)
		assert.Equal(t, "washer", got.Name)
	})

	t.Run("composite key", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(`UPDATE widgets SET name = \$1, updated_at = now\(\) WHERE .*id = \$2.*name = \$3`).
			WithArgs("washer", "w1", "bolt").
			WillReturnRows(widgetRows().AddRow("w1", "washer", "1.50", nil, createdAt))

		_, err := gw.Update(ctx, datastore.Key{"id": "w1", "name": "bolt"}, datastore.Record{"name": "washer"})
		require.NoError(t, err)
	})

	t.Run("zero rows", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`UPDATE widgets`)).WillReturnRows(widgetRows())

		_, err := gw.Update(ctx, datastore.Key{"id": "missing"}, datastore.Record{"name": "washer"})
		assert.True(t, datastore.IsNoRows(err))
	})

	t.Run("empty record reads current row", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`SELECT id, name, price, made_on, created_at FROM widgets WHERE id = $1`)).
			WithArgs("w1").
			WillReturnRows(widgetRows().AddRow("w1", "bolt", "1.50", nil, createdAt))

		got, err := gw.Update(ctx, datastore.Key{"id": "w1"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "bolt", got.Name)
	})

	t.Run("check violation", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`UPDATE widgets`)).WillReturnError(&pgconn.PgError{Code: "23514"})

		_, err := gw.Update(ctx, datastore.Key{"id": "w1"}, datastore.Record{"price": "-1"})
		assert.Equal(t, datastore.CodeCheckViolation, datastore.CodeOf(err))
	})
}

func TestPostgres_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns deleted row", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`DELETE FROM widgets WHERE id = $1 `+returning)).
			WithArgs("w1").
			WillReturnRows(widgetRows().AddRow("w1", "bolt", "1.50", nil, createdAt))

		got, err := gw.Delete(ctx, datastore.Key{"id": "w1"})
		require.NoError(t, err)
		assert.Equal(t, "w1", got.ID)
	})

	t.Run("zero rows", func(t *testing.T) {
		t.Parallel()
		gw, mock := newGateway(t)

		mock.ExpectQuery(q(`DELETE FROM widgets`)).WithArgs("w1").WillReturnRows(widgetRows())

		got, err := gw.Delete(ctx, datastore.Key{"id": "w1"})
		assert.Nil(t, got)
		assert.True(t, datastore.IsNoRows(err))
	})

	t.Run("empty key never deletes everything", func(t *testing.T) {
		t.Parallel()
		gw, _ := newGateway(t)

		_, err := gw.Delete(ctx, nil)
		assert.ErrorIs(t, err, datastore.ErrEmptyKey)
	})
}

func TestNewPostgres_Panics(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.Panics(t, func() { datastore.NewPostgres[widget](nil, widgets) })
	assert.Panics(t, func() { datastore.NewPostgres(db, datastore.Table[widget]{Name: "widgets"}) })
}
