package db_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubhouse/internal/db"
)

func TestMigrations(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(db.Migrations, db.MigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		raw, err := fs.ReadFile(db.Migrations, db.MigrationsDir+"/"+e.Name())
		require.NoError(t, err)

		body := string(raw)
		assert.Contains(t, body, "-- +goose Up", e.Name())
		assert.Contains(t, body, "-- +goose Down", e.Name())
	}
}

func TestSchemaConstraints(t *testing.T) {
	t.Parallel()

	raw, err := fs.ReadFile(db.Migrations, db.MigrationsDir+"/00001_create_clubhouse_schema.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.Contains(t, schema, "UNIQUE (member_id, sport_id)")
	assert.Contains(t, schema, "CHECK (price > 0)")
	assert.Contains(t, schema, "ON UPDATE CASCADE ON DELETE SET NULL")
	assert.Equal(t, 2, strings.Count(schema, "ON UPDATE CASCADE ON DELETE CASCADE"))
}
