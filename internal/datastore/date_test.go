package datastore_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
)

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  any
		want string
	}{
		{"time", time.Date(1990, 2, 28, 0, 0, 0, 0, time.UTC), "1990-02-28"},
		{"string", "2025-01-01", "2025-01-01"},
		{"bytes", []byte("2025-01-01"), "2025-01-01"},
		{"timestamp text", "2025-01-01T00:00:00Z", "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var d datastore.Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d datastore.Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("not a date"))
}

func TestDate_Value(t *testing.T) {
	t.Parallel()

	d, err := datastore.ParseDate("2025-01-01")
	require.NoError(t, err)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), v)
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Dob *datastore.Date `json:"dob"`
	}

	d, err := datastore.ParseDate("1990-02-28")
	require.NoError(t, err)

	out, err := json.Marshal(payload{Dob: &d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dob":"1990-02-28"}`, string(out))

	out, err = json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dob":null}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"dob":"2000-12-31"}`), &in))
	require.NotNil(t, in.Dob)
	assert.Equal(t, "2000-12-31", in.Dob.String())
}
