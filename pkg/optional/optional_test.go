package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubhouse/pkg/optional"
)

type patch struct {
	Dob optional.Field[string] `json:"dob"`
}

func TestField_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		set     bool
		null    bool
		value   string
		present bool
	}{
		{"absent", `{}`, false, false, "", false},
		{"null", `{"dob":null}`, true, true, "", false},
		{"value", `{"dob":"1990-02-28"}`, true, false, "1990-02-28", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p patch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.set, p.Dob.IsSet())
			assert.Equal(t, tt.null, p.Dob.IsNull())
			v, ok := p.Dob.Get()
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.value, v)
		})
	}

	var p patch
	assert.Error(t, json.Unmarshal([]byte(`{"dob":42}`), &p))
}

func TestField_Constructors(t *testing.T) {
	t.Parallel()

	v, ok := optional.Some("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	assert.True(t, optional.Null[string]().IsNull())
	assert.False(t, optional.Field[string]{}.IsSet())

	out, err := json.Marshal(patch{Dob: optional.Some("2000-01-01")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dob":"2000-01-01"}`, string(out))

	out, err = json.Marshal(patch{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dob":null}`, string(out))
}
