package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubhouse/pkg/binder"
)

func extractor(params map[string]string) func(*http.Request, string) string {
	return func(_ *http.Request, name string) string {
		return params[name]
	}
}

func TestPath(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	t.Run("binds tagged fields only", func(t *testing.T) {
		t.Parallel()
		var got struct {
			ID      string  `path:"id"`
			Page    int     `path:"page"`
			Active  *bool   `path:"active"`
			Name    string  `json:"name"`
			Skipped string  `path:"-"`
			Missing *string `path:"missing"`
		}
		err := binder.Path(extractor(map[string]string{
			"id": "abc", "page": "3", "active": "true", "name": "ignored", "-": "x",
		}))(req, &got)

		require.NoError(t, err)
		assert.Equal(t, "abc", got.ID)
		assert.Equal(t, 3, got.Page)
		require.NotNil(t, got.Active)
		assert.True(t, *got.Active)
		assert.Empty(t, got.Name)
		assert.Empty(t, got.Skipped)
		assert.Nil(t, got.Missing)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var got struct {
			Page int `path:"page"`
		}
		err := binder.Path(extractor(map[string]string{"page": "two"}))(req, &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()
		var s string
		assert.ErrorIs(t, binder.Path(extractor(nil))(req, &s), binder.ErrFailedToParsePath)
		assert.ErrorIs(t, binder.Path(nil)(req, &struct{}{}), binder.ErrFailedToParsePath)
	})
}
