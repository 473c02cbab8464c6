package svcerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clubhouse/svc/svcerr"
)

func TestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("duplicate key")
	err := svcerr.ValidationFailed("could not create subscription", cause)

	assert.ErrorIs(t, err, svcerr.ErrValidationFailed)
	assert.NotErrorIs(t, err, svcerr.ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "could not create subscription: duplicate key", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Equal(t, svcerr.ErrValidationFailed, svcerr.KindOf(wrapped))
	assert.Equal(t, "could not create subscription", svcerr.MessageOf(wrapped))
}

func TestError_NestedKind(t *testing.T) {
	t.Parallel()

	t.Run("outer kind replaces inner kind", func(t *testing.T) {
		t.Parallel()
		err := svcerr.ReferenceNotFound("Member not found", svcerr.NotFound("Member not found", nil))

		assert.ErrorIs(t, err, svcerr.ErrReferenceNotFound)
		assert.NotErrorIs(t, err, svcerr.ErrNotFound)
		assert.Equal(t, "Member not found", err.Error())
	})

	t.Run("root cause stays reachable", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("no rows")
		err := svcerr.ReferenceNotFound("Sport not found", svcerr.NotFound("Sport not found", cause))

		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, svcerr.ErrNotFound)
		assert.Equal(t, "Sport not found: no rows", err.Error())
	})
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *svcerr.Error
		kind error
	}{
		{svcerr.NotFound("Sport not found", nil), svcerr.ErrNotFound},
		{svcerr.ReferenceNotFound("Member not found", nil), svcerr.ErrReferenceNotFound},
		{svcerr.PersistenceInconsistency("No data returned from database"), svcerr.ErrPersistenceInconsistency},
		{svcerr.InvalidArgument("memberId is required"), svcerr.ErrInvalidArgument},
	}

	for _, tt := range tests {
		assert.ErrorIs(t, tt.err, tt.kind)
		assert.Equal(t, tt.err.Message, tt.err.Error())
	}

	assert.Nil(t, svcerr.KindOf(errors.New("plain")))
	assert.Empty(t, svcerr.MessageOf(nil))
}
