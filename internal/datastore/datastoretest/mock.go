// Package datastoretest provides a testify mock of datastore.Gateway.
package datastoretest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
)

type MockGateway[T any] struct {
	mock.Mock
}

var _ datastore.Gateway[struct{}] = (*MockGateway[struct{}])(nil)

func (m *MockGateway[T]) Insert(ctx context.Context, rec datastore.Record) (*T, error) {
	args := m.Called(ctx, rec)
	return row[T](args)
}

func (m *MockGateway[T]) SelectAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	return rows[T](args)
}

func (m *MockGateway[T]) SelectOne(ctx context.Context, key datastore.Key) (*T, error) {
	args := m.Called(ctx, key)
	return row[T](args)
}

func (m *MockGateway[T]) SelectWhere(ctx context.Context, column string, value any) ([]T, error) {
	args := m.Called(ctx, column, value)
	return rows[T](args)
}

func (m *MockGateway[T]) Update(ctx context.Context, key datastore.Key, rec datastore.Record) (*T, error) {
	args := m.Called(ctx, key, rec)
	return row[T](args)
}

func (m *MockGateway[T]) Delete(ctx context.Context, key datastore.Key) (*T, error) {
	args := m.Called(ctx, key)
	return row[T](args)
}

func row[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func rows[T any](args mock.Arguments) ([]T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

// Err builds a datastore error with the given code.
func Err(code datastore.Code) error {
	return &datastore.Error{Code: code, Op: "test", Table: "test", Err: errString(code)}
}

type errString datastore.Code

func (e errString) Error() string { return string(e) }
