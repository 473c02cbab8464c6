package datastore

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/clubhouse/pkg/pg"
)

// Code classifies a datastore failure.
type Code string

const (
	CodeNoRows              Code = "no_rows"
	CodeUniqueViolation     Code = "unique_violation"
	CodeForeignKeyViolation Code = "foreign_key_violation"
	CodeCheckViolation      Code = "check_violation"
	CodeNotNullViolation    Code = "not_null_violation"
	CodeInvalidInput        Code = "invalid_input"
	CodeUnknown             Code = "unknown"
)

var (
	ErrEmptyRecord   = errors.New("record has no columns")
	ErrEmptyKey      = errors.New("key has no columns")
	ErrUnknownColumn = errors.New("unknown column")
)

// Error is returned by every Gateway method.
type Error struct {
	Code  Code
	Op    string
	Table string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("datastore: %s %s: %s: %v", e.Op, e.Table, e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the Code of the first *Error in err's chain, or "" when
// err is not a datastore error.
func CodeOf(err error) Code {
	var dsErr *Error
	if errors.As(err, &dsErr) {
		return dsErr.Code
	}
	return ""
}

// IsNoRows reports whether err means zero rows were found or affected.
func IsNoRows(err error) bool {
	return CodeOf(err) == CodeNoRows
}

func wrap(op, table string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: classify(err), Op: op, Table: table, Err: err}
}

func classify(err error) Code {
	switch {
	case pg.IsNotFoundError(err):
		return CodeNoRows
	case pg.IsDuplicateKeyError(err):
		return CodeUniqueViolation
	case pg.IsForeignKeyViolationError(err):
		return CodeForeignKeyViolation
	case pg.IsCheckViolationError(err):
		return CodeCheckViolation
	case pg.IsNotNullViolationError(err):
		return CodeNotNullViolation
	case pg.IsInvalidInputError(err),
		errors.Is(err, ErrEmptyRecord),
		errors.Is(err, ErrEmptyKey),
		errors.Is(err, ErrUnknownColumn):
		return CodeInvalidInput
	}
	return CodeUnknown
}

// Describe renders a client-safe summary of a datastore failure.
func Describe(err error) string {
	switch CodeOf(err) {
	case CodeNoRows:
		return "no matching record"
	case CodeUniqueViolation:
		return "a record with the same key already exists"
	case CodeForeignKeyViolation:
		return "a referenced record does not exist"
	case CodeCheckViolation:
		return "a value is outside the allowed range"
	case CodeNotNullViolation:
		return "a required value is missing"
	case CodeInvalidInput:
		return "a value is malformed"
	}
	return "the datastore rejected the request"
}
