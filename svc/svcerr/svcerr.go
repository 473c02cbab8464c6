// Package svcerr defines the failure kinds shared by the domain services.
//
// Services return *Error values. Callers branch on the kind with errors.Is:
//
//	if errors.Is(err, svcerr.ErrNotFound) { ... }
package svcerr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed covers rejected input and store-level rejections
	// such as constraint violations.
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	// ErrReferenceNotFound means an entity referenced by the request does not exist.
	ErrReferenceNotFound = errors.New("referenced entity not found")
	// ErrPersistenceInconsistency means the store reported success but
	// returned no data.
	ErrPersistenceInconsistency = errors.New("persistence inconsistency")
	ErrInvalidArgument          = errors.New("invalid argument")
)

// Error is a classified service failure.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if cause := e.Unwrap(); cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, cause)
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// Unwrap returns the underlying cause. A nested *Error is skipped so that
// the chain matches exactly one kind.
func (e *Error) Unwrap() error {
	if inner, ok := e.Err.(*Error); ok {
		return inner.Unwrap()
	}
	return e.Err
}

func New(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func ValidationFailed(message string, cause error) *Error {
	return New(ErrValidationFailed, message, cause)
}

func NotFound(message string, cause error) *Error {
	return New(ErrNotFound, message, cause)
}

func ReferenceNotFound(message string, cause error) *Error {
	return New(ErrReferenceNotFound, message, cause)
}

func PersistenceInconsistency(message string) *Error {
	return New(ErrPersistenceInconsistency, message, nil)
}

func InvalidArgument(message string) *Error {
	return New(ErrInvalidArgument, message, nil)
}

// KindOf returns the kind of the first *Error in err's chain, or nil.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}

// MessageOf returns the client-facing message of the first *Error in
// err's chain, or "" when err is not a service error.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
