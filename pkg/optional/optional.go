// Package optional provides a tri-state value for partial updates: a JSON
// field can be absent, explicitly null, or carry a value.
package optional

import (
	"bytes"
	"encoding/json"
)

// Field is absent by default. Use it with non-omitempty JSON tags on update
// payloads; encoding/json only calls UnmarshalJSON for keys present in the
// document.
type Field[T any] struct {
	value T
	set   bool
	null  bool
}

func Some[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the field was present, including as null.
func (f Field[T]) IsSet() bool { return f.set }

func (f Field[T]) IsNull() bool { return f.set && f.null }

// Get returns the value and whether one is present (set and not null).
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set && !f.null
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value, f.null = zero, true
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if v, ok := f.Get(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}
