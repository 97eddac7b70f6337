// typed_field.go - type-safe access to the fields the core attaches to *Error.
//
// The dynamic type stored in a field MUST match T exactly; no conversions are
// made. The core publishes its own keys as package-level fields so callers
// never spell them by hand:
//
//	if tok, ok := xcept.FieldToken.Get(xe); ok {
//	    log.Printf("lost error #%d", tok)
//	}
package xcept

import (
	"fmt"
)

// Fields attached by the core.
var (
	FieldToken = FieldOf[Token]("token")
	FieldType  = FieldOf[string]("type")
	FieldDepth = FieldOf[int]("depth")
	FieldIndex = FieldOf[int]("index")
)

// TypedField is a small helper for type-safe context access.
type TypedField[T any] struct {
	key string
}

// FieldOf constructs a TypedField[T] for a given key.
func FieldOf[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying string key for this field.
func (f TypedField[T]) Key() string { return f.key }

// Set returns a NEW *Error with (key = val) appended.
func (f TypedField[T]) Set(e *Error, val T) *Error {
	if e == nil {
		e = newError("", "")
	}
	return e.With(f.key, any(val))
}

// Get retrieves the typed value for this field from e. The newest assignment
// wins. It returns (zero, false) if e is nil, the field is absent or has a
// different dynamic type than T.
func (f TypedField[T]) Get(e *Error) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	for i := len(e.ctx) - 1; i >= 0; i-- {
		if e.ctx[i].Key != f.key {
			continue
		}
		tv, ok := e.ctx[i].Val.(T)
		return tv, ok
	}
	return zero, false
}

// MustGet retrieves the typed value or panics if the field is missing or has
// a different dynamic type than T. Intended for tests.
func (f TypedField[T]) MustGet(e *Error) T {
	var zero T
	if e == nil {
		panic(fmt.Errorf("xcept.TypedField[%T](%q): error is nil", zero, f.key))
	}
	v, ok := f.Get(e)
	if !ok {
		panic(fmt.Errorf("xcept.TypedField[%T](%q): field missing or wrong type", zero, f.key))
	}
	return v
}
