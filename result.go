// result.go - Result[T]: a value, or the token of a reported error.
//
// A Result never owns an error payload. The payload is either held by the
// scope that accepted it or already dropped; the Result only carries the
// token needed to correlate the two.
package xcept

// Result is either Ok(value) or Error(token).
type Result[T any] struct {
	value T
	token Token
	isErr bool
}

// Ok wraps a value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail reports e on s and returns the error Result carrying its token.
func Fail[T, E any](s *Stack, e E) Result[T] {
	return Errored[T](Report(s, e))
}

// FailAny is Fail with the dynamic type of e as the type tag.
func FailAny[T any](s *Stack, e any) Result[T] {
	return Errored[T](ReportAny(s, e))
}

// FromError converts a (value, error) pair. A nil err yields Ok(v);
// otherwise err is reported under its dynamic type, so handlers match on the
// concrete error type (e.g. *fs.PathError), not on the error interface.
func FromError[T any](s *Stack, v T, err error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	return FailAny[T](s, err)
}

// Errored builds an error Result from an already issued token.
func Errored[T any](tok Token) Result[T] {
	return Result[T]{token: tok, isErr: true}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return !r.isErr }

// IsError reports whether r holds an error token.
func (r Result[T]) IsError() bool { return r.isErr }

// Unwrap returns the value. On an error Result it panics with an *Error of
// code CodeUnhandled, the equivalent of an uncaught exception.
func (r Result[T]) Unwrap() T {
	if r.isErr {
		panic(unhandled(r.token))
	}
	return r.value
}

// Get returns the value, or an *Error of code CodeUnhandled.
func (r Result[T]) Get() (T, error) {
	if r.isErr {
		var zero T
		return zero, unhandled(r.token)
	}
	return r.value, nil
}

// ValueOr returns the value, or def on an error Result.
func (r Result[T]) ValueOr(def T) T {
	if r.isErr {
		return def
	}
	return r.value
}

// Token returns the error token and true, or (0, false) for a value.
func (r Result[T]) Token() (Token, bool) {
	return r.token, r.isErr
}

// UncheckedToken returns the error token. Call it only after IsError; on a
// value Result it panics with CodeNotError.
func (r Result[T]) UncheckedToken() Token {
	if !r.isErr {
		panic(defect(CodeNotError, "UncheckedToken on a value result"))
	}
	return r.token
}
