// error.go - runtime failures raised by the xcept core.
//
// The propagation protocol itself never returns Go errors: a reported value
// travels through scopes, and callers see only a Result token. This file
// covers the other direction, the failures the runtime raises when a Result
// is unwrapped without a handler or when the scope contract is broken.
//
// Design tenets (shared with xgx-error):
//   - Code-classified: every failure carries a stable, snake_case Code.
//   - Non-mutating: With returns a NEW *Error, the receiver is untouched.
//   - Interop-first: predicates use errors.As, so wrapped failures still match.
//   - No stacks: callers that want them wrap with their own error library.
package xcept

// Code classifies runtime failures into machine-readable categories.
//
// Codes are stringly-typed for stability across log and test boundaries.
type Code string

// Error is the concrete failure type raised (panicked) or returned by the
// core. It is immutable once published.
type Error struct {
	code Code
	msg  string
	ctx  fields
}

func newError(code Code, msg string, kv ...any) *Error {
	return &Error{code: code, msg: msg, ctx: ctxFromKV(kv...)}
}

// Error returns "<code>: <msg>", or just the code when msg is empty.
func (e *Error) Error() string {
	if e.msg == "" {
		if e.code != "" {
			return string(e.code)
		}
		return "error"
	}
	if e.code != "" {
		return string(e.code) + ": " + e.msg
	}
	return e.msg
}

// Code returns the classification code.
func (e *Error) Code() Code { return e.code }

// Message returns the message without the code prefix.
func (e *Error) Message() string { return e.msg }

// Context returns a copy of the error's fields as a map (last write wins).
func (e *Error) Context() map[string]any { return ctxToMap(e.ctx) }

// Fields returns the ordered fields. The slice is a copy.
func (e *Error) Fields() []Field { return ctxCloneAppend(e.ctx) }

// With returns a NEW *Error carrying an extra field.
func (e *Error) With(key string, val any) *Error {
	n := e.clone()
	n.ctx = ctxCloneAppend(n.ctx, Field{Key: key, Val: val})
	return n
}

func (e *Error) clone() *Error {
	n := *e
	if len(e.ctx) > 0 {
		n.ctx = make(fields, len(e.ctx))
		copy(n.ctx, e.ctx)
	} else {
		n.ctx = emptyFields
	}
	return &n
}

// -----------------------------------------------------------------------------
// Constructors used by the runtime
// -----------------------------------------------------------------------------

// unhandled reports that a Result carried a token no handler resolved.
func unhandled(tok Token) *Error {
	return FieldToken.Set(newError(CodeUnhandled, "error was not handled by any scope"), tok)
}

// defect reports a broken scope contract. It is always panicked.
func defect(code Code, msg string, kv ...any) *Error {
	return newError(code, msg, kv...)
}

var _ error = (*Error)(nil)
