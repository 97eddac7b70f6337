// predicates.go - classification helpers over errors raised by the core.
//
// All helpers use errors.As so they see through wrapping (fmt.Errorf %w,
// errors.Join).
package xcept

import (
	"errors"
)

// CodeOf returns the first *Error code along err's chain, or "" if none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var xe *Error
	if errors.As(err, &xe) {
		return xe.code
	}
	return ""
}

// HasCode reports whether err's chain carries an *Error with the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsUnhandled reports whether err denotes an error no scope resolved.
func IsUnhandled(err error) bool {
	return HasCode(err, CodeUnhandled)
}

// IsDefect reports whether err denotes a broken scope contract.
func IsDefect(err error) bool {
	return CodeOf(err).IsDefect()
}

// TokenOf extracts the token recorded on an unhandled error.
func TokenOf(err error) (Token, bool) {
	var xe *Error
	if !errors.As(err, &xe) {
		return 0, false
	}
	return FieldToken.Get(xe)
}
