// codes.go - error code definitions for the xcept core.
//
// Conventions:
//   - Codes are lowercase snake_case ASCII.
//   - CodeUnhandled is the only code that describes a runtime condition; all
//     others denote a contract violation by the caller and are defects.
package xcept

// Runtime condition
const (
	// CodeUnhandled is raised when a Result is unwrapped after its error was
	// reported outside of any matching scope, or shadowed by a later report.
	CodeUnhandled Code = "unhandled"
)

// Contract violations
const (
	CodeDefect          Code = "defect"
	CodeNotError        Code = "not_error"
	CodeOutOfOrder      Code = "out_of_order_release"
	CodeReleased        Code = "released"
	CodeNilAcceptor     Code = "nil_acceptor"
	CodeNilReport       Code = "nil_report"
	CodeNoStack         Code = "no_stack"
	CodeNilHandler      Code = "nil_handler"
	CodeCompositeReused Code = "composite_reused"
)

// allBuiltinCodes is the ordered set of codes the core ships with.
var allBuiltinCodes = []Code{
	CodeUnhandled,

	CodeDefect,
	CodeNotError,
	CodeOutOfOrder,
	CodeReleased,
	CodeNilAcceptor,
	CodeNilReport,
	CodeNoStack,
	CodeNilHandler,
	CodeCompositeReused,
}

var builtinCodeSet = map[Code]struct{}{
	CodeUnhandled:       {},
	CodeDefect:          {},
	CodeNotError:        {},
	CodeOutOfOrder:      {},
	CodeReleased:        {},
	CodeNilAcceptor:     {},
	CodeNilReport:       {},
	CodeNoStack:         {},
	CodeNilHandler:      {},
	CodeCompositeReused: {},
}

// BuiltinCodes returns a copy of the built-in codes in a stable order.
func BuiltinCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the built-in core codes.
func (c Code) IsBuiltin() bool {
	_, ok := builtinCodeSet[c]
	return ok
}

// IsDefect reports whether c marks a contract violation.
func (c Code) IsDefect() bool {
	return c != CodeUnhandled && c.IsBuiltin()
}
