// doc.go - package documentation for xgx-xcept
//
// Package xcept routes strongly typed error values to the nearest active
// handler for that exact type, without the frames in between having to
// mention the type. A reporter hands its value to a Stack and returns an
// opaque token inside a Result; the scope that accepted the value resolves
// the token once control is back at the handling call.
//
// # Scopes and reporting
//
// A Stack is a LIFO list of Acceptors owned by one goroutine:
//
//	s := xcept.NewStack()
//	g := s.Push(&storage) // innermost scope
//	defer g.Release()     // popped on every exit path, panics included
//
// Report (or Fail, which wraps the token in a Result) offers the value to
// every scope, innermost first, until one answers Relocated or Discarded.
// Types match by exact reflect.Type identity; there is no interface or
// conversion matching. A report no scope accepts still yields a token, and
// unwrapping a Result that carries it panics with CodeUnhandled.
//
// # Handling
//
//	res := xcept.TryOrHandleOne(s,
//	    func() xcept.Result[int] { return xcept.Fail[int](s, int32(5)) },
//	    func(e int32) xcept.Result[int] { return xcept.Ok(int(e) * 2) },
//	)
//	res.Unwrap() // 10
//
// For several types, build Handlers once and reuse them; every TryOrHandle
// call instantiates its own storage:
//
//	h := xcept.NewBuilder(xcept.On(onInt32)).
//	    Handle(xcept.On(onString)).
//	    Handle(xcept.CatchAny(onAnything)).
//	    Build()
//	res := xcept.TryOrHandle(s, produce, h)
//
// Handlers fire in declaration order; on a duplicate type the first one wins.
// A storage keeps only the last report of its type, so a Result carrying the
// token of an earlier, overwritten report is left unresolved.
//
// # Carrying the stack
//
// NewContext / FromContext carry a Stack through a context.Context for code
// that already threads one. Neither a Stack nor a Result may cross goroutines.
//
// # Failures
//
// Broken contracts (out-of-order Release, double Release, UncheckedToken on a
// value, reusing a resolved Composite) panic with an *Error whose Code is a
// defect code. Recover turns those panics back into errors; CodeOf, IsDefect
// and IsUnhandled classify them.
package xcept
