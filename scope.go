// scope.go - the scope stack: LIFO registration of acceptors plus the token
// counter.
//
// A Stack belongs to exactly one goroutine. It is never locked: every
// mutation comes from the owning goroutine, including reentrant nesting where
// an inner invocation pushes, runs and releases before control returns to
// the outer one.
//
// Scopes live in an arena (a slice, innermost last). Push returns a Guard
// that remembers the slot index and a push generation; Release validates both
// so that out-of-order or repeated releases fail loudly instead of removing
// somebody else's registration.
package xcept

import (
	"log/slog"
)

// Token is the opaque identifier correlating an error Result with the value
// captured by a scope. Tokens increase monotonically and wrap on overflow.
type Token uint32

// Stack is the per-goroutine scope stack.
//
// The zero value is ready to use and does not log.
type Stack struct {
	scopes      []scope
	gen         uint64
	next        Token
	outstanding int
	logger      *slog.Logger
}

type scope struct {
	acc Acceptor
	gen uint64
}

// NewStack returns an empty stack configured by opts.
func NewStack(opts ...Option) *Stack {
	s := &Stack{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Guard removes exactly one registration from its Stack.
// Release it with defer right after Push.
type Guard struct {
	s     *Stack
	index int
	gen   uint64
}

// Push registers a as the innermost scope. a must stay valid until the
// returned guard is released.
func (s *Stack) Push(a Acceptor) Guard {
	if s == nil {
		panic(defect(CodeNoStack, "push on nil stack"))
	}
	if a == nil {
		panic(defect(CodeNilAcceptor, "push of nil acceptor", "depth", len(s.scopes)))
	}
	s.gen++
	s.scopes = append(s.scopes, scope{acc: a, gen: s.gen})
	return Guard{s: s, index: len(s.scopes) - 1, gen: s.gen}
}

// Release pops the registration made by the matching Push. It panics with a
// defect if the registration is not the innermost one or was already removed.
func (g Guard) Release() {
	s := g.s
	if s == nil {
		panic(defect(CodeNoStack, "release of zero guard"))
	}
	if g.index >= len(s.scopes) || s.scopes[g.index].gen != g.gen {
		panic(g.misuse(CodeReleased, "guard already released"))
	}
	if g.index != len(s.scopes)-1 {
		panic(g.misuse(CodeOutOfOrder, "guard released out of order"))
	}
	s.scopes[g.index] = scope{}
	s.scopes = s.scopes[:g.index]
}

func (g Guard) misuse(code Code, msg string) *Error {
	e := FieldIndex.Set(defect(code, msg), g.index)
	return FieldDepth.Set(e, len(g.s.scopes))
}

// Depth returns the number of active scopes.
func (s *Stack) Depth() int { return len(s.scopes) }

// Outstanding returns the number of reported errors that no handler has
// resolved yet. Orphaned and shadowed reports stay outstanding until Reset.
func (s *Stack) Outstanding() int { return s.outstanding }

// LastToken returns the most recently issued token.
func (s *Stack) LastToken() Token { return s.next }

// Reset drops all scopes and zeroes the counters. Guards issued before
// Reset panic with CodeReleased if released afterwards. Intended for test
// isolation.
func (s *Stack) Reset() {
	clear(s.scopes)
	s.scopes = s.scopes[:0]
	s.next = 0
	s.outstanding = 0
}

// resolved records that a handler consumed one outstanding report.
func (s *Stack) resolved() {
	if s.outstanding > 0 {
		s.outstanding--
	}
}

func (s *Stack) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
