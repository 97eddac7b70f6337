// multihandler.go - composing several typed handlers into one scope.
//
// Go methods cannot introduce type parameters, so a handler is first bound
// to its type with On (or CatchAny) and then appended to a Builder:
//
//	handlers := xcept.NewBuilder(xcept.On(func(n int32) xcept.Result[string] { ... })).
//		Handle(xcept.On(func(s string) xcept.Result[string] { ... })).
//		Build()
//	res := xcept.TryOrHandle(s, produce, handlers)
//
// Handlers is an immutable template. Every dispatch instantiates a fresh
// Composite: a left-nested binary chain of leaves, probed left before right,
// so handlers fire in declaration order and the first declared handler wins
// when two share a type.
package xcept

import (
	"reflect"
	"slices"
)

// leaf is one node of a composite chain.
type leaf[T any] interface {
	Acceptor
	resolve(tok Token) (Result[T], bool)
	captured() (Token, bool)
}

// Case is a handler bound to the type it accepts.
type Case[T any] struct {
	typ  reflect.Type
	make func() leaf[T]
}

// Type returns the accepted type, or nil for a catch-all.
func (c Case[T]) Type() reflect.Type { return c.typ }

// On binds h to errors of exactly type E.
func On[E, T any](h func(E) Result[T]) Case[T] {
	if h == nil {
		panic(defect(CodeNilHandler, "On with nil handler", "type", reflect.TypeFor[E]().String()))
	}
	return Case[T]{
		typ:  reflect.TypeFor[E](),
		make: func() leaf[T] { return &bound[E, T]{handle: h} },
	}
}

// CatchAny binds h to errors of any type. The value itself is dropped; h
// receives the token and type only. Place it last: it accepts everything, so
// cases after it never fire.
func CatchAny[T any](h func(Caught) Result[T]) Case[T] {
	if h == nil {
		panic(defect(CodeNilHandler, "CatchAny with nil handler"))
	}
	return Case[T]{
		make: func() leaf[T] { return &catchAny[T]{handle: h} },
	}
}

type bound[E, T any] struct {
	storage Storage[E]
	handle  func(E) Result[T]
}

func (b *bound[E, T]) TryAccept(r *Reported) Disposition { return b.storage.TryAccept(r) }

func (b *bound[E, T]) resolve(tok Token) (Result[T], bool) {
	v, ok := b.storage.TakeIf(tok)
	if !ok {
		return Result[T]{}, false
	}
	return b.handle(v), true
}

func (b *bound[E, T]) captured() (Token, bool) { return b.storage.Token() }

type catchAny[T any] struct {
	all    CatchAll
	handle func(Caught) Result[T]
}

func (c *catchAny[T]) TryAccept(r *Reported) Disposition { return c.all.TryAccept(r) }

func (c *catchAny[T]) resolve(tok Token) (Result[T], bool) {
	caught, ok := c.all.Caught()
	if !ok || caught.Token != tok {
		return Result[T]{}, false
	}
	c.all = CatchAll{}
	return c.handle(caught), true
}

func (c *catchAny[T]) captured() (Token, bool) {
	caught, ok := c.all.Caught()
	return caught.Token, ok
}

// seq is the typed counterpart of Sequence: it also resolves left first.
type seq[T any] struct {
	left, right leaf[T]
}

func (q *seq[T]) TryAccept(r *Reported) Disposition {
	if d := q.left.TryAccept(r); d != NotAccepted {
		return d
	}
	return q.right.TryAccept(r)
}

func (q *seq[T]) resolve(tok Token) (Result[T], bool) {
	if res, ok := q.left.resolve(tok); ok {
		return res, true
	}
	return q.right.resolve(tok)
}

func (q *seq[T]) captured() (Token, bool) {
	if tok, ok := q.left.captured(); ok {
		return tok, true
	}
	return q.right.captured()
}

// Builder accumulates cases in declaration order. It is a value: Handle
// returns a new Builder and leaves the receiver untouched.
type Builder[T any] struct {
	cases []Case[T]
}

// NewBuilder starts a builder with its first case.
func NewBuilder[T any](first Case[T]) Builder[T] {
	return Builder[T]{}.Handle(first)
}

// Handle appends c after the cases already declared.
func (b Builder[T]) Handle(c Case[T]) Builder[T] {
	if c.make == nil {
		panic(defect(CodeNilHandler, "Handle with zero Case", "index", len(b.cases)))
	}
	out := make([]Case[T], len(b.cases), len(b.cases)+1)
	copy(out, b.cases)
	return Builder[T]{cases: append(out, c)}
}

// Build freezes the builder into an immutable Handlers value.
func (b Builder[T]) Build() Handlers[T] {
	return Handlers[T]{cases: slices.Clone(b.cases)}
}

// Handlers is an immutable, copyable set of cases. The zero value handles
// nothing.
type Handlers[T any] struct {
	cases []Case[T]
}

// Len returns the number of cases.
func (h Handlers[T]) Len() int { return len(h.cases) }

// Types returns the accepted types in declaration order (nil for catch-alls).
func (h Handlers[T]) Types() []reflect.Type {
	out := make([]reflect.Type, len(h.cases))
	for i, c := range h.cases {
		out[i] = c.typ
	}
	return out
}

// New instantiates a fresh, single-use Composite.
func (h Handlers[T]) New() *Composite[T] {
	if len(h.cases) == 0 {
		return &Composite[T]{}
	}
	root := h.cases[0].make()
	for _, c := range h.cases[1:] {
		root = &seq[T]{left: root, right: c.make()}
	}
	return &Composite[T]{root: root}
}

// Composite is an instantiated handler chain: one Acceptor that also knows
// how to resolve a token against whatever its leaves captured. It is single
// use; once Resolve has run it must not be pushed again.
type Composite[T any] struct {
	root leaf[T]
	used bool
}

func (c *Composite[T]) TryAccept(r *Reported) Disposition {
	if c.used {
		panic(defect(CodeCompositeReused, "report offered to a consumed composite", "token", r.Token))
	}
	if c.root == nil {
		return NotAccepted
	}
	return c.root.TryAccept(r)
}

// Resolve finds the leaf whose captured token equals tok, moves its value
// out and runs its handler. It reports false when no leaf matches or the
// composite was already resolved.
func (c *Composite[T]) Resolve(tok Token) (Result[T], bool) {
	if c.used || c.root == nil {
		c.used = true
		return Result[T]{}, false
	}
	c.used = true
	return c.root.resolve(tok)
}

// captured reports the token held by the first leaf that still has one.
func (c *Composite[T]) captured() (Token, bool) {
	if c.root == nil {
		return 0, false
	}
	return c.root.captured()
}

// TryOrHandle runs produce with a fresh instance of handlers as one scope and
// resolves an error Result against it. Unmatched errors are returned
// unchanged.
func TryOrHandle[T any](s *Stack, produce func() Result[T], handlers Handlers[T]) Result[T] {
	if produce == nil {
		panic(defect(CodeNilHandler, "TryOrHandle needs produce"))
	}
	c := handlers.New()
	res := runScoped(s, c, produce)
	if res.IsOk() {
		return res
	}
	tok := res.UncheckedToken()
	out, ok := c.Resolve(tok)
	if !ok {
		if captured, full := c.captured(); full {
			s.debug("xcept: stale token, handler skipped",
				"token", tok, "captured", captured)
		}
		return res
	}
	s.resolved()
	return out
}
