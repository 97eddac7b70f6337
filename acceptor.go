package xcept

import (
	"reflect"
)

// Acceptor is a handling context: given a Reported view it decides whether to take
// the error and, if so, how.
type Acceptor interface {
	TryAccept(r *Reported) Disposition
}

// AcceptorFunc adapts a function to Acceptor.
type AcceptorFunc func(r *Reported) Disposition

func (f AcceptorFunc) TryAccept(r *Reported) Disposition { return f(r) }

// Storage holds at most one reported value of exactly type E together with
// its token. A later report of E overwrites the earlier pair.
type Storage[E any] struct {
	token Token
	value E
	full  bool
}

func (s *Storage[E]) TryAccept(r *Reported) Disposition {
	if r.Type != reflect.TypeFor[E]() {
		return NotAccepted
	}
	v, ok := Move[E](r)
	if !ok {
		return NotAccepted
	}
	s.token, s.value, s.full = r.Token, v, true
	return Relocated
}

// Token returns the captured token, if any.
func (s *Storage[E]) Token() (Token, bool) { return s.token, s.full }

// Take empties the storage and returns its content.
func (s *Storage[E]) Take() (Token, E, bool) {
	var zero E
	if !s.full {
		return 0, zero, false
	}
	tok, v := s.token, s.value
	s.token, s.value, s.full = 0, zero, false
	return tok, v, true
}

// TakeIf empties the storage only if it holds tok.
func (s *Storage[E]) TakeIf(tok Token) (E, bool) {
	var zero E
	if !s.full || s.token != tok {
		return zero, false
	}
	_, v, _ := s.Take()
	return v, true
}

// Caught is what a CatchAll records about an error: identity and type only.
type Caught struct {
	Token Token
	Type  reflect.Type
}

// CatchAll accepts every report, records its token and type, and drops the
// value.
type CatchAll struct {
	last Caught
	full bool
}

func (c *CatchAll) TryAccept(r *Reported) Disposition {
	c.last, c.full = Caught{Token: r.Token, Type: r.Type}, true
	return Discarded
}

// Caught returns the most recent report seen.
func (c *CatchAll) Caught() (Caught, bool) { return c.last, c.full }

// Sequence offers a report to Left, and to Right only if Left did not accept.
type Sequence struct {
	Left, Right Acceptor
}

func (s Sequence) TryAccept(r *Reported) Disposition {
	if d := s.Left.TryAccept(r); d != NotAccepted {
		return d
	}
	return s.Right.TryAccept(r)
}

var (
	_ Acceptor = (*Storage[int])(nil)
	_ Acceptor = (*CatchAll)(nil)
	_ Acceptor = Sequence{}
	_ Acceptor = AcceptorFunc(nil)
)
