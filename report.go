// report.go - reporting a typed error value to the innermost matching scope.
//
// Reporting allocates a token, wraps the value in a borrowed Reported view and
// offers it to every scope from innermost to outermost. The first acceptor
// that answers anything other than NotAccepted ends the scan. Matching is by
// exact reflect.Type identity: an io.EOF reported as error is tagged with the
// error interface type, reported through ReportAny it is tagged *errors.errorString.
package xcept

import (
	"reflect"
)

// Disposition is an acceptor's answer to a Reported view.
type Disposition uint8

const (
	// NotAccepted: the scan continues with the next outer scope.
	NotAccepted Disposition = iota
	// Relocated: the acceptor moved the value into its own storage.
	Relocated
	// Discarded: the acceptor recorded metadata only; the value is dropped.
	Discarded
)

func (d Disposition) String() string {
	switch d {
	case NotAccepted:
		return "not_accepted"
	case Relocated:
		return "relocated"
	case Discarded:
		return "discarded"
	default:
		return "invalid"
	}
}

// Reported is the ephemeral view of one reported error. It is only valid while
// the scan that created it is running; acceptors must not retain it.
type Reported struct {
	Token Token
	Type  reflect.Type

	slot  any // *E where E is Type
	moved bool
	done  bool
}

// Value returns a copy of the reported value, or nil once it was moved.
func (r *Reported) Value() any {
	r.check()
	if r.moved {
		return nil
	}
	return reflect.ValueOf(r.slot).Elem().Interface()
}

func (r *Reported) check() {
	if r.done {
		panic(defect(CodeReleased, "report used after its scan", "token", r.Token))
	}
}

// Move transfers the reported value out of r. It fails when E is not
// exactly r.Type or when the value was already moved.
func Move[E any](r *Reported) (E, bool) {
	var zero E
	r.check()
	if r.moved {
		return zero, false
	}
	p, ok := r.slot.(*E)
	if !ok || r.Type != reflect.TypeFor[E]() {
		return zero, false
	}
	v := *p
	*p = zero
	r.moved = true
	return v, true
}

// Report sends v to the innermost scope accepting type E and returns the
// token identifying this report. When no scope accepts, the token is returned
// anyway and any Result carrying it stays unresolvable.
func Report[E any](s *Stack, v E) Token {
	return s.report(reflect.TypeFor[E](), &v)
}

// ReportAny reports v tagged with its dynamic type. v must not be nil.
func ReportAny(s *Stack, v any) Token {
	if v == nil {
		panic(defect(CodeNilReport, "ReportAny of nil value"))
	}
	rv := reflect.ValueOf(v)
	slot := reflect.New(rv.Type())
	slot.Elem().Set(rv)
	return s.report(rv.Type(), slot.Interface())
}

func (s *Stack) report(t reflect.Type, slot any) Token {
	if s == nil {
		panic(defect(CodeNoStack, "report on nil stack", "type", t.String()))
	}
	s.next++
	r := &Reported{Token: s.next, Type: t, slot: slot}
	s.outstanding++
	defer r.finish()

	for i := len(s.scopes) - 1; i >= 0; i-- {
		switch d := s.scopes[i].acc.TryAccept(r); d {
		case NotAccepted:
			continue
		case Relocated, Discarded:
			return r.Token
		default:
			e := FieldToken.Set(defect(CodeDefect, "acceptor returned invalid disposition"), r.Token)
			panic(FieldType.Set(e, t.String()).With("disposition", uint8(d)))
		}
	}
	s.debug("xcept: error not accepted by any scope",
		"token", r.Token, "type", t.String(), "depth", len(s.scopes))
	return r.Token
}

// finish drops whatever is left in the slot and invalidates the view.
func (r *Reported) finish() {
	if !r.moved {
		v := reflect.ValueOf(r.slot).Elem()
		v.SetZero()
	}
	r.slot = nil
	r.done = true
}
