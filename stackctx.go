package xcept

import (
	"context"
)

type stackCtxKey struct{}

// NewContext returns a copy of ctx carrying s, so frames between a handler
// and a reporter need not pass the stack explicitly. The context must stay on
// the goroutine that owns s.
func NewContext(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, stackCtxKey{}, s)
}

// FromContext returns the stack carried by ctx, or nil if there is none.
func FromContext(ctx context.Context) *Stack {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(stackCtxKey{}).(*Stack)
	return s
}

// MustFromContext is FromContext that panics with CodeNoStack instead of
// returning nil.
func MustFromContext(ctx context.Context) *Stack {
	s := FromContext(ctx)
	if s == nil {
		panic(defect(CodeNoStack, "context carries no xcept stack"))
	}
	return s
}
