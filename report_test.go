package xcept

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type myInt int

func TestReport_InnermostScopeWins(t *testing.T) {
	t.Parallel()
	s := NewStack()

	var outer, inner Storage[int]
	gOuter := s.Push(&outer)
	gi := s.Push(&inner)
	tok := Report(s, 7)
	gi.Release()
	gOuter.Release()

	_, v, ok := inner.Take()
	require.True(t, ok)
	require.Equal(t, 7, v)
	_, full := outer.Token()
	require.False(t, full, "outer scope must not see a report the inner one accepted")

	require.Equal(t, Token(1), tok)
}

func TestReport_SkipsNonMatchingScopes(t *testing.T) {
	t.Parallel()
	s := NewStack()

	var outer Storage[string]
	var inner Storage[int]
	gOuter := s.Push(&outer)
	gi := s.Push(&inner)
	tok := Report(s, "x")
	gi.Release()
	gOuter.Release()

	_, full := inner.Token()
	require.False(t, full)
	got, v, ok := outer.Take()
	require.True(t, ok)
	require.Equal(t, tok, got)
	require.Equal(t, "x", v)
}

func TestReport_ExactTypeIdentity(t *testing.T) {
	t.Parallel()
	s := NewStack()

	t.Run("named_type_is_not_underlying", func(t *testing.T) {
		var st Storage[int]
		g := s.Push(&st)
		Report(s, myInt(3))
		g.Release()
		_, full := st.Token()
		require.False(t, full)
	})

	t.Run("static_interface_tag", func(t *testing.T) {
		var st Storage[error]
		g := s.Push(&st)
		Report[error](s, io.EOF)
		g.Release()
		_, v, ok := st.Take()
		require.True(t, ok)
		require.Same(t, io.EOF, v)
	})

	t.Run("dynamic_tag_ignores_interface_storage", func(t *testing.T) {
		var iface Storage[error]
		var concrete Storage[*fs.PathError]
		gi := s.Push(&iface)
		gc := s.Push(&concrete)
		perr := &fs.PathError{Op: "open", Path: "/nope", Err: fs.ErrNotExist}
		ReportAny(s, error(perr))
		gc.Release()
		gi.Release()

		_, full := iface.Token()
		require.False(t, full)
		_, v, ok := concrete.Take()
		require.True(t, ok)
		require.Same(t, perr, v)
	})
}

func TestReport_RelocatedMovesValue(t *testing.T) {
	t.Parallel()
	s := NewStack()

	var before, after any
	var moved []string
	acc := AcceptorFunc(func(r *Reported) Disposition {
		before = r.Value()
		v, ok := Move[[]string](r)
		require.True(t, ok)
		moved = v
		after = r.Value()
		_, again := Move[[]string](r)
		require.False(t, again, "a value can be moved only once")
		return Relocated
	})
	g := s.Push(acc)
	Report(s, []string{"a", "b"})
	g.Release()

	require.Equal(t, []string{"a", "b"}, before)
	require.Nil(t, after)
	require.Equal(t, []string{"a", "b"}, moved)
}

func TestReport_CatchAllDiscards(t *testing.T) {
	t.Parallel()
	s := NewStack()

	var all CatchAll
	var st Storage[float64]
	ga := s.Push(&all)
	gs := s.Push(&st)
	tok := Report(s, 2.5) // inner storage takes it
	tok2 := Report(s, "x")
	gs.Release()
	ga.Release()

	c, ok := all.Caught()
	require.True(t, ok)
	require.Equal(t, Caught{Token: tok2, Type: reflect.TypeFor[string]()}, c)
	got, _ := st.Token()
	require.Equal(t, tok, got)
}

func TestReport_SequenceFirstAcceptorWins(t *testing.T) {
	t.Parallel()
	s := NewStack()

	var left, right Storage[int]
	var other Storage[string]
	g := s.Push(Sequence{Left: Sequence{Left: &other, Right: &left}, Right: &right})
	Report(s, 1)
	g.Release()

	_, full := left.Token()
	require.True(t, full)
	_, full = right.Token()
	require.False(t, full)
}

func TestReport_UnacceptedIsLoggedAndOutstanding(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewStack(WithLogger(logger))

	tok := Report(s, "orphan")
	require.Equal(t, Token(1), tok)
	require.Equal(t, 1, s.Outstanding())
	require.Contains(t, buf.String(), "not accepted by any scope")
	require.Contains(t, buf.String(), "type=string")
	require.Contains(t, buf.String(), "token=1")
}

func TestReport_TokensAreUniqueAndWrap(t *testing.T) {
	t.Parallel()
	s := NewStack(WithTokenStart(math.MaxUint32 - 1))

	got := []Token{Report(s, 1), Report(s, 2), Report(s, 3)}
	require.Equal(t, []Token{math.MaxUint32, 0, 1}, got)
}

func TestReport_ViewInvalidAfterScan(t *testing.T) {
	t.Parallel()
	s := NewStack()

	var kept *Reported
	g := s.Push(AcceptorFunc(func(r *Reported) Disposition {
		kept = r
		return Discarded
	}))
	Report(s, 1)
	g.Release()

	requirePanicCode(t, CodeReleased, func() { kept.Value() })
	requirePanicCode(t, CodeReleased, func() { Move[int](kept) })
}

func TestReport_MoveWrongType(t *testing.T) {
	t.Parallel()
	s := NewStack()

	var ok bool
	g := s.Push(AcceptorFunc(func(r *Reported) Disposition {
		_, ok = Move[string](r)
		return NotAccepted
	}))
	Report(s, 1)
	g.Release()
	require.False(t, ok)
}

func TestReport_ContractViolations(t *testing.T) {
	t.Parallel()

	requirePanicCode(t, CodeNilReport, func() { ReportAny(NewStack(), nil) })
	requirePanicCode(t, CodeNoStack, func() { Report[int](nil, 1) })

	s := NewStack()
	g := s.Push(AcceptorFunc(func(*Reported) Disposition { return Disposition(9) }))
	xe := requirePanicCode(t, CodeDefect, func() { Report(s, errors.New("x")) })
	g.Release()
	require.Equal(t, Token(1), FieldToken.MustGet(xe))
	require.Equal(t, "error", FieldType.MustGet(xe))
	require.Equal(t, uint8(9), xe.Context()["disposition"])
}

func TestDisposition_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "not_accepted", NotAccepted.String())
	require.Equal(t, "relocated", Relocated.String())
	require.Equal(t, "discarded", Discarded.String())
	require.Equal(t, "invalid", Disposition(42).String())
}
