package xcept

// TryOrHandleOne runs produce with a fresh Storage[E] as the innermost scope.
//
// If produce returns an error Result whose token is the one the storage
// captured, handle receives the value and its Result is returned. Errors of
// any other type go to the scopes active before this call; they are never
// swallowed here. The storage keeps only the last report of E, so a Result
// carrying the token of an earlier, shadowed report is returned unresolved.
func TryOrHandleOne[T, E any](s *Stack, produce func() Result[T], handle func(E) Result[T]) Result[T] {
	if handle == nil || produce == nil {
		panic(defect(CodeNilHandler, "TryOrHandleOne needs produce and handle"))
	}
	var storage Storage[E]
	res := runScoped(s, &storage, produce)
	if res.IsOk() {
		return res
	}
	tok := res.UncheckedToken()
	v, ok := storage.TakeIf(tok)
	if !ok {
		if captured, full := storage.Token(); full {
			s.debug("xcept: stale token, handler skipped",
				"token", tok, "captured", captured)
		}
		return res
	}
	s.resolved()
	return handle(v)
}

// runScoped pushes a, runs produce and releases the scope on every exit path.
func runScoped[T any](s *Stack, a Acceptor, produce func() Result[T]) Result[T] {
	g := s.Push(a)
	defer g.Release()
	return produce()
}
