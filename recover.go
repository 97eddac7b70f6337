package xcept

// Recover runs fn and converts a panic carrying an *Error raised by this
// package into a returned error. Any other panic value is re-raised.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if xe, ok := r.(*Error); ok {
			err = xe
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
