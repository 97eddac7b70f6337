// format.go - fmt.Formatter implementations for *Error and Result.
//
//	%s, %v   -> concise string (Error() / value or token).
//	%+v      -> verbose form:
//	             code=<code> msg="<message>"
//	             ctx: key1=val1 key2=val2 ...
//	%q       -> quoted concise string.
package xcept

import (
	"fmt"
	"io"
)

func formatConcise(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}

func formatVerbose(w io.Writer, code Code, msg string, ctx fields) {
	if code != "" {
		_, _ = fmt.Fprintf(w, "code=%s ", code)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", msg)

	if len(ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.code, e.msg, e.ctx)
			return
		}
		formatConcise(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e.Error())
	}
}

// String renders "Ok(<value>)" or "Error(#<token>)".
func (r Result[T]) String() string {
	if r.isErr {
		return fmt.Sprintf("Error(#%d)", r.token)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Format prints the value verbatim for %+v, and String() otherwise.
func (r Result[T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			if r.isErr {
				_, _ = fmt.Fprintf(s, "state=error token=%d", r.token)
			} else {
				_, _ = fmt.Fprintf(s, "state=ok value=%+v", r.value)
			}
			return
		}
		formatConcise(s, r.String())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.String())
	default:
		formatConcise(s, r.String())
	}
}
