package xcept

import (
	"log/slog"
)

// Option configures a Stack.
type Option func(*Stack)

// WithLogger sends debug records about unaccepted and stale reports to l.
// A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stack) { s.logger = l }
}

// WithTokenStart seeds the token counter; the first report receives start+1.
func WithTokenStart(start Token) Option {
	return func(s *Stack) { s.next = start }
}
