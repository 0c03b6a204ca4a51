package log

import (
	"fmt"
	"io"
)

// Logger writes analysis progress lines (lexicon size, source counts,
// per-file keep/exclude tallies) when Enabled is true. Progress goes to W,
// typically stderr, never into the report itself. The zero value discards
// everything.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// New returns a logger that writes to w when verbose is true.
func New(verbose bool, w io.Writer) *Logger {
	return &Logger{Enabled: verbose, W: w}
}

// Printf writes one formatted progress line. It is a no-op when the logger
// is disabled.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
