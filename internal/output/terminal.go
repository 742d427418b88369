package output

import (
	"io"
	"os"
)

// IsTerminal reports whether w is attached to a terminal. Non-file
// writers (buffers, pipes wrapped in other types) are never terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return checkIsTerminal(f)
}

// SchemeFor picks a color scheme for w: colors on a terminal unless
// noColor is set, plain text otherwise.
func SchemeFor(w io.Writer, noColor bool) *ColorScheme {
	if noColor || !IsTerminal(w) {
		return NoColorScheme()
	}
	return DefaultColorScheme()
}
