package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// WaitForKey blocks until a key is pressed on stdin. It is used to keep the
// console open after a double-click launch.
func WaitForKey(w io.Writer) {
	_, _ = io.WriteString(w, "Press any key to exit...")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		if state, err := term.MakeRaw(fd); err == nil {
			defer func() { _ = term.Restore(fd, state) }()
		}
	}
	var b [1]byte
	_, _ = os.Stdin.Read(b[:])
}
