package terminal

import (
	"io"
	"strings"

	"golang.org/x/term"
)

// Supports256 reports whether TERM advertises 256-color support.
// A nil getenv is treated as an empty environment.
func Supports256(getenv func(string) string) bool {
	if getenv == nil {
		return false
	}
	return strings.Contains(getenv("TERM"), "256")
}

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
