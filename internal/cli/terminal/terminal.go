// Package terminal detects whether output goes to an interactive terminal.
package terminal

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Fder is an interface for types that have a file descriptor.
type Fder interface {
	Fd() uintptr
}

// GetSize returns the terminal width and height for the given file descriptor.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var GetSize = term.GetSize

// IsTTY checks if the file descriptor is a TTY.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var IsTTY = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Height returns the terminal height of w.
// The second result is false when w is not a terminal or its size is unknown.
func Height(w io.Writer) (int, bool) {
	f, ok := w.(Fder)
	if !ok || !IsTTY(f.Fd()) {
		return 0, false
	}

	_, height, err := GetSize(int(f.Fd()))
	if err != nil || height <= 0 {
		return 0, false
	}

	return height, true
}
