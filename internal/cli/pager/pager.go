// Package pager provides terminal pager functionality for long outputs.
package pager

import (
	"bytes"
	"io"
	"strings"

	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/cfnctl/internal/cli/terminal"
)

// PageFunc displays content in an interactive pager.
// This is a variable to allow mocking in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var PageFunc = func(content string) error {
	return moor.PageFromString(content, moor.Options{})
}

// WithPagerWriter executes fn with pager support.
//
// Output goes straight to stdout when disabled is true or stdout is not a
// terminal. Otherwise it is buffered; content that fits the terminal height is
// written as-is and anything longer is shown through moor. Whatever fn wrote
// before failing is still flushed so partial pages are not lost.
func WithPagerWriter(stdout io.Writer, disabled bool, fn func(w io.Writer) error) error {
	if disabled {
		return fn(stdout)
	}

	height, ok := terminal.Height(stdout)
	if !ok {
		return fn(stdout)
	}

	var buf bytes.Buffer

	fnErr := fn(&buf)
	if buf.Len() == 0 {
		return fnErr
	}

	if fnErr != nil || fits(buf.String(), height) {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return err
		}

		return fnErr
	}

	return PageFunc(buf.String())
}

// fits reports whether content fits above the prompt line.
func fits(content string, height int) bool {
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}

	return lines < height
}
