// Package output renders command results and user feedback.
//
// Records are written in json, yaml, text or table format by RecordWriter.
// Messages (Hint, Error, Success and friends) go to stderr with TTY-aware
// coloring from fatih/color, so piped output stays clean.
package output

import (
	"fmt"
	"io"

	"github.com/mpyw/cfnctl/internal/cli/colors"
)

// Writer prints labeled fields.
type Writer struct {
	w io.Writer
}

// New creates a new output writer.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Field prints a labeled field.
func (o *Writer) Field(label, value string) {
	_, _ = fmt.Fprintf(o.w, "%s %s\n", colors.FieldLabel(label+":"), value)
}

// Separator prints a blank line between items.
func (o *Writer) Separator() {
	_, _ = fmt.Fprintln(o.w)
}

// Warning prints "Warning: ..." in yellow.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Warning(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, colors.Warning("Warning: "+fmt.Sprintf(format, args...)))
}

// Hint prints "Hint: ..." in cyan, typically a resume token.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Hint(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, colors.Info("Hint: "+fmt.Sprintf(format, args...)))
}

// Error prints "Error: ..." in red. main uses it for the terminal error.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Error(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, colors.Error("Error: "+fmt.Sprintf(format, args...)))
}

// Success prints a message behind a green checkmark.
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Success(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", colors.Success("✓"), fmt.Sprintf(format, args...))
}

// Failed reports one failed item of a multi-item command.
func Failed(w io.Writer, name string, err error) {
	_, _ = fmt.Fprintf(w, "%s %s: %v\n", colors.Error("Failed"), name, err)
}

// Info prints an unprefixed notice in yellow, such as "No differences.".
//
//nolint:goprintffuncname // intentionally named without 'f' suffix for cleaner API
func Info(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, colors.Warning(fmt.Sprintf(format, args...)))
}

// Print writes msg as is.
func Print(w io.Writer, msg string) {
	_, _ = io.WriteString(w, msg)
}

// Printf writes a formatted message.
func Printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
