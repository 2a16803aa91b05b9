package output

import (
	"errors"
	"fmt"
	"strings"
)

// Format represents the output format.
type Format string

const (
	// FormatJSON outputs one indented JSON document per record item. It is the default.
	FormatJSON Format = "json"
	// FormatYAML outputs a YAML document stream.
	FormatYAML Format = "yaml"
	// FormatText is the human-readable label: value format.
	FormatText Format = "text"
	// FormatTable renders items as rows of an ASCII table.
	FormatTable Format = "table"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted format names in help order.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatText), string(FormatTable)}
}

// ParseFormat parses a format name case-insensitively.
// An empty string selects FormatJSON.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatJSON, nil
	}

	if f.Columnar() || f == FormatJSON || f == FormatYAML {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
}

// Columnar reports whether f renders items as rows that --columns can shape.
func (f Format) Columnar() bool {
	return f == FormatText || f == FormatTable
}
