// Package jsonutil normalizes JSON templates for comparison.
//
// Keys are sorted alphabetically by json.Marshal, so two documents that differ
// only in key order or whitespace normalize to the same text.
package jsonutil

import (
	"encoding/json"
	"io"

	"github.com/mpyw/cfnctl/internal/cli/output"
)

// Normalize re-indents a JSON document with sorted keys.
// ok is false and s is returned unchanged when s is not JSON.
func Normalize(s string) (string, bool) {
	var data any
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return s, false
	}

	formatted, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return s, false
	}

	return string(formatted) + "\n", true
}

// NormalizePair normalizes both documents, or returns both unchanged with a
// warning on errW when either one is not JSON.
func NormalizePair(a, b string, errW io.Writer) (string, string) {
	na, okA := Normalize(a)
	nb, okB := Normalize(b)

	if okA && okB {
		return na, nb
	}

	output.Warning(errW, "--parse-json has no effect: template is not JSON")

	return a, b
}
