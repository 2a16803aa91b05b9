package output

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/mpyw/cfnctl/internal/cli/colors"
)

// Diff returns a colored unified diff from oldContent to newContent.
// It is empty when the contents are equal.
func Diff(oldName, newName, oldContent, newContent string) string {
	edits := udiff.Strings(oldContent, newContent)

	unified, err := udiff.ToUnifiedDiff(oldName, newName, oldContent, edits, udiff.DefaultContextLines)
	if err != nil {
		return ""
	}

	return colorize(unified.String())
}

func colorize(diff string) string {
	if diff == "" {
		return ""
	}

	var b strings.Builder

	for line := range strings.Lines(diff) {
		body := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			body = colors.DiffHeader(body)
		case strings.HasPrefix(body, "@@"):
			body = colors.DiffHunk(body)
		case strings.HasPrefix(body, "-"):
			body = colors.DiffRemoved(body)
		case strings.HasPrefix(body, "+"):
			body = colors.DiffAdded(body)
		}

		b.WriteString(body)
		b.WriteString("\n")
	}

	return b.String()
}
