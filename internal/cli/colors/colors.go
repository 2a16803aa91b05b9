// Package colors provides pre-configured color functions for CLI output.
package colors

import "github.com/fatih/color"

//nolint:gochecknoglobals // Immutable color definitions initialized at package load
var (
	// Warning formats text in yellow for warnings and prompts.
	Warning = color.New(color.FgYellow).SprintFunc()

	// Error formats text in red for error messages.
	Error = color.New(color.FgRed).SprintFunc()

	// Success formats text in green for success messages.
	Success = color.New(color.FgGreen).SprintFunc()

	// Info formats text in cyan for hints.
	Info = color.New(color.FgCyan).SprintFunc()

	// FieldLabel formats field labels (e.g., "StackName:") in cyan.
	FieldLabel = color.New(color.FgCyan).SprintFunc()

	// Status formats in-progress stack and resource statuses in yellow.
	Status = color.New(color.FgYellow).SprintFunc()

	// StatusComplete formats *_COMPLETE statuses in green.
	StatusComplete = color.New(color.FgGreen).SprintFunc()

	// StatusFailed formats *_FAILED and ROLLBACK statuses in red.
	StatusFailed = color.New(color.FgRed).SprintFunc()

	// DiffHeader formats diff header lines (---/+++) in cyan.
	DiffHeader = color.New(color.FgCyan).SprintFunc()

	// DiffHunk formats diff hunk markers (@@) in cyan.
	DiffHunk = color.New(color.FgCyan).SprintFunc()

	// DiffAdded formats added lines (+) in green.
	DiffAdded = color.New(color.FgGreen).SprintFunc()

	// DiffRemoved formats removed lines (-) in red.
	DiffRemoved = color.New(color.FgRed).SprintFunc()
)
