// Package confirm provides confirmation prompts for destructive operations.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mpyw/cfnctl/internal/cli/colors"
)

// Prompter handles confirmation prompts.
//
// AccountID, Region and Profile describe where the action will land. The
// target line is only printed when both AccountID and Region are known.
type Prompter struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	AccountID string
	Region    string
	Profile   string
}

// Confirm displays a confirmation prompt and returns true if the user confirms.
// If skipConfirm is true, returns true without prompting.
func (p *Prompter) Confirm(message string, skipConfirm bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	p.printTarget()
	_, _ = fmt.Fprintf(p.Stderr, "%s %s [y/N]: ", colors.Warning("?"), message)

	return p.readAnswer()
}

// ConfirmDelete confirms a delete operation with a warning.
func (p *Prompter) ConfirmDelete(target string, skipConfirm bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	p.printTarget()
	_, _ = fmt.Fprintf(p.Stderr, "%s This will permanently delete: %s\n", colors.Error("!"), target)
	_, _ = fmt.Fprintf(p.Stderr, "%s Continue? [y/N]: ", colors.Warning("?"))

	return p.readAnswer()
}

func (p *Prompter) printTarget() {
	if p.AccountID == "" || p.Region == "" {
		return
	}

	target := p.AccountID + " / " + p.Region
	if p.Profile != "" {
		target += " (profile: " + p.Profile + ")"
	}

	_, _ = fmt.Fprintf(p.Stderr, "%s Target: %s\n", colors.Info("i"), target)
}

func (p *Prompter) readAnswer() (bool, error) {
	response, err := bufio.NewReader(p.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes", nil
}
