// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/cli/output"
)

// CommandNotFound is the handler for unknown subcommands of a command group.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	ReportUnknown(cmd, command)
}

// ReportUnknown prints the unknown command name and the visible subcommands
// of cmd whose name or alias shares a prefix with it.
func ReportUnknown(cmd *cli.Command, command string) {
	w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
	output.Printf(w, "\nUnknown command: %s\n", command)

	if candidates := suggest(cmd, command); len(candidates) > 0 {
		output.Hint(w, "did you mean %s?", strings.Join(candidates, " or "))
	}
}

func suggest(cmd *cli.Command, command string) []string {
	if command == "" {
		return nil
	}

	return lo.FilterMap(cmd.VisibleCommands(), func(sub *cli.Command, _ int) (string, bool) {
		return sub.Name, lo.SomeBy(sub.Names(), func(name string) bool {
			return strings.HasPrefix(name, command) || strings.HasPrefix(command, name)
		})
	})
}
