// Package export provides the export command group.
package export

import (
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/cli/commands/export/list"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
)

// Command returns the export command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "export",
		Aliases: []string{"exports"},
		Usage:   "Inspect cross-stack exports",
		Commands: []*cli.Command{
			list.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}
