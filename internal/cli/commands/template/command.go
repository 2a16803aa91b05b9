// Package template provides the template command group.
package template

import (
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/cli/commands/template/diff"
	"github.com/mpyw/cfnctl/internal/cli/commands/template/get"
	"github.com/mpyw/cfnctl/internal/cli/commands/template/summary"
	"github.com/mpyw/cfnctl/internal/cli/commands/template/validate"
)

// Command returns the template command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "template",
		Aliases: []string{"tpl"},
		Usage:   "Retrieve, validate and compare templates",
		Commands: []*cli.Command{
			get.Command(),
			validate.Command(),
			summary.Command(),
			diff.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}
