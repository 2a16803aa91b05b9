// Package extension provides the extension command group.
package extension

import (
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/cli/commands/extension/describe"
	"github.com/mpyw/cfnctl/internal/cli/commands/extension/list"
	"github.com/mpyw/cfnctl/internal/cli/commands/extension/versions"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
)

// Command returns the extension command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "extension",
		Aliases: []string{"ext", "type"},
		Usage:   "Browse the CloudFormation registry",
		Commands: []*cli.Command{
			list.Command(),
			describe.Command(),
			versions.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}
