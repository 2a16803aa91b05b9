// Package stack provides the stack command group.
package stack

import (
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	stackdelete "github.com/mpyw/cfnctl/internal/cli/commands/stack/delete"
	"github.com/mpyw/cfnctl/internal/cli/commands/stack/describe"
	"github.com/mpyw/cfnctl/internal/cli/commands/stack/events"
	"github.com/mpyw/cfnctl/internal/cli/commands/stack/list"
	"github.com/mpyw/cfnctl/internal/cli/commands/stack/resources"
)

// Command returns the stack command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "stack",
		Aliases: []string{"stacks"},
		Usage:   "Inspect and delete CloudFormation stacks",
		Commands: []*cli.Command{
			list.Command(),
			describe.Command(),
			events.Command(),
			resources.Command(),
			stackdelete.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}
