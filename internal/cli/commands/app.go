// Package commands provides the command-line interface for cfnctl.
package commands

import (
	"context"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/cli/commands/export"
	"github.com/mpyw/cfnctl/internal/cli/commands/extension"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/cli/commands/stack"
	"github.com/mpyw/cfnctl/internal/cli/commands/template"
	"github.com/mpyw/cfnctl/internal/logging"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "cfnctl",
		Usage:   "Page through AWS CloudFormation list and describe APIs",
		Version: "0.1.0",
		Description: `cfnctl calls CloudFormation read APIs and prints the results.

PAGING:
   List commands follow continuation tokens until the results are exhausted.
   Use --no-auto-iteration to fetch a single page, or --next-token to resume
   from a token printed by a previous single-page run.

SELECTING:
   Every command prints a sensible field of the response by default.
   --select '*' prints the whole response, --select Field prints another
   response field and --select '^Param' echoes a request parameter once the
   call has completed.`,
		Flags: cliinternal.GlobalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
			if w == nil {
				w = os.Stderr
			}

			return logging.WithLogger(ctx, logging.New(w, cmd.Bool(cliinternal.FlagDebug))), nil
		},
		Commands: []*cli.Command{
			stack.Command(),
			template.Command(),
			extension.Command(),
			export.Command(),
		},
		CommandNotFound: func(_ context.Context, cmd *cli.Command, command string) {
			_ = cli.ShowAppHelp(cmd)
			cliinternal.ReportUnknown(cmd, command)
		},
	}
}

// App is the main CLI application.
var App = MakeApp()
