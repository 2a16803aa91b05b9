// Package events provides the stack events command.
package events

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/infra"
)

// Client is the interface for the events command.
type Client interface {
	cfnapi.DescribeStackEventsAPI
}

// Runner executes the events command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the events command.
type Options struct {
	Name   string
	Paging cliinternal.PagingOptions
	Output cliinternal.OutputOptions
}

// Columns are the text and table columns of the default selection.
//
//nolint:gochecknoglobals // read-only column set
var Columns = []string{"Timestamp", "LogicalResourceId", "ResourceType", "ResourceStatus", "ResourceStatusReason"}

// Command returns the events command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "events",
		Aliases:   []string{"log"},
		Usage:     "Show stack events",
		ArgsUsage: "<stack-name>",
		Description: `Show the event history of a stack, newest first.

Long-lived stacks accumulate many events. Use --no-auto-iteration to look
at the most recent page only.

EXAMPLES:
   cfnctl stack events prod-network                       Full event history
   cfnctl stack events prod-network --no-auto-iteration   Latest events only
   cfnctl stack events prod-network -o table              Render as a table`,
		Flags:  cliinternal.PagingFlags(),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: cfnctl stack events <stack-name>")
	}

	out, err := cliinternal.ParseOutputOptions(cmd)
	if err != nil {
		return err
	}

	client, err := infra.NewCloudFormationClient(ctx, cliinternal.AWSOptions(cmd))
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	r := &Runner{
		Client: client,
		Stdout: cmd.Root().Writer,
		Stderr: cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{
		Name:   cmd.Args().First(),
		Paging: cliinternal.ParsePagingOptions(cmd),
		Output: out,
	})
}

// Run executes the events command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.DescribeStackEventsInput, cfnapi.DescribeStackEventsOutput]{
		Operation: cfnapi.DescribeStackEvents(r.Client),
		Request:   &cfnapi.DescribeStackEventsInput{StackName: lo.ToPtr(opts.Name)},
		Selector:  cfnapi.SelectStackEvents(),
		Columns:   Columns,
	}, opts.Paging, opts.Output)
}
