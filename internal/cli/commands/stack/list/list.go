// Package list provides the stack list command.
package list

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/infra"
)

// Client is the interface for the list command.
type Client interface {
	cfnapi.ListStacksAPI
}

// Runner executes the list command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the list command.
type Options struct {
	Statuses []string
	Paging   cliinternal.PagingOptions
	Output   cliinternal.OutputOptions
}

// Columns are the text and table columns of the default selection.
//
//nolint:gochecknoglobals // read-only column set
var Columns = []string{"StackName", "StackStatus", "CreationTime", "LastUpdatedTime"}

// Command returns the list command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List stacks",
		Description: `List stack summaries, including stacks deleted in the last 90 days.

Results are fetched page by page until CloudFormation returns no further
continuation token.

FILTERING:
   Use --status (repeatable) to keep only stacks in the given states.
   Deleted stacks are hidden unless DELETE_COMPLETE is requested.

EXAMPLES:
   cfnctl stack list                                 List all live stacks
   cfnctl stack list --status CREATE_COMPLETE        Only successfully created stacks
   cfnctl stack list --no-auto-iteration             Fetch only the first page
   cfnctl stack list --next-token TOKEN              Fetch the page after TOKEN
   cfnctl stack list -o table                        Render as a table`,
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:  "status",
				Usage: "Stack status filter (repeatable)",
			},
		}, cliinternal.PagingFlags()...),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
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
		Statuses: cmd.StringSlice("status"),
		Paging:   cliinternal.ParsePagingOptions(cmd),
		Output:   out,
	})
}

// Run executes the list command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	filter, err := parseStatuses(opts.Statuses)
	if err != nil {
		return err
	}

	input := &cfnapi.ListStacksInput{StackStatusFilter: filter}
	if len(filter) == 0 {
		input.StackStatusFilter = liveStatuses()
	}

	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.ListStacksInput, cfnapi.ListStacksOutput]{
		Operation: cfnapi.ListStacks(r.Client),
		Request:   input,
		Selector:  cfnapi.SelectStackSummaries(),
		Columns:   Columns,
	}, opts.Paging, opts.Output)
}

func parseStatuses(values []string) ([]cfnapi.StackStatus, error) {
	known := cfnapi.StackStatus("").Values()
	statuses := make([]cfnapi.StackStatus, 0, len(values))

	for _, v := range values {
		status := cfnapi.StackStatus(strings.ToUpper(strings.TrimSpace(v)))
		if !slices.Contains(known, status) {
			return nil, fmt.Errorf("unknown stack status %q", v)
		}

		statuses = append(statuses, status)
	}

	return lo.Uniq(statuses), nil
}

// liveStatuses is every status except DELETE_COMPLETE.
func liveStatuses() []cfnapi.StackStatus {
	return lo.Without(cfnapi.StackStatus("").Values(), cfnapi.StackStatusDeleteComplete)
}
