// Package resources provides the stack resources command.
package resources

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

// Client is the interface for the resources command.
type Client interface {
	cfnapi.ListStackResourcesAPI
}

// Runner executes the resources command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the resources command.
type Options struct {
	Name   string
	Paging cliinternal.PagingOptions
	Output cliinternal.OutputOptions
}

// Columns are the text and table columns of the default selection.
//
//nolint:gochecknoglobals // read-only column set
var Columns = []string{"LogicalResourceId", "PhysicalResourceId", "ResourceType", "ResourceStatus"}

// Command returns the resources command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "resources",
		Aliases:   []string{"res"},
		Usage:     "List stack resources",
		ArgsUsage: "<stack-name>",
		Description: `List the resources that belong to a stack.

EXAMPLES:
   cfnctl stack resources prod-network                              All resources
   cfnctl stack resources prod-network -o text --columns PhysicalResourceId
                                                                    Physical IDs only`,
		Flags:  cliinternal.PagingFlags(),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: cfnctl stack resources <stack-name>")
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

// Run executes the resources command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.ListStackResourcesInput, cfnapi.ListStackResourcesOutput]{
		Operation: cfnapi.ListStackResources(r.Client),
		Request:   &cfnapi.ListStackResourcesInput{StackName: lo.ToPtr(opts.Name)},
		Selector:  cfnapi.SelectStackResourceSummaries(),
		Columns:   Columns,
	}, opts.Paging, opts.Output)
}
