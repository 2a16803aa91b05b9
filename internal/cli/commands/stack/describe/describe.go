// Package describe provides the stack describe command.
package describe

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/infra"
)

// Client is the interface for the describe command.
type Client interface {
	cfnapi.DescribeStacksAPI
}

// Runner executes the describe command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the describe command.
type Options struct {
	// Name is a stack name or ID. Empty describes every live stack.
	Name   string
	Paging cliinternal.PagingOptions
	Output cliinternal.OutputOptions
}

// Columns are the text and table columns of the default selection.
//
//nolint:gochecknoglobals // read-only column set
var Columns = []string{"StackName", "StackStatus", "StackStatusReason", "LastUpdatedTime"}

// Command returns the describe command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Aliases:   []string{"show"},
		Usage:     "Describe stacks",
		ArgsUsage: "[stack-name]",
		Description: `Describe one stack, or every live stack when no name is given.

Deleted stacks can only be described by their stack ID.

EXAMPLES:
   cfnctl stack describe                             Describe all stacks
   cfnctl stack describe prod-network                Describe a single stack
   cfnctl stack describe prod-network --select '*'   Print the raw API response
   cfnctl stack describe prod-network -o text --columns StackName,Outputs.0.OutputValue`,
		Flags:  cliinternal.PagingFlags(),
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
		Name:   cmd.Args().First(),
		Paging: cliinternal.ParsePagingOptions(cmd),
		Output: out,
	})
}

// Run executes the describe command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.DescribeStacksInput, cfnapi.DescribeStacksOutput]{
		Operation: cfnapi.DescribeStacks(r.Client),
		Request:   &cfnapi.DescribeStacksInput{StackName: lo.EmptyableToPtr(opts.Name)},
		Selector:  cfnapi.SelectStacks(),
		Columns:   Columns,
	}, opts.Paging, opts.Output)
}
