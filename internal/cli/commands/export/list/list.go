// Package list provides the export list command.
package list

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/infra"
)

// Client is the interface for the list command.
type Client interface {
	cfnapi.ListExportsAPI
}

// Runner executes the list command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the list command.
type Options struct {
	Paging cliinternal.PagingOptions
	Output cliinternal.OutputOptions
}

// Columns are the text and table columns of the default selection.
//
//nolint:gochecknoglobals // read-only column set
var Columns = []string{"Name", "Value", "ExportingStackId"}

// Command returns the list command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List exported output values",
		Description: `List the output values exported by stacks in the region.

EXAMPLES:
   cfnctl export list                     List all exports
   cfnctl export list -o table            Render as a table
   cfnctl export list -o text --columns Name,Value`,
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
		Paging: cliinternal.ParsePagingOptions(cmd),
		Output: out,
	})
}

// Run executes the list command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.ListExportsInput, cfnapi.ListExportsOutput]{
		Operation: cfnapi.ListExports(r.Client),
		Request:   &cfnapi.ListExportsInput{},
		Selector:  cfnapi.SelectExports(),
		Columns:   Columns,
	}, opts.Paging, opts.Output)
}
