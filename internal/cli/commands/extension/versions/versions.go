// Package versions provides the extension versions command.
package versions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	"github.com/mpyw/cfnctl/internal/cli/commands/extension/list"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/infra"
)

// Client is the interface for the versions command.
type Client interface {
	cfnapi.ListTypeVersionsAPI
}

// Runner executes the versions command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the versions command.
type Options struct {
	// Name is a type name or an extension ARN.
	Name   string
	Type   string
	Paging cliinternal.PagingOptions
	Output cliinternal.OutputOptions
}

// Columns are the text and table columns of the default selection.
//
//nolint:gochecknoglobals // read-only column set
var Columns = []string{"VersionId", "IsDefaultVersion", "TimeCreated", "Description"}

// Command returns the versions command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "versions",
		Usage:     "List versions of a registry extension",
		ArgsUsage: "<type-name|arn>",
		Description: `List every registered version of a private extension.

EXAMPLES:
   cfnctl extension versions Acme::S3::Bucket
   cfnctl extension versions Acme::Guard::Hook --type HOOK -o table`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "RESOURCE, MODULE or HOOK",
				Value: string(cfnapi.RegistryTypeResource),
			},
		}, cliinternal.PagingFlags()...),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: cfnctl extension versions <type-name|arn>")
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
		Type:   cmd.String("type"),
		Paging: cliinternal.ParsePagingOptions(cmd),
		Output: out,
	})
}

// Run executes the versions command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	input := &cfnapi.ListTypeVersionsInput{}

	if strings.HasPrefix(opts.Name, "arn:") {
		input.Arn = lo.ToPtr(opts.Name)
	} else {
		typ, err := list.ParseRegistryType(lo.CoalesceOrEmpty(opts.Type, string(cfnapi.RegistryTypeResource)))
		if err != nil {
			return err
		}

		input.TypeName = lo.ToPtr(opts.Name)
		input.Type = typ
	}

	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.ListTypeVersionsInput, cfnapi.ListTypeVersionsOutput]{
		Operation: cfnapi.ListTypeVersions(r.Client),
		Request:   input,
		Selector:  cfnapi.SelectTypeVersionSummaries(),
		Columns:   Columns,
	}, opts.Paging, opts.Output)
}
