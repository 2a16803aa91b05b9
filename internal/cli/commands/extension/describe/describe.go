// Package describe provides the extension describe command.
package describe

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
	"github.com/mpyw/cfnctl/internal/paging"
)

// Client is the interface for the describe command.
type Client interface {
	cfnapi.DescribeTypeAPI
}

// Runner executes the describe command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the describe command.
type Options struct {
	// Name is a type name such as AWS::S3::Bucket, or an extension ARN.
	Name string
	// Type defaults to RESOURCE. Ignored when Name is an ARN.
	Type      string
	VersionID string
	Output    cliinternal.OutputOptions
}

// Command returns the describe command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Aliases:   []string{"show"},
		Usage:     "Describe a registry extension",
		ArgsUsage: "<type-name|arn>",
		Description: `Print the registry entry of an extension, including its schema.

The extension is looked up by type name and kind, or by ARN. Without
--version-id the default version is described.

EXAMPLES:
   cfnctl extension describe AWS::S3::Bucket
   cfnctl extension describe Acme::Guard::Hook --type HOOK
   cfnctl extension describe AWS::S3::Bucket --select Schema -o text`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "RESOURCE, MODULE or HOOK",
				Value: string(cfnapi.RegistryTypeResource),
			},
			&cli.StringFlag{
				Name:  "version-id",
				Usage: "Extension version to describe",
			},
		}, cliinternal.OutputFlags()...),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: cfnctl extension describe <type-name|arn>")
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
		Name:      cmd.Args().First(),
		Type:      cmd.String("type"),
		VersionID: cmd.String("version-id"),
		Output:    out,
	})
}

// Run executes the describe command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	input := &cfnapi.DescribeTypeInput{
		VersionId: lo.EmptyableToPtr(opts.VersionID),
	}

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

	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.DescribeTypeInput, cfnapi.DescribeTypeOutput]{
		Operation: cfnapi.DescribeType(r.Client),
		Request:   input,
		Selector:  paging.WholeResponse[cfnapi.DescribeTypeInput, cfnapi.DescribeTypeOutput](),
	}, cliinternal.PagingOptions{}, opts.Output)
}
