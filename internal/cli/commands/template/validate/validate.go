// Package validate provides the template validate command.
package validate

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/cli/output"
	"github.com/mpyw/cfnctl/internal/infra"
	"github.com/mpyw/cfnctl/internal/paging"
)

// Client is the interface for the validate command.
type Client interface {
	cfnapi.ValidateTemplateAPI
}

// Runner executes the validate command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the validate command.
type Options struct {
	TemplateBody string
	TemplateURL  string
	Output       cliinternal.OutputOptions
}

// Command returns the validate command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a template",
		Description: `Check a template for syntax errors and print its parameters,
capabilities and description.

EXAMPLES:
   cfnctl template validate --file network.yaml               Validate a local file
   cfnctl template validate --url https://s3.amazonaws.com/bucket/network.yaml
   cat network.yaml | cfnctl template validate --file -        Validate stdin
   cfnctl template validate -f network.yaml --select Parameters`,
		Flags:  append(cliinternal.TemplateSourceFlags(), cliinternal.OutputFlags()...),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	out, err := cliinternal.ParseOutputOptions(cmd)
	if err != nil {
		return err
	}

	opts := Options{
		TemplateURL: cmd.String("url"),
		Output:      out,
	}

	if cliinternal.CountSources(cmd.String("file"), opts.TemplateURL) != 1 {
		return fmt.Errorf("%w: use either --file or --url", cliinternal.ErrTemplateSource)
	}

	if path := cmd.String("file"); path != "" {
		if opts.TemplateBody, err = cliinternal.ReadTemplate(path, os.Stdin); err != nil {
			return err
		}
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

	return r.Run(ctx, opts)
}

// Run executes the validate command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if cliinternal.CountSources(opts.TemplateBody, opts.TemplateURL) != 1 {
		return fmt.Errorf("%w: use either a template body or a template URL", cliinternal.ErrTemplateSource)
	}

	out := opts.Output
	out.NoPager = true

	err := cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.ValidateTemplateInput, cfnapi.ValidateTemplateOutput]{
		Operation: cfnapi.ValidateTemplate(r.Client),
		Request: &cfnapi.ValidateTemplateInput{
			TemplateBody: lo.EmptyableToPtr(opts.TemplateBody),
			TemplateURL:  lo.EmptyableToPtr(opts.TemplateURL),
		},
		Selector: paging.WholeResponse[cfnapi.ValidateTemplateInput, cfnapi.ValidateTemplateOutput](),
	}, cliinternal.PagingOptions{}, out)
	if err != nil {
		return err
	}

	output.Success(r.Stderr, "Template is valid")

	return nil
}
