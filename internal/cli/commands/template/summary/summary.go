// Package summary provides the template summary command.
package summary

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/infra"
	"github.com/mpyw/cfnctl/internal/paging"
)

// Client is the interface for the summary command.
type Client interface {
	cfnapi.GetTemplateSummaryAPI
}

// Runner executes the summary command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the summary command.
// Exactly one of TemplateBody, TemplateURL and StackName is set.
type Options struct {
	TemplateBody string
	TemplateURL  string
	StackName    string
	Output       cliinternal.OutputOptions
}

// Command returns the summary command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Summarize a template",
		Description: `Show the parameters, resource types, capabilities and declared
transforms of a template or of a deployed stack.

EXAMPLES:
   cfnctl template summary --file network.yaml                 Summarize a local file
   cfnctl template summary --stack prod-network                Summarize a deployed stack
   cfnctl template summary --stack prod-network --select ResourceTypes -o text`,
		Flags: append(append(cliinternal.TemplateSourceFlags(),
			&cli.StringFlag{
				Name:  "stack",
				Usage: "Name or ID of a deployed stack",
			},
		), cliinternal.OutputFlags()...),
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
		StackName:   cmd.String("stack"),
		Output:      out,
	}

	if cliinternal.CountSources(cmd.String("file"), opts.TemplateURL, opts.StackName) != 1 {
		return fmt.Errorf("%w: use one of --file, --url or --stack", cliinternal.ErrTemplateSource)
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

// Run executes the summary command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if cliinternal.CountSources(opts.TemplateBody, opts.TemplateURL, opts.StackName) != 1 {
		return fmt.Errorf("%w: use one of a template body, a template URL or a stack name", cliinternal.ErrTemplateSource)
	}

	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.GetTemplateSummaryInput, cfnapi.GetTemplateSummaryOutput]{
		Operation: cfnapi.GetTemplateSummary(r.Client),
		Request: &cfnapi.GetTemplateSummaryInput{
			TemplateBody: lo.EmptyableToPtr(opts.TemplateBody),
			TemplateURL:  lo.EmptyableToPtr(opts.TemplateURL),
			StackName:    lo.EmptyableToPtr(opts.StackName),
		},
		Selector: paging.WholeResponse[cfnapi.GetTemplateSummaryInput, cfnapi.GetTemplateSummaryOutput](),
	}, cliinternal.PagingOptions{}, opts.Output)
}
