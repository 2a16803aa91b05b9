// Package get provides the template get command.
package get

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/cli/output"
	"github.com/mpyw/cfnctl/internal/cli/pager"
	"github.com/mpyw/cfnctl/internal/infra"
	"github.com/mpyw/cfnctl/internal/paging"
	"github.com/mpyw/cfnctl/internal/parallel"
)

// Client is the interface for the get command.
type Client interface {
	cfnapi.GetTemplateAPI
}

// Runner executes the get command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the get command.
type Options struct {
	Names []string
	// Stage is "Original" or "Processed". Empty lets CloudFormation decide.
	Stage  string
	Output cliinternal.OutputOptions
}

// Command returns the get command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Aliases:   []string{"cat"},
		Usage:     "Print stack templates",
		ArgsUsage: "<stack-name>...",
		Description: `Print the template body of one or more stacks.

Templates of several stacks are fetched concurrently and printed in the
order the stacks were given. A stack that cannot be read is reported on
stderr without hiding the others.

STAGES:
   Original     the template as submitted
   Processed    the template after transforms such as AWS::Serverless

EXAMPLES:
   cfnctl template get prod-network                     Print the template body
   cfnctl template get prod-network prod-database       Print several templates
   cfnctl template get --stage Processed sam-app        Print the transformed template
   cfnctl template get --select StagesAvailable app     Print another response field`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "stage",
				Usage: "Template stage: Original or Processed",
			},
		}, cliinternal.OutputFlags()...),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: cfnctl template get <stack-name>...")
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
		Names:  cmd.Args().Slice(),
		Stage:  cmd.String("stage"),
		Output: out,
	})
}

// Run executes the get command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	stage, err := ParseStage(opts.Stage)
	if err != nil {
		return err
	}

	selector, err := paging.ParseSelector(opts.Output.Select, cfnapi.SelectTemplateBody())
	if err != nil {
		return err
	}

	w, err := cliinternal.NewRecordWriter(r.Stderr, opts.Output, opts.Output.Select == "", nil)
	if err != nil {
		return err
	}

	op := cfnapi.GetTemplate(r.Client)
	results := parallel.Map(ctx, opts.Names, func(ctx context.Context, name string) ([]any, error) {
		var records paging.Collector[cfnapi.GetTemplateOutput]

		err := paging.Run(ctx, op, &cfnapi.GetTemplateInput{
			StackName:     lo.ToPtr(name),
			TemplateStage: stage,
		}, paging.Options[cfnapi.GetTemplateInput, cfnapi.GetTemplateOutput]{Selector: selector}, &records)

		return records.Values(), err
	})

	multi := len(opts.Names) > 1

	var failed int

	err = pager.WithPagerWriter(r.Stdout, opts.Output.NoPager, func(pw io.Writer) error {
		w.Out = pw

		for i, res := range results {
			if res.Err != nil {
				failed++
				if multi {
					output.Failed(r.Stderr, opts.Names[i], res.Err)
				}

				continue
			}

			if multi && w.Format == output.FormatText {
				output.New(pw).Field("Stack", opts.Names[i])
			}

			for _, v := range res.Value {
				if err := w.Write(v); err != nil {
					return err
				}
			}
		}

		return w.Flush()
	})
	if err != nil {
		return err
	}

	switch {
	case failed == 0:
		return nil
	case !multi:
		return results[0].Err
	default:
		return fmt.Errorf("failed to get %d of %d templates", failed, len(opts.Names))
	}
}

// ParseStage converts a stage name, case-insensitively.
func ParseStage(s string) (cfnapi.TemplateStage, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case strings.ToLower(string(cfnapi.TemplateStageOriginal)):
		return cfnapi.TemplateStageOriginal, nil
	case strings.ToLower(string(cfnapi.TemplateStageProcessed)):
		return cfnapi.TemplateStageProcessed, nil
	default:
		return "", fmt.Errorf("unknown template stage %q (expected Original or Processed)", s)
	}
}
