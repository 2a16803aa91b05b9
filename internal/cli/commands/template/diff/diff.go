// Package diff provides the template diff command.
package diff

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/cli/commands/template/get"
	"github.com/mpyw/cfnctl/internal/cli/output"
	"github.com/mpyw/cfnctl/internal/cli/pager"
	"github.com/mpyw/cfnctl/internal/infra"
	"github.com/mpyw/cfnctl/internal/jsonutil"
	"github.com/mpyw/cfnctl/internal/paging"
)

// Client is the interface for the diff command.
type Client interface {
	cfnapi.GetTemplateAPI
}

// Runner executes the diff command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the diff command.
type Options struct {
	StackName string
	// FileName labels the local side of the diff.
	FileName     string
	TemplateBody string
	Stage        string
	// ParseJSON normalizes key order and indentation of JSON templates.
	ParseJSON bool
	NoPager   bool
}

// Command returns the diff command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "Compare a deployed template with a local file",
		ArgsUsage: "<stack-name>",
		Description: `Show a unified diff from the deployed template of a stack to a local
template file. Lines starting with '-' exist only in the deployed template.

EXAMPLES:
   cfnctl template diff prod-network --file network.yaml
   cfnctl template diff sam-app --file template.yaml --stage Original
   cfnctl template diff legacy-app --file legacy.json --parse-json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Local template file ('-' reads stdin)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "stage",
				Usage: "Template stage: Original or Processed",
			},
			&cli.BoolFlag{
				Name:    "parse-json",
				Aliases: []string{"j"},
				Usage:   "Normalize JSON templates before diffing (keys are always sorted)",
			},
			&cli.BoolFlag{
				Name:  cliinternal.FlagNoPager,
				Usage: "Disable pager for long output",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: cfnctl template diff <stack-name> --file <path>")
	}

	body, err := cliinternal.ReadTemplate(cmd.String("file"), os.Stdin)
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
		StackName:    cmd.Args().First(),
		FileName:     cmd.String("file"),
		TemplateBody: body,
		Stage:        cmd.String("stage"),
		ParseJSON:    cmd.Bool("parse-json"),
		NoPager:      cmd.Bool(cliinternal.FlagNoPager),
	})
}

// Run executes the diff command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	stage, err := get.ParseStage(opts.Stage)
	if err != nil {
		return err
	}

	var records paging.Collector[cfnapi.GetTemplateOutput]

	err = paging.Run(ctx, cfnapi.GetTemplate(r.Client), &cfnapi.GetTemplateInput{
		StackName:     lo.ToPtr(opts.StackName),
		TemplateStage: stage,
	}, paging.Options[cfnapi.GetTemplateInput, cfnapi.GetTemplateOutput]{
		Selector: cfnapi.SelectTemplateBody(),
	}, &records)
	if err != nil {
		return err
	}

	var deployed string
	if values := records.Values(); len(values) > 0 {
		body, _ := values[0].(*string)
		deployed = lo.FromPtr(body)
	}

	local := opts.TemplateBody
	if opts.ParseJSON {
		deployed, local = jsonutil.NormalizePair(deployed, local, r.Stderr)
	}

	if deployed == local {
		output.Info(r.Stderr, "No differences.")

		return nil
	}

	diff := output.Diff("stack/"+opts.StackName, lo.CoalesceOrEmpty(opts.FileName, "local"), deployed, local)

	return pager.WithPagerWriter(r.Stdout, opts.NoPager, func(w io.Writer) error {
		output.Print(w, diff)

		return nil
	})
}
