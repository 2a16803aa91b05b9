// Package delete provides the stack delete command.
package delete

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
	"github.com/mpyw/cfnctl/internal/cli/confirm"
	"github.com/mpyw/cfnctl/internal/cli/output"
	"github.com/mpyw/cfnctl/internal/infra"
	"github.com/mpyw/cfnctl/internal/paging"
)

// Client is the interface for the delete command.
type Client interface {
	cfnapi.DeleteStackAPI
}

// Runner executes the delete command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the delete command.
type Options struct {
	Name            string
	RetainResources []string
	RoleARN         string
	// PassThru echoes the stack name instead of the (empty) API response.
	PassThru bool
	Output   cliinternal.OutputOptions
}

// Command returns the delete command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a stack",
		ArgsUsage: "<stack-name>",
		Description: `Start deleting a stack and every resource it owns.

WARNING: Resources are deleted unless their DeletionPolicy retains them.
CloudFormation deletes asynchronously; follow progress with 'cfnctl stack events'.

Use --retain for resources of a stack in DELETE_FAILED state that should be
kept. Use --passthru to print the stack name once the request is accepted,
which makes the command easy to chain in scripts.

EXAMPLES:
   cfnctl stack delete prod-network                       Delete (with confirmation)
   cfnctl stack delete --yes prod-network                 Delete without confirmation
   cfnctl stack delete --retain Bucket prod-network       Keep the Bucket resource
   cfnctl stack delete --yes --passthru prod-network      Print the stack name afterwards`,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "yes",
				Usage: "Skip confirmation prompt",
			},
			&cli.StringSliceFlag{
				Name:  "retain",
				Usage: "Logical ID of a resource to retain (repeatable)",
			},
			&cli.StringFlag{
				Name:  "role-arn",
				Usage: "IAM role CloudFormation assumes to delete the stack",
			},
			&cli.BoolFlag{
				Name:  "passthru",
				Usage: "Print the stack name instead of the API response",
			},
		}, cliinternal.OutputFlags()...),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: cfnctl stack delete <stack-name>")
	}

	name := cmd.Args().First()
	skipConfirm := cmd.Bool("yes")

	out, err := cliinternal.ParseOutputOptions(cmd)
	if err != nil {
		return err
	}

	awsOpts := cliinternal.AWSOptions(cmd)

	client, err := infra.NewCloudFormationClient(ctx, awsOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	// Get AWS identity for confirmation display
	var identity *infra.AWSIdentity
	if !skipConfirm {
		identity, _ = infra.GetAWSIdentity(ctx, awsOpts)
	}

	prompter := &confirm.Prompter{
		Stdin:  os.Stdin,
		Stdout: cmd.Root().Writer,
		Stderr: cmd.Root().ErrWriter,
	}
	if identity != nil {
		prompter.AccountID = identity.AccountID
		prompter.Region = identity.Region
		prompter.Profile = identity.Profile
	}

	confirmed, err := prompter.ConfirmDelete("stack "+name, skipConfirm)
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	r := &Runner{
		Client: client,
		Stdout: cmd.Root().Writer,
		Stderr: cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{
		Name:            name,
		RetainResources: cmd.StringSlice("retain"),
		RoleARN:         cmd.String("role-arn"),
		PassThru:        cmd.Bool("passthru"),
		Output:          out,
	})
}

// Run executes the delete command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	out := opts.Output
	if opts.PassThru && out.Select == "" {
		out.Select = paging.PassThroughPrefix + "StackName"
	}

	// Single-call operation; nothing to page through.
	out.NoPager = true

	err := cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.DeleteStackInput, cfnapi.DeleteStackOutput]{
		Operation: cfnapi.DeleteStack(r.Client),
		Request: &cfnapi.DeleteStackInput{
			StackName:       lo.ToPtr(opts.Name),
			RetainResources: opts.RetainResources,
			RoleARN:         lo.EmptyableToPtr(opts.RoleARN),
		},
		Selector: paging.WholeResponse[cfnapi.DeleteStackInput, cfnapi.DeleteStackOutput](),
	}, cliinternal.PagingOptions{}, out)
	if err != nil {
		return err
	}

	output.Success(r.Stderr, "Deletion of stack %s initiated", opts.Name)

	return nil
}
