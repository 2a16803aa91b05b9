// Package list provides the extension list command.
package list

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/infra"
)

// maxResultsLimit is the largest page size ListTypes accepts.
const maxResultsLimit = 100

// Client is the interface for the list command.
type Client interface {
	cfnapi.ListTypesAPI
}

// Runner executes the list command.
type Runner struct {
	Client Client
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the list command.
type Options struct {
	// Visibility is PUBLIC or PRIVATE. Empty means PRIVATE.
	Visibility string
	// Type is RESOURCE, MODULE or HOOK. Empty lists every kind.
	Type string
	// MaxResults is the page size. Nil leaves it to CloudFormation.
	MaxResults *int
	Paging     cliinternal.PagingOptions
	Output     cliinternal.OutputOptions
}

// Columns are the text and table columns of the default selection.
//
//nolint:gochecknoglobals // read-only column set
var Columns = []string{"TypeName", "Type", "DefaultVersionId", "LastUpdated"}

// Command returns the list command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List registry extensions",
		Description: `List resource types, modules and hooks registered in the
CloudFormation registry.

Private extensions are listed by default. Public extensions number in the
thousands, so combine --visibility PUBLIC with --no-auto-iteration and
--max-results to browse them page by page.

EXAMPLES:
   cfnctl extension list                                   Private extensions
   cfnctl extension list --type HOOK                       Private hooks only
   cfnctl extension list --visibility PUBLIC --max-results 20 --no-auto-iteration`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "visibility",
				Usage: "PUBLIC or PRIVATE",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "RESOURCE, MODULE or HOOK",
			},
			&cli.IntFlag{
				Name:  "max-results",
				Usage: "Page size (1-100)",
			},
		}, cliinternal.PagingFlags()...),
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

	opts := Options{
		Visibility: cmd.String("visibility"),
		Type:       cmd.String("type"),
		Paging:     cliinternal.ParsePagingOptions(cmd),
		Output:     out,
	}
	if cmd.IsSet("max-results") {
		opts.MaxResults = lo.ToPtr(cmd.Int("max-results"))
	}

	return r.Run(ctx, opts)
}

// Run executes the list command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	visibility, err := ParseVisibility(opts.Visibility)
	if err != nil {
		return err
	}

	typ, err := ParseRegistryType(opts.Type)
	if err != nil {
		return err
	}

	input := &cfnapi.ListTypesInput{
		Visibility: visibility,
		Type:       typ,
	}
	if opts.MaxResults != nil {
		n := *opts.MaxResults
		if n < 1 || n > maxResultsLimit {
			return fmt.Errorf("--max-results must be between 1 and %d", maxResultsLimit)
		}

		input.MaxResults = lo.ToPtr(int32(n))
	}

	return cliinternal.Execute(ctx, r.Stdout, r.Stderr, cliinternal.Invocation[cfnapi.ListTypesInput, cfnapi.ListTypesOutput]{
		Operation: cfnapi.ListTypes(r.Client),
		Request:   input,
		Selector:  cfnapi.SelectTypeSummaries(),
		Columns:   Columns,
	}, opts.Paging, opts.Output)
}

// ParseRegistryType parses an extension kind case-insensitively.
// An empty string yields the zero value.
func ParseRegistryType(s string) (cfnapi.RegistryType, error) {
	return parseEnum(s, "extension type", cfnapi.RegistryType("").Values())
}

// ParseVisibility parses a registry visibility case-insensitively.
// An empty string yields the zero value.
func ParseVisibility(s string) (cfnapi.Visibility, error) {
	return parseEnum(s, "visibility", cfnapi.Visibility("").Values())
}

func parseEnum[T ~string](s, what string, known []T) (T, error) {
	if s == "" {
		return "", nil
	}

	v := T(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(known, v) {
		return "", fmt.Errorf("unknown %s %q: must be one of %s", what, s, strings.Join(lo.Map(known, func(k T, _ int) string {
			return string(k)
		}), ", "))
	}

	return v, nil
}
