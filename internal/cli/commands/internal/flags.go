package internal

import (
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/cfnctl/internal/cli/output"
	"github.com/mpyw/cfnctl/internal/infra"
)

// Flag names shared across commands.
const (
	FlagProfile         = "profile"
	FlagRegion          = "region"
	FlagDebug           = "debug"
	FlagNextToken       = "next-token"
	FlagNoAutoIteration = "no-auto-iteration"
	FlagSelect          = "select"
	FlagOutput          = "output"
	FlagColumns         = "columns"
	FlagNoPager         = "no-pager"
)

// GlobalFlags returns the flags accepted by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagProfile,
			Usage:   "AWS shared config profile",
			Sources: cli.EnvVars("AWS_PROFILE"),
		},
		&cli.StringFlag{
			Name:    FlagRegion,
			Usage:   "AWS region",
			Sources: cli.EnvVars("AWS_REGION", "AWS_DEFAULT_REGION"),
		},
		&cli.BoolFlag{
			Name:    FlagDebug,
			Usage:   "Log every API call to stderr",
			Sources: cli.EnvVars("CFNCTL_DEBUG"),
		},
	}
}

// OutputFlags returns the projection and rendering flags.
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagSelect,
			Usage: "Result to print: '*' for the whole response, a response field name, or '^Param' to echo a request parameter",
		},
		&cli.StringFlag{
			Name:    FlagOutput,
			Aliases: []string{"o"},
			Usage:   "Output format: " + strings.Join(output.Formats(), ", "),
			Value:   string(output.FormatJSON),
		},
		&cli.StringSliceFlag{
			Name:  FlagColumns,
			Usage: "Fields shown in text and table output (comma separated, dotted paths allowed)",
		},
		&cli.BoolFlag{
			Name:  FlagNoPager,
			Usage: "Disable pager for long output",
		},
	}
}

// PagingFlags returns the continuation flags followed by OutputFlags.
func PagingFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:  FlagNextToken,
			Usage: "Resume from this continuation token and fetch a single page",
		},
		&cli.BoolFlag{
			Name:  FlagNoAutoIteration,
			Usage: "Fetch a single page instead of following continuation tokens",
		},
	}, OutputFlags()...)
}

// OutputOptions holds the parsed OutputFlags.
type OutputOptions struct {
	Select  string
	Format  output.Format
	Columns []string
	NoPager bool
}

// PagingOptions holds the parsed continuation flags.
type PagingOptions struct {
	NextToken       string
	NoAutoIteration bool
}

// ParseOutputOptions reads OutputFlags from cmd.
func ParseOutputOptions(cmd *cli.Command) (OutputOptions, error) {
	format, err := output.ParseFormat(cmd.String(FlagOutput))
	if err != nil {
		return OutputOptions{}, err
	}

	columns := lo.FlatMap(cmd.StringSlice(FlagColumns), func(v string, _ int) []string {
		return strings.Split(v, ",")
	})

	return OutputOptions{
		Select:  cmd.String(FlagSelect),
		Format:  format,
		Columns: lo.Compact(lo.Map(columns, func(c string, _ int) string { return strings.TrimSpace(c) })),
		NoPager: cmd.Bool(FlagNoPager),
	}, nil
}

// ParsePagingOptions reads the continuation flags from cmd.
func ParsePagingOptions(cmd *cli.Command) PagingOptions {
	return PagingOptions{
		NextToken:       cmd.String(FlagNextToken),
		NoAutoIteration: cmd.Bool(FlagNoAutoIteration),
	}
}

// AWSOptions reads the global AWS flags.
func AWSOptions(cmd *cli.Command) infra.Options {
	root := cmd.Root()

	return infra.Options{
		Profile: root.String(FlagProfile),
		Region:  root.String(FlagRegion),
	}
}
