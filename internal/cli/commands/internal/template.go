package internal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// ErrTemplateSource is returned when a command needs exactly one template source.
var ErrTemplateSource = errors.New("exactly one template source must be given")

// TemplateSourceFlags returns --file and --url.
func TemplateSourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Local template file ('-' reads stdin)",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "S3 URL of the template",
		},
	}
}

// ReadTemplate returns the template body at path. "-" reads stdin.
func ReadTemplate(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read template from stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	return string(data), nil
}

// CountSources returns how many of the given source values are set.
func CountSources(values ...string) int {
	n := 0

	for _, v := range values {
		if v != "" {
			n++
		}
	}

	return n
}
