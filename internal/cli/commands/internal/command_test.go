package internal_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
)

func group(stdout, stderr *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:      "stack",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{Name: "list", Aliases: []string{"ls"}, Usage: "List stacks"},
			{Name: "describe", Aliases: []string{"show"}, Usage: "Describe stacks"},
			{Name: "delete", Usage: "Delete a stack"},
		},
	}
}

func TestCommandNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		command  string
		wantHint string
	}{
		{name: "prefix of a name", command: "li", wantHint: "did you mean list?"},
		{name: "prefix of an alias", command: "sh", wantHint: "did you mean describe?"},
		{name: "shared prefix", command: "de", wantHint: "did you mean describe or delete?"},
		{name: "name with suffix", command: "lists", wantHint: "did you mean list?"},
		{name: "no candidates", command: "rollback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer

			cliinternal.CommandNotFound(context.Background(), group(&stdout, &stderr), tt.command)

			assert.Contains(t, stderr.String(), "Unknown command: "+tt.command)

			if tt.wantHint == "" {
				assert.NotContains(t, stderr.String(), "did you mean")
			} else {
				assert.Contains(t, stderr.String(), tt.wantHint)
			}
		})
	}
}

func TestCommandNotFound_FallsBackToWriter(t *testing.T) {
	t.Parallel()
	var stdout bytes.Buffer
	cmd := group(&stdout, nil)
	cmd.ErrWriter = nil

	cliinternal.CommandNotFound(context.Background(), cmd, "foo")

	assert.Contains(t, stdout.String(), "Unknown command: foo")
}
