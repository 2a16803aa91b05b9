package internal_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	"github.com/mpyw/cfnctl/internal/cli/output"
	"github.com/mpyw/cfnctl/internal/infra"
	"github.com/mpyw/cfnctl/internal/paging"
)

type listInput struct {
	Owner     *string
	NextToken *string
}

type listItem struct {
	Name   string
	Status string
}

type listOutput struct {
	Items     []listItem
	NextToken *string
}

// pagedService serves pages keyed by the incoming token.
type pagedService struct {
	pages map[string]*listOutput
	fail  map[string]error
	calls int
}

func (s *pagedService) operation() paging.Operation[listInput, listOutput] {
	return paging.Operation[listInput, listOutput]{
		Name: "ListItems",
		Call: func(_ context.Context, req *listInput) (*listOutput, error) {
			s.calls++

			token := lo.FromPtr(req.NextToken)
			if err := s.fail[token]; err != nil {
				return nil, err
			}

			return s.pages[token], nil
		},
		SetCursor: func(req *listInput, cursor *string) { req.NextToken = cursor },
		Cursor:    func(resp *listOutput) *string { return resp.NextToken },
	}
}

func twoPages() *pagedService {
	return &pagedService{
		pages: map[string]*listOutput{
			"":   {Items: []listItem{{Name: "a", Status: "CREATE_COMPLETE"}, {Name: "b", Status: "CREATE_COMPLETE"}}, NextToken: lo.ToPtr("T1")},
			"T1": {Items: []listItem{{Name: "c", Status: "DELETE_FAILED"}}},
		},
	}
}

func invocation(s *pagedService) cliinternal.Invocation[listInput, listOutput] {
	return cliinternal.Invocation[listInput, listOutput]{
		Operation: s.operation(),
		Request:   &listInput{Owner: lo.ToPtr("me")},
		Selector: paging.Field[listInput, listOutput]("Items", func(resp *listOutput) any {
			return resp.Items
		}),
		Columns: []string{"Name", "Status"},
	}
}

func TestExecute(t *testing.T) {
	t.Parallel()

	t.Run("follows tokens until exhausted", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()
		var stdout, stderr bytes.Buffer

		err := cliinternal.Execute(t.Context(), &stdout, &stderr, invocation(svc),
			cliinternal.PagingOptions{},
			cliinternal.OutputOptions{Format: output.FormatText})
		require.NoError(t, err)

		assert.Equal(t, 2, svc.calls)
		assert.Equal(t, "a\tCREATE_COMPLETE\nb\tCREATE_COMPLETE\nc\tDELETE_FAILED\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("single page prints resume hint", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()
		var stdout, stderr bytes.Buffer

		err := cliinternal.Execute(t.Context(), &stdout, &stderr, invocation(svc),
			cliinternal.PagingOptions{NoAutoIteration: true},
			cliinternal.OutputOptions{Format: output.FormatText})
		require.NoError(t, err)

		assert.Equal(t, 1, svc.calls)
		assert.NotContains(t, stdout.String(), "c\t")
		assert.Contains(t, stderr.String(), "--next-token T1")
	})

	t.Run("resume from token", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()
		var stdout, stderr bytes.Buffer

		err := cliinternal.Execute(t.Context(), &stdout, &stderr, invocation(svc),
			cliinternal.PagingOptions{NextToken: "T1"},
			cliinternal.OutputOptions{Format: output.FormatText})
		require.NoError(t, err)

		assert.Equal(t, 1, svc.calls)
		assert.Equal(t, "c\tDELETE_FAILED\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("invalid selector fails before any call", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()

		err := cliinternal.Execute(t.Context(), &bytes.Buffer{}, &bytes.Buffer{}, invocation(svc),
			cliinternal.PagingOptions{},
			cliinternal.OutputOptions{Select: "NoSuchField"})
		require.ErrorIs(t, err, paging.ErrInvalidSelector)
		assert.Zero(t, svc.calls)
	})

	t.Run("columns rejected for json before any call", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()

		err := cliinternal.Execute(t.Context(), &bytes.Buffer{}, &bytes.Buffer{}, invocation(svc),
			cliinternal.PagingOptions{},
			cliinternal.OutputOptions{Format: output.FormatJSON, Columns: []string{"Name"}})
		require.ErrorIs(t, err, output.ErrColumnsUnsupported)
		assert.Zero(t, svc.calls)
	})

	t.Run("failure keeps earlier pages", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()
		boom := errors.New("Throttling: Rate exceeded")
		svc.fail = map[string]error{"T1": boom}
		var stdout bytes.Buffer

		err := cliinternal.Execute(t.Context(), &stdout, &bytes.Buffer{}, invocation(svc),
			cliinternal.PagingOptions{},
			cliinternal.OutputOptions{Format: output.FormatText})
		require.ErrorIs(t, err, boom)

		assert.Equal(t, 2, svc.calls)
		assert.Contains(t, stdout.String(), "a\t")
		assert.NotContains(t, stdout.String(), "Throttling")
	})

	t.Run("pass-through echoes the request once", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()
		var stdout bytes.Buffer

		err := cliinternal.Execute(t.Context(), &stdout, &bytes.Buffer{}, invocation(svc),
			cliinternal.PagingOptions{},
			cliinternal.OutputOptions{Select: "^Owner", Format: output.FormatJSON})
		require.NoError(t, err)

		assert.Equal(t, 2, svc.calls)
		assert.Equal(t, "\"me\"\n", stdout.String())
	})

	t.Run("pass-through single page prints resume hint", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()
		var stdout, stderr bytes.Buffer

		err := cliinternal.Execute(t.Context(), &stdout, &stderr, invocation(svc),
			cliinternal.PagingOptions{NoAutoIteration: true},
			cliinternal.OutputOptions{Select: "^Owner", Format: output.FormatJSON})
		require.NoError(t, err)

		assert.Equal(t, 1, svc.calls)
		assert.Equal(t, "\"me\"\n", stdout.String())
		assert.Contains(t, stderr.String(), "--next-token T1")
	})

	t.Run("whole response ignores default columns", func(t *testing.T) {
		t.Parallel()
		svc := twoPages()
		var stdout bytes.Buffer

		err := cliinternal.Execute(t.Context(), &stdout, &bytes.Buffer{}, invocation(svc),
			cliinternal.PagingOptions{NoAutoIteration: true},
			cliinternal.OutputOptions{Select: "*", Format: output.FormatText})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "NextToken:")
		assert.Contains(t, stdout.String(), "T1")
	})
}

func TestExecute_EmptyPages(t *testing.T) {
	t.Parallel()

	emptyFirst := func() *pagedService {
		return &pagedService{
			pages: map[string]*listOutput{
				"":   {NextToken: lo.ToPtr("T1")},
				"T1": {Items: []listItem{{Name: "c", Status: "CREATE_COMPLETE"}}},
			},
		}
	}

	tests := []struct {
		name   string
		svc    func() *pagedService
		format output.Format
		want   string
	}{
		{
			name:   "json skips the empty page",
			svc:    emptyFirst,
			format: output.FormatJSON,
			want:   "{\n  \"Name\": \"c\",\n  \"Status\": \"CREATE_COMPLETE\"\n}\n",
		},
		{
			name:   "yaml skips the empty page",
			svc:    emptyFirst,
			format: output.FormatYAML,
			want:   "Name: c\nStatus: CREATE_COMPLETE\n",
		},
		{
			name:   "text skips the empty page",
			svc:    emptyFirst,
			format: output.FormatText,
			want:   "c\tCREATE_COMPLETE\n",
		},
		{
			name: "no results at all",
			svc: func() *pagedService {
				return &pagedService{pages: map[string]*listOutput{"": {}}}
			},
			format: output.FormatJSON,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout bytes.Buffer

			err := cliinternal.Execute(t.Context(), &stdout, &bytes.Buffer{}, invocation(tt.svc()),
				cliinternal.PagingOptions{},
				cliinternal.OutputOptions{Format: tt.format})
			require.NoError(t, err)

			assert.Equal(t, tt.want, stdout.String())
		})
	}

	t.Run("table has no blank row", func(t *testing.T) {
		t.Parallel()
		var stdout bytes.Buffer

		err := cliinternal.Execute(t.Context(), &stdout, &bytes.Buffer{}, invocation(emptyFirst()),
			cliinternal.PagingOptions{},
			cliinternal.OutputOptions{Format: output.FormatTable})
		require.NoError(t, err)

		rows := lo.Filter(strings.Split(stdout.String(), "\n"), func(line string, _ int) bool {
			return strings.Contains(line, "│")
		})
		// Header and one data row.
		assert.Len(t, rows, 2)
		assert.Contains(t, stdout.String(), "CREATE_COMPLETE")
	})
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, args ...string) (cliinternal.OutputOptions, cliinternal.PagingOptions, error) {
		t.Helper()

		var (
			out    cliinternal.OutputOptions
			pg     cliinternal.PagingOptions
			optErr error
		)

		cmd := &cli.Command{
			Name:   "list",
			Flags:  cliinternal.PagingFlags(),
			Writer: &bytes.Buffer{},
			Action: func(_ context.Context, cmd *cli.Command) error {
				out, optErr = cliinternal.ParseOutputOptions(cmd)
				pg = cliinternal.ParsePagingOptions(cmd)

				return nil
			},
		}
		require.NoError(t, cmd.Run(t.Context(), append([]string{"list"}, args...)))

		return out, pg, optErr
	}

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		out, pg, err := run(t)
		require.NoError(t, err)

		assert.Equal(t, output.FormatJSON, out.Format)
		assert.Empty(t, out.Select)
		assert.Empty(t, out.Columns)
		assert.Equal(t, cliinternal.PagingOptions{}, pg)
	})

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()
		out, pg, err := run(t,
			"--next-token", "T9",
			"--no-auto-iteration",
			"--select", "^StackName",
			"-o", "table",
			"--columns", "StackName, StackStatus",
			"--no-pager",
		)
		require.NoError(t, err)

		assert.Equal(t, cliinternal.OutputOptions{
			Select:  "^StackName",
			Format:  output.FormatTable,
			Columns: []string{"StackName", "StackStatus"},
			NoPager: true,
		}, out)
		assert.Equal(t, cliinternal.PagingOptions{NextToken: "T9", NoAutoIteration: true}, pg)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "--output", "xml")
		require.ErrorIs(t, err, output.ErrUnknownFormat)
	})
}

func TestAWSOptions(t *testing.T) {
	t.Parallel()

	var got infra.Options

	app := &cli.Command{
		Name:  "cfnctl",
		Flags: cliinternal.GlobalFlags(),
		Commands: []*cli.Command{{
			Name: "sub",
			Action: func(_ context.Context, cmd *cli.Command) error {
				got = cliinternal.AWSOptions(cmd)

				return nil
			},
		}},
	}

	require.NoError(t, app.Run(t.Context(), []string{"cfnctl", "--profile", "deploy", "--region", "eu-west-1", "sub"}))
	assert.Equal(t, "deploy", got.Profile)
	assert.Equal(t, "eu-west-1", got.Region)
}
