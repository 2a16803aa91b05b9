package delete_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/cfnctl/internal/api/cfnapi"
	appcli "github.com/mpyw/cfnctl/internal/cli/commands"
	cliinternal "github.com/mpyw/cfnctl/internal/cli/commands/internal"
	stackdelete "github.com/mpyw/cfnctl/internal/cli/commands/stack/delete"
	"github.com/mpyw/cfnctl/internal/cli/output"
)

func TestCommand_Help(t *testing.T) {
	t.Parallel()
	app := appcli.MakeApp()
	var buf bytes.Buffer
	app.Writer = &buf
	err := app.Run(context.Background(), []string{"cfnctl", "stack", "delete", "--help"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Delete a stack")
	assert.Contains(t, buf.String(), "--yes")
	assert.Contains(t, buf.String(), "--retain")
	assert.Contains(t, buf.String(), "--passthru")
	assert.NotContains(t, buf.String(), "--next-token")
}

func TestCommand_MissingName(t *testing.T) {
	t.Parallel()
	app := appcli.MakeApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), []string{"cfnctl", "stack", "delete"})
	require.EqualError(t, err, "usage: cfnctl stack delete <stack-name>")
}

type mockClient struct {
	deleteStackFunc func(ctx context.Context, params *cfnapi.DeleteStackInput, optFns ...func(*cfnapi.Options)) (*cfnapi.DeleteStackOutput, error)
}

func (m *mockClient) DeleteStack(ctx context.Context, params *cfnapi.DeleteStackInput, optFns ...func(*cfnapi.Options)) (*cfnapi.DeleteStackOutput, error) {
	if m.deleteStackFunc != nil {
		return m.deleteStackFunc(ctx, params, optFns...)
	}

	return nil, errors.New("DeleteStack not mocked")
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("request carries retain and role", func(t *testing.T) {
		t.Parallel()
		var got *cfnapi.DeleteStackInput
		var stdout, stderr bytes.Buffer
		r := &stackdelete.Runner{
			Client: &mockClient{
				deleteStackFunc: func(_ context.Context, params *cfnapi.DeleteStackInput, _ ...func(*cfnapi.Options)) (*cfnapi.DeleteStackOutput, error) {
					got = params

					return &cfnapi.DeleteStackOutput{}, nil
				},
			},
			Stdout: &stdout,
			Stderr: &stderr,
		}

		err := r.Run(t.Context(), stackdelete.Options{
			Name:            "prod-network",
			RetainResources: []string{"Bucket"},
			RoleARN:         "arn:aws:iam::123456789012:role/cfn",
			Output:          cliinternal.OutputOptions{Format: output.FormatJSON},
		})
		require.NoError(t, err)

		require.NotNil(t, got)
		assert.Equal(t, "prod-network", lo.FromPtr(got.StackName))
		assert.Equal(t, []string{"Bucket"}, got.RetainResources)
		assert.Equal(t, "arn:aws:iam::123456789012:role/cfn", lo.FromPtr(got.RoleARN))
		assert.Equal(t, "{}\n", stdout.String())
		assert.Contains(t, stderr.String(), "Deletion of stack prod-network initiated")
	})

	t.Run("passthru echoes the stack name", func(t *testing.T) {
		t.Parallel()
		var calls int
		var stdout bytes.Buffer
		r := &stackdelete.Runner{
			Client: &mockClient{
				deleteStackFunc: func(_ context.Context, params *cfnapi.DeleteStackInput, _ ...func(*cfnapi.Options)) (*cfnapi.DeleteStackOutput, error) {
					calls++
					assert.Nil(t, params.RoleARN)

					return &cfnapi.DeleteStackOutput{}, nil
				},
			},
			Stdout: &stdout,
			Stderr: &bytes.Buffer{},
		}

		err := r.Run(t.Context(), stackdelete.Options{
			Name:     "prod-network",
			PassThru: true,
			Output:   cliinternal.OutputOptions{Format: output.FormatText},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, "prod-network\n", stdout.String())
	})

	t.Run("failure emits nothing and reports no success", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		r := &stackdelete.Runner{
			Client: &mockClient{
				deleteStackFunc: func(_ context.Context, _ *cfnapi.DeleteStackInput, _ ...func(*cfnapi.Options)) (*cfnapi.DeleteStackOutput, error) {
					return nil, errors.New("ValidationError: Stack [prod-network] cannot be deleted while TerminationProtection is enabled")
				},
			},
			Stdout: &stdout,
			Stderr: &stderr,
		}

		err := r.Run(t.Context(), stackdelete.Options{Name: "prod-network", PassThru: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TerminationProtection")
		assert.Empty(t, stdout.String())
		assert.NotContains(t, stderr.String(), "initiated")
	})
}
