package validate_test

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
	"github.com/mpyw/cfnctl/internal/cli/commands/template/validate"
	"github.com/mpyw/cfnctl/internal/cli/output"
)

func TestCommand_Help(t *testing.T) {
	t.Parallel()
	app := appcli.MakeApp()
	var buf bytes.Buffer
	app.Writer = &buf
	err := app.Run(context.Background(), []string{"cfnctl", "template", "validate", "--help"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Validate a template")
	assert.Contains(t, buf.String(), "--file")
	assert.Contains(t, buf.String(), "--url")
}

func TestCommand_RequiresOneSource(t *testing.T) {
	t.Parallel()
	app := appcli.MakeApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), []string{"cfnctl", "template", "validate"})
	require.ErrorIs(t, err, cliinternal.ErrTemplateSource)
}

type mockClient struct {
	validateTemplateFunc func(ctx context.Context, params *cfnapi.ValidateTemplateInput, optFns ...func(*cfnapi.Options)) (*cfnapi.ValidateTemplateOutput, error)
}

func (m *mockClient) ValidateTemplate(ctx context.Context, params *cfnapi.ValidateTemplateInput, optFns ...func(*cfnapi.Options)) (*cfnapi.ValidateTemplateOutput, error) {
	if m.validateTemplateFunc != nil {
		return m.validateTemplateFunc(ctx, params, optFns...)
	}

	return nil, errors.New("ValidateTemplate not mocked")
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("valid template body", func(t *testing.T) {
		t.Parallel()
		var got *cfnapi.ValidateTemplateInput
		var stdout, stderr bytes.Buffer
		r := &validate.Runner{
			Client: &mockClient{
				validateTemplateFunc: func(_ context.Context, params *cfnapi.ValidateTemplateInput, _ ...func(*cfnapi.Options)) (*cfnapi.ValidateTemplateOutput, error) {
					got = params

					return &cfnapi.ValidateTemplateOutput{Description: lo.ToPtr("Shared VPC")}, nil
				},
			},
			Stdout: &stdout,
			Stderr: &stderr,
		}

		err := r.Run(t.Context(), validate.Options{
			TemplateBody: "Description: Shared VPC\nResources: {}\n",
			Output:       cliinternal.OutputOptions{Select: "Description", Format: output.FormatText},
		})
		require.NoError(t, err)

		require.NotNil(t, got)
		assert.Nil(t, got.TemplateURL)
		assert.Equal(t, "Shared VPC\n", stdout.String())
		assert.Contains(t, stderr.String(), "Template is valid")
	})

	t.Run("invalid template", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		r := &validate.Runner{
			Client: &mockClient{
				validateTemplateFunc: func(_ context.Context, _ *cfnapi.ValidateTemplateInput, _ ...func(*cfnapi.Options)) (*cfnapi.ValidateTemplateOutput, error) {
					return nil, errors.New("ValidationError: Template format error: unsupported structure")
				},
			},
			Stdout: &bytes.Buffer{},
			Stderr: &stderr,
		}

		err := r.Run(t.Context(), validate.Options{TemplateURL: "https://s3.amazonaws.com/bucket/t.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Template format error")
		assert.NotContains(t, stderr.String(), "Template is valid")
	})

	t.Run("both sources", func(t *testing.T) {
		t.Parallel()
		r := &validate.Runner{Client: &mockClient{}, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		err := r.Run(t.Context(), validate.Options{TemplateBody: "{}", TemplateURL: "https://example.com/t.json"})
		require.ErrorIs(t, err, cliinternal.ErrTemplateSource)
	})
}
