package confirm_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/cfnctl/internal/cli/confirm"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestPrompter_Answers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "yes\n", want: true},
		{input: "YES\n", want: true},
		{input: "  Y  \n", want: true},
		{input: "n\n", want: false},
		{input: "no\n", want: false},
		{input: "\n", want: false},
		{input: "delete it\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			t.Parallel()

			for name, ask := range map[string]func(*confirm.Prompter) (bool, error){
				"confirm": func(p *confirm.Prompter) (bool, error) { return p.Confirm("Delete stack prod-network?", false) },
				"delete":  func(p *confirm.Prompter) (bool, error) { return p.ConfirmDelete("stack prod-network", false) },
			} {
				p := &confirm.Prompter{Stdin: strings.NewReader(tt.input), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

				got, err := ask(p)
				require.NoError(t, err, name)
				assert.Equal(t, tt.want, got, name)
			}
		})
	}
}

func TestPrompter_Confirm(t *testing.T) {
	t.Parallel()

	t.Run("skip confirm reads nothing", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		p := &confirm.Prompter{Stdin: failingReader{}, Stderr: &stderr}

		got, err := p.Confirm("Delete stack prod-network?", true)
		require.NoError(t, err)
		assert.True(t, got)
		assert.Empty(t, stderr.String())
	})

	t.Run("prompt text", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		p := &confirm.Prompter{Stdin: strings.NewReader("y\n"), Stderr: &stderr}

		_, err := p.Confirm("Delete stack prod-network?", false)
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "Delete stack prod-network? [y/N]: ")
	})

	t.Run("read error", func(t *testing.T) {
		t.Parallel()
		p := &confirm.Prompter{Stdin: failingReader{}, Stderr: &bytes.Buffer{}}

		got, err := p.Confirm("Delete stack prod-network?", false)
		require.Error(t, err)
		assert.False(t, got)
		assert.Contains(t, err.Error(), "failed to read response")
	})
}

func TestPrompter_ConfirmDelete(t *testing.T) {
	t.Parallel()

	t.Run("skip confirm reads nothing", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		p := &confirm.Prompter{Stdin: failingReader{}, Stderr: &stderr}

		got, err := p.ConfirmDelete("stack prod-network", true)
		require.NoError(t, err)
		assert.True(t, got)
		assert.Empty(t, stderr.String())
	})

	t.Run("warning names the target", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		p := &confirm.Prompter{Stdin: strings.NewReader("n\n"), Stderr: &stderr}

		got, err := p.ConfirmDelete("stack prod-network", false)
		require.NoError(t, err)
		assert.False(t, got)
		assert.Contains(t, stderr.String(), "This will permanently delete: stack prod-network")
		assert.Contains(t, stderr.String(), "Continue? [y/N]: ")
	})

	t.Run("read error", func(t *testing.T) {
		t.Parallel()
		p := &confirm.Prompter{Stdin: failingReader{}, Stderr: &bytes.Buffer{}}

		_, err := p.ConfirmDelete("stack prod-network", false)
		require.Error(t, err)
	})
}

func TestPrompter_Target(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prompt  confirm.Prompter
		want    string
		wantNot bool
	}{
		{
			name:   "account and region",
			prompt: confirm.Prompter{AccountID: "123456789012", Region: "ap-northeast-1"},
			want:   "Target: 123456789012 / ap-northeast-1\n",
		},
		{
			name:   "with profile",
			prompt: confirm.Prompter{AccountID: "123456789012", Region: "us-east-1", Profile: "prod"},
			want:   "Target: 123456789012 / us-east-1 (profile: prod)",
		},
		{
			name:    "account only",
			prompt:  confirm.Prompter{AccountID: "123456789012"},
			wantNot: true,
		},
		{
			name:    "region only",
			prompt:  confirm.Prompter{Region: "us-east-1", Profile: "prod"},
			wantNot: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stderr bytes.Buffer
			p := tt.prompt
			p.Stdin = strings.NewReader("y\n")
			p.Stderr = &stderr

			_, err := p.ConfirmDelete("stack prod-network", false)
			require.NoError(t, err)

			if tt.wantNot {
				assert.NotContains(t, stderr.String(), "Target:")

				return
			}

			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}
