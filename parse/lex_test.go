package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "build -v",
			want:  []string{"build", "-v"},
		},
		{
			name:  "quoted arguments",
			input: `--name "hello world"`,
			want:  []string{"--name", "hello world"},
		},
		{
			name:  "multiple quotes",
			input: `echo "first quote" 'second quote'`,
			want:  []string{"echo", "first quote", "second quote"},
		},
		{
			name:  "escaped quotes",
			input: `echo \"hello\"`,
			want:  []string{"echo", `"hello"`},
		},
		{
			name:  "multiple spaces",
			input: "cmd   arg1    arg2",
			want:  []string{"cmd", "arg1", "arg2"},
		},
		{
			name:  "attached value with quotes",
			input: `--msg="a b" -- --raw`,
			want:  []string{"--msg=a b", "--", "--raw"},
		},
		{
			name:    "unterminated quote",
			input:   `echo "oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitEmpty(t *testing.T) {
	got, err := Split("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
