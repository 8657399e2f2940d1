package parse

import (
	"testing"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    *TagConfig
		wantErr bool
	}{
		{
			name: "option",
			tag:  "name:p,port;desc:listen port;default:8080;range:1..65535;env:PORT;group:network",
			want: &TagConfig{
				Kind: TagOption, Name: "p,port", Description: "listen port", Default: ptr("8080"),
				Range: []string{"1", "65535"}, Env: "PORT", Group: "network",
			},
		},
		{
			name: "command",
			tag:  "kind:command;name:build;desc:build it",
			want: &TagConfig{Kind: TagCommand, Name: "build", Description: "build it"},
		},
		{
			name: "cardinality and policy",
			tag:  "expected:1..;policy:accumulate;required:true",
			want: &TagConfig{
				Kind: TagOption, Expected: ptr(types.Between(1, 0)),
				Policy: ptr(types.Accumulate), Required: true,
			},
		},
		{
			name: "exact cardinality",
			tag:  "expected:2",
			want: &TagConfig{Kind: TagOption, Expected: ptr(types.Exactly(2))},
		},
		{
			name: "bounded cardinality",
			tag:  "expected:0..1",
			want: &TagConfig{Kind: TagOption, Expected: ptr(types.Between(0, 1))},
		},
		{
			name: "escaped separator",
			tag:  `desc:one\; two;pattern:^\d+$`,
			want: &TagConfig{Kind: TagOption, Description: "one; two", Pattern: `^\d+$`},
		},
		{
			name: "deprecation",
			tag:  "deprecated:going away;use:new;choice:a,b",
			want: &TagConfig{Kind: TagOption, Deprecated: ptr("going away"), Use: "new", Choices: []string{"a", "b"}},
		},
		{
			name: "empty segments",
			tag:  "name:x;;",
			want: &TagConfig{Kind: TagOption, Name: "x"},
		},
		{name: "no colon", tag: "name", wantErr: true},
		{name: "bad kind", tag: "kind:flag", wantErr: true},
		{name: "bad required", tag: "required:maybe", wantErr: true},
		{name: "bad expected", tag: "expected:x", wantErr: true},
		{name: "zero max", tag: "expected:1..0", wantErr: true},
		{name: "bad policy", tag: "policy:first", wantErr: true},
		{name: "bad range", tag: "range:1-2", wantErr: true},
		{name: "unknown key", tag: "secure:true", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tag(tt.tag)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidTag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitEscaped(t *testing.T) {
	assert.Equal(t, []string{"a", "b;c", `d\e`}, splitEscaped(`a;b\;c;d\e`, ';'))
	assert.Equal(t, []string{`x\`}, splitEscaped(`x\`, ';'))
	assert.Equal(t, []string{""}, splitEscaped("", ';'))
}
