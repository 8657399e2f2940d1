package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aliases maps a short alias to whether it takes a value
type aliases map[string]bool

func (a aliases) LookupShort(c string) (bool, bool) {
	takes, ok := a[c]
	return ok, takes
}

var testAliases = aliases{"a": false, "b": false, "c": false, "d": true, "5": false}

func collect(tz *Tokenizer) []Token {
	var out []Token
	for {
		tok, ok := tz.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestTokenizerClassification(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		posix bool
		want  []Token
	}{
		{
			name: "long with attached value",
			args: []string{"--name=bob"},
			want: []Token{{Kind: Long, Name: "name", Value: "bob", HasValue: true, Raw: "--name=bob"}},
		},
		{
			name: "long with empty attached value",
			args: []string{"--name="},
			want: []Token{{Kind: Long, Name: "name", Value: "", HasValue: true, Raw: "--name="}},
		},
		{
			name: "bare long",
			args: []string{"--verbose"},
			want: []Token{{Kind: Long, Name: "verbose", Raw: "--verbose"}},
		},
		{
			name: "malformed long",
			args: []string{"--=x", "---x"},
			want: []Token{
				{Kind: Malformed, Name: "", Raw: "--=x"},
				{Kind: Malformed, Name: "-x", Raw: "---x"},
			},
		},
		{
			name: "short and positionals",
			args: []string{"-a", "file", "-"},
			want: []Token{
				{Kind: Short, Name: "a", Raw: "-a"},
				{Kind: Positional, Raw: "file"},
				{Kind: Positional, Raw: "-"},
			},
		},
		{
			name:  "cluster of flags",
			args:  []string{"-abc"},
			posix: true,
			want: []Token{
				{Kind: Short, Name: "a", Raw: "-abc"},
				{Kind: Short, Name: "b", Raw: "-abc"},
				{Kind: Short, Name: "c", Raw: "-abc"},
			},
		},
		{
			name:  "cluster value takes remainder",
			args:  []string{"-ad5"},
			posix: true,
			want: []Token{
				{Kind: Short, Name: "a", Raw: "-ad5"},
				{Kind: Short, Name: "d", Value: "5", HasValue: true, Raw: "-ad5"},
			},
		},
		{
			name:  "cluster drops leading equals",
			args:  []string{"-d=5"},
			posix: true,
			want:  []Token{{Kind: Short, Name: "d", Value: "5", HasValue: true, Raw: "-d=5"}},
		},
		{
			name:  "cluster with unknown member",
			args:  []string{"-abx"},
			posix: true,
			want:  []Token{{Kind: Unknown, Name: "abx", Raw: "-abx"}},
		},
		{
			name:  "flag with equals in cluster",
			args:  []string{"-a=1"},
			posix: true,
			want:  []Token{{Kind: Short, Name: "a", Value: "1", HasValue: true, Raw: "-a=1"}},
		},
		{
			name: "grouping disabled keeps the whole name",
			args: []string{"-abc", "-d=5"},
			want: []Token{
				{Kind: Short, Name: "abc", Raw: "-abc"},
				{Kind: Short, Name: "d", Value: "5", HasValue: true, Raw: "-d=5"},
			},
		},
		{
			name:  "negative numbers are positional",
			args:  []string{"-7", "-1.5"},
			posix: true,
			want: []Token{
				{Kind: Positional, Raw: "-7"},
				{Kind: Positional, Raw: "-1.5"},
			},
		},
		{
			name: "spelled-out numbers are options",
			args: []string{"-Inf", "-NaN"},
			want: []Token{
				{Kind: Short, Name: "Inf", Raw: "-Inf"},
				{Kind: Short, Name: "NaN", Raw: "-NaN"},
			},
		},
		{
			name:  "numeric alias wins over negative number",
			args:  []string{"-5"},
			posix: true,
			want:  []Token{{Kind: Short, Name: "5", Raw: "-5"}},
		},
		{
			name: "separator carries the tail",
			args: []string{"-a", "--", "--not-an-option", "-b"},
			want: []Token{
				{Kind: Short, Name: "a", Raw: "-a"},
				{Kind: Separator, Raw: "--", Rest: []string{"--not-an-option", "-b"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(NewTokenizer(tt.args, testAliases, tt.posix))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizerValueConsumption(t *testing.T) {
	tz := NewTokenizer([]string{"-abd", "x", "y"}, testAliases, true)

	tok, ok := tz.Next()
	require.True(t, ok)
	assert.Equal(t, "a", tok.Name)

	_, ok = tz.Peek()
	assert.False(t, ok, "no raw peeking while cluster tokens are pending")

	tz.Next()
	tok, _ = tz.Next()
	assert.Equal(t, "d", tok.Name)
	assert.False(t, tok.HasValue)

	v, ok := tz.Peek()
	require.True(t, ok)
	assert.Equal(t, "x", v)
	v, ok = tz.Take()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	assert.Equal(t, []string{"y"}, tz.Rest())
	_, ok = tz.Next()
	assert.False(t, ok)
	_, ok = tz.Take()
	assert.False(t, ok)
}

func TestTokenizerStopsAfterSeparator(t *testing.T) {
	tz := NewTokenizer([]string{"--", "a"}, testAliases, true)
	tok, ok := tz.Next()
	require.True(t, ok)
	assert.Equal(t, Separator, tok.Kind)
	_, ok = tz.Peek()
	assert.False(t, ok)
	_, ok = tz.Next()
	assert.False(t, ok)
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "long", Long.String())
	assert.Equal(t, "separator", Separator.String())
	assert.Equal(t, "positional", Positional.String())
}
