package util

import (
	"testing"

	"github.com/napalu/cmdline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		kind    types.Kind
		text    string
		want    types.Value
		wantErr string
	}{
		{"string", types.KindString, "hello", types.StringValue("hello"), ""},
		{"empty string", types.KindString, "", types.StringValue(""), ""},
		{"bool true", types.KindBool, "true", types.BoolValue(true), ""},
		{"bool 0", types.KindBool, "0", types.BoolValue(false), ""},
		{"bool invalid", types.KindBool, "yes", nil, "'yes' is not a valid bool"},
		{"int", types.KindInt, "42", types.IntValue(42), ""},
		{"negative int", types.KindInt, "-7", types.IntValue(-7), ""},
		{"hex int", types.KindInt, "0x10", types.IntValue(16), ""},
		{"int invalid", types.KindInt, "abc", nil, "'abc' is not a valid int"},
		{"float", types.KindFloat, "2.5", types.FloatValue(2.5), ""},
		{"float invalid", types.KindFloat, "x1", nil, "'x1' is not a valid float"},
		{"list", types.KindList, "a", types.ListValue{"a"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.kind, tt.text)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceList(t *testing.T) {
	v, err := CoerceList(types.KindInt, []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, types.ListValue{"1", "2"}, v)

	_, err = CoerceList(types.KindInt, []string{"1", "two"})
	assert.EqualError(t, err, "'two' is not a valid int")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d"}, SplitList("a,b|c d", nil))
	assert.Equal(t, []string{"a b", "c"}, SplitList("a b;c", func(r rune) bool { return r == ';' }))
}
