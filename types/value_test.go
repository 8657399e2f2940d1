package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKindsAndText(t *testing.T) {
	tests := []struct {
		value Value
		kind  Kind
		text  string
	}{
		{StringValue("x"), KindString, "x"},
		{BoolValue(true), KindBool, "true"},
		{IntValue(-3), KindInt, "-3"},
		{FloatValue(2.5), KindFloat, "2.5"},
		{ListValue{"a", "b"}, KindList, "a,b"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.text, tt.value.Text())
		})
	}
}

func TestElementsAndClone(t *testing.T) {
	l := ListValue{"a", "b"}
	e := Elements(l)
	e[0] = "z"
	assert.Equal(t, ListValue{"a", "b"}, l)
	assert.Equal(t, []string{"7"}, Elements(IntValue(7)))
	assert.Nil(t, Elements(nil))

	c := Clone(l).(ListValue)
	c[1] = "y"
	assert.Equal(t, "b", l[1])
	assert.Equal(t, BoolValue(true), Clone(BoolValue(true)))
}

func TestCardinality(t *testing.T) {
	assert.True(t, Exactly(0).IsFlag())
	assert.False(t, Exactly(1).IsMulti())
	assert.True(t, Between(1, 0).IsMulti())
	assert.Equal(t, Unlimited, Between(1, 0).Max)
	assert.Equal(t, "exactly(2)", Exactly(2).String())
	assert.Equal(t, "range(1,unlimited)", Between(1, 0).String())
	assert.Equal(t, "range(1,3)", Between(1, 3).String())
}

func TestNoteAndEnums(t *testing.T) {
	assert.Equal(t, "option 'old' is deprecated: going away (use 'new' instead)",
		Note{Option: "old", Message: "going away", Alternative: "new"}.String())
	assert.Equal(t, "option 'old' is deprecated", Note{Option: "old"}.String())
	assert.Equal(t, "accumulate", Accumulate.String())
	assert.Equal(t, "last_wins", LastWins.String())
	assert.Equal(t, "env", SourceEnv.String())
	assert.True(t, DefaultListDelimiter('|'))
	assert.False(t, DefaultListDelimiter(';'))
}
