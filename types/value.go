package types

import (
	"strconv"
	"strings"
)

// Kind is the tag of a Value
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindList
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindString:
		fallthrough
	default:
		return "string"
	}
}

// Value is the closed set of typed values an option can hold:
// StringValue, BoolValue, IntValue, FloatValue and ListValue.
type Value interface {
	Kind() Kind
	// Text returns the canonical textual form of the value. Lists are joined with ','.
	Text() string
	sealed()
}

type (
	StringValue string
	BoolValue   bool
	IntValue    int
	FloatValue  float64
	ListValue   []string
)

func (StringValue) Kind() Kind { return KindString }
func (BoolValue) Kind() Kind   { return KindBool }
func (IntValue) Kind() Kind    { return KindInt }
func (FloatValue) Kind() Kind  { return KindFloat }
func (ListValue) Kind() Kind   { return KindList }

func (v StringValue) Text() string { return string(v) }
func (v BoolValue) Text() string   { return strconv.FormatBool(bool(v)) }
func (v IntValue) Text() string    { return strconv.Itoa(int(v)) }
func (v FloatValue) Text() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v ListValue) Text() string   { return strings.Join(v, ",") }

func (StringValue) sealed() {}
func (BoolValue) sealed()   {}
func (IntValue) sealed()    {}
func (FloatValue) sealed()  {}
func (ListValue) sealed()   {}

// Elements returns the raw text elements of a Value: every item of a ListValue, or the single Text of
// any other Value.
func Elements(v Value) []string {
	switch t := v.(type) {
	case ListValue:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case StringValue, BoolValue, IntValue, FloatValue:
		return []string{t.Text()}
	}
	return nil
}

// Clone returns a copy of v which shares no memory with v
func Clone(v Value) Value {
	if l, ok := v.(ListValue); ok {
		out := make(ListValue, len(l))
		copy(out, l)
		return out
	}
	return v
}
