package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/napalu/cmdline/types"
)

// Coerce converts raw command-line text into a Value of the requested kind. A KindList coercion
// yields a one-element list.
func Coerce(kind types.Kind, text string) (types.Value, error) {
	switch kind {
	case types.KindString:
		return types.StringValue(text), nil
	case types.KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a valid bool", text)
		}
		return types.BoolValue(b), nil
	case types.KindInt:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 0, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a valid int", text)
		}
		return types.IntValue(i), nil
	case types.KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a valid float", text)
		}
		return types.FloatValue(f), nil
	case types.KindList:
		return types.ListValue{text}, nil
	}
	return nil, fmt.Errorf("unsupported kind %s", kind)
}

// CoerceList checks every element of texts against kind and returns them as a ListValue.
// The first element failing coercion is reported.
func CoerceList(kind types.Kind, texts []string) (types.Value, error) {
	out := make(types.ListValue, 0, len(texts))
	for _, t := range texts {
		if kind != types.KindList {
			if _, err := Coerce(kind, t); err != nil {
				return nil, err
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// SplitList splits s on every rune matched by delim, dropping empty fields
func SplitList(s string, delim types.ListDelimiterFunc) []string {
	if delim == nil {
		delim = types.DefaultListDelimiter
	}
	return strings.FieldsFunc(s, delim)
}
