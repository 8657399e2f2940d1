package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		typ  ErrorType
		want string
	}{
		{UnknownOption, "unknown_option"},
		{TypeMismatch, "type_mismatch"},
		{MissingRequired, "missing_required"},
		{ValidationFailed, "validation_failed"},
		{DuplicateOption, "duplicate_option"},
		{InvalidFormat, "invalid_format"},
		{MissingValue, "missing_value"},
		{ExtraValue, "extra_value"},
		{SubcommandError, "subcommand_error"},
		{InternalError, "internal_error"},
		{ErrorType(42), "error_type(42)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestParseError(t *testing.T) {
	e := New(UnknownOption, "unknown option '--x'").WithArgument("--x")
	assert.Equal(t, "unknown_option: unknown option '--x'", e.Error())
	assert.True(t, e.HasArgument())
	assert.False(t, e.HasOptionName())
	assert.True(t, errors.Is(e, ErrUnknownOption))
	assert.False(t, errors.Is(e, ErrMissingValue))

	e2 := New(MissingValue, "no value").WithOption("name")
	e2.Command = []string{"build", "docker"}
	assert.Equal(t, "build docker", e2.CommandPath())
	assert.True(t, e2.HasOptionName())

	var pe *ParseError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", e2), &pe))
	assert.Equal(t, "name", pe.OptionName)
}

func TestUsageError(t *testing.T) {
	e := &UsageError{Option: "port", Err: ErrWrongValueType, Detail: "stored int, requested string"}
	assert.Equal(t, "wrong value type requested: port (stored int, requested string)", e.Error())
	assert.ErrorIs(t, e, ErrWrongValueType)

	e = &UsageError{Option: "x", Err: ErrOptionNotSet}
	assert.Equal(t, "option not set: x", e.Error())
}
