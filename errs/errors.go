// Package errs holds the error taxonomy of the parser: the ParseError value reported for bad input,
// the configuration sentinels returned while declaring options, and UsageError raised for query-API misuse.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies a ParseError
type ErrorType int

const (
	UnknownOption ErrorType = iota
	TypeMismatch
	MissingRequired
	ValidationFailed
	DuplicateOption
	InvalidFormat
	MissingValue
	ExtraValue
	SubcommandError
	InternalError
)

// String returns the string representation of an ErrorType
func (t ErrorType) String() string {
	switch t {
	case UnknownOption:
		return "unknown_option"
	case TypeMismatch:
		return "type_mismatch"
	case MissingRequired:
		return "missing_required"
	case ValidationFailed:
		return "validation_failed"
	case DuplicateOption:
		return "duplicate_option"
	case InvalidFormat:
		return "invalid_format"
	case MissingValue:
		return "missing_value"
	case ExtraValue:
		return "extra_value"
	case SubcommandError:
		return "subcommand_error"
	case InternalError:
		return "internal_error"
	}
	return fmt.Sprintf("error_type(%d)", int(t))
}

// Sentinel returns the sentinel error matching t, suitable for errors.Is
func (t ErrorType) Sentinel() error {
	switch t {
	case UnknownOption:
		return ErrUnknownOption
	case TypeMismatch:
		return ErrTypeMismatch
	case MissingRequired:
		return ErrMissingRequired
	case ValidationFailed:
		return ErrValidationFailed
	case DuplicateOption:
		return ErrDuplicateOption
	case InvalidFormat:
		return ErrInvalidFormat
	case MissingValue:
		return ErrMissingValue
	case ExtraValue:
		return ErrExtraValue
	case SubcommandError:
		return ErrSubcommand
	default:
		return ErrInternal
	}
}

// Parse-time sentinels, one per ErrorType
var (
	ErrUnknownOption    = errors.New("unknown option")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrMissingRequired  = errors.New("missing required option")
	ErrValidationFailed = errors.New("validation failed")
	ErrDuplicateOption  = errors.New("duplicate option")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrMissingValue     = errors.New("missing value")
	ErrExtraValue       = errors.New("unexpected value")
	ErrSubcommand       = errors.New("subcommand error")
	ErrInternal         = errors.New("internal error")
)

// ParseError describes one problem found in the parsed input. Argument and OptionName are empty
// when not applicable. Command holds the subcommand path the error was raised in (empty at the root).
type ParseError struct {
	Type       ErrorType
	Message    string
	Argument   string
	OptionName string
	Command    []string
}

// New returns a ParseError of type t
func New(t ErrorType, message string) *ParseError {
	return &ParseError{Type: t, Message: message}
}

// WithArgument sets the offending raw argument
func (e *ParseError) WithArgument(arg string) *ParseError {
	e.Argument = arg
	return e
}

// WithOption sets the name of the option the error relates to
func (e *ParseError) WithOption(name string) *ParseError {
	e.OptionName = name
	return e
}

// HasArgument reports whether the error carries the offending raw argument
func (e *ParseError) HasArgument() bool {
	return e.Argument != ""
}

// HasOptionName reports whether the error relates to a declared option
func (e *ParseError) HasOptionName() bool {
	return e.OptionName != ""
}

// CommandPath returns the subcommand path joined with spaces
func (e *ParseError) CommandPath() string {
	return strings.Join(e.Command, " ")
}

// Error returns "<type>: <message>"
func (e *ParseError) Error() string {
	return e.Type.String() + ": " + e.Message
}

// Unwrap returns the sentinel of the error's type
func (e *ParseError) Unwrap() error {
	return e.Type.Sentinel()
}

// Configuration sentinels, returned while declaring commands and options
var (
	ErrEmptyName           = errors.New("empty option name")
	ErrInvalidName         = errors.New("invalid option name")
	ErrAliasExists         = errors.New("alias already exists")
	ErrCommandExists       = errors.New("subcommand already exists")
	ErrInvalidCardinality  = errors.New("invalid cardinality")
	ErrFlagKind            = errors.New("flags are always bool")
	ErrDefaultKind         = errors.New("default value does not match option kind")
	ErrRequiredWithDefault = errors.New("required option cannot have a default value")
	ErrNilValidator        = errors.New("nil validator")
)

// Struct declaration and binding sentinels
var (
	ErrNotStructPointer = errors.New("expected a non-nil pointer to a struct")
	ErrInvalidTag       = errors.New("invalid struct tag")
	ErrUnsupportedField = errors.New("unsupported field type")
)

// Defaults file sentinels
var (
	ErrConfigFormat = errors.New("unsupported defaults file format")
	ErrConfigValue  = errors.New("unsupported defaults value")
)

// Query API sentinels, wrapped in a UsageError
var (
	ErrUndeclaredOption = errors.New("option not declared")
	ErrOptionNotSet     = errors.New("option not set")
	ErrWrongValueType   = errors.New("wrong value type requested")
)

// UsageError signals programmer misuse of the result query API. It is never part of Result.Errors.
type UsageError struct {
	Option string
	Err    error
	Detail string
}

// Error implements error
func (e *UsageError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Err, e.Option, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Option)
}

// Unwrap returns the underlying sentinel
func (e *UsageError) Unwrap() error {
	return e.Err
}
