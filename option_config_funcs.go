package cmdline

import (
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/validation"
)

// WithType sets the element kind of an option. Flags are always types.KindBool. A types.KindList option
// splits each value with the command's list delimiter function.
func WithType(kind types.Kind) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.kind = kind
		option.kindSet = true
	}
}

// SetRequired when true, the option must be supplied on the command line or through the environment.
// A required option cannot have a default value.
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.required = required
	}
}

// WithDefault sets the value installed when the option is supplied neither on the command line nor
// through the environment
func WithDefault(value types.Value) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.def = value
	}
}

// WithValidators appends validators. Each raw value of the option runs through them in order.
func WithValidators(validators ...validation.Validator) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.validators = append(option.validators, validators...)
	}
}

// WithCheck appends a predicate validator; message describes the rule
func WithCheck(check func(string) bool, message string) ConfigureOptionFunc {
	return WithValidators(validation.Custom(check, message))
}

// WithEnv sets the environment variable consulted when the option is absent from the command line
func WithEnv(name string) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.envVar = name
	}
}

// WithExpected sets the exact number of values the option consumes. 0 turns the option into a flag.
func WithExpected(n int) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.cardinality = types.Exactly(n)
		option.cardSet = true
	}
}

// WithExpectedRange sets the minimum and maximum number of values. A max of 0 means unlimited.
func WithExpectedRange(min, max int) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.cardinality = types.Between(min, max)
		option.cardSet = true
	}
}

// WithCallback sets the function invoked with the option's final value
func WithCallback(callback CallbackFunc) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.callback = callback
	}
}

// WithGroup sets the group the option is listed under in help output
func WithGroup(group string) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.group = group
	}
}

// WithDeprecated marks the option as deprecated. Using it produces a note, never an error.
func WithDeprecated(message string) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		if option.deprecation == nil {
			option.deprecation = &types.Deprecation{}
		}
		option.deprecation.Message = message
	}
}

// WithSuggestion names the option to use instead of a deprecated one. It implies WithDeprecated.
func WithSuggestion(alternative string) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		if option.deprecation == nil {
			option.deprecation = &types.Deprecation{}
		}
		option.deprecation.Alternative = alternative
	}
}

// WithDuplicatePolicy sets what happens when the option occurs more than once
func WithDuplicatePolicy(policy types.DuplicatePolicy) ConfigureOptionFunc {
	return func(option *OptionSpec, err *error) {
		option.policy = policy
	}
}
