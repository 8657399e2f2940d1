package cmdline

import (
	"slices"

	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/validation"
)

// OptionBuilder accumulates the attributes of an option until Register hands the finished OptionSpec
// to its Command. Builders are values: every method returns a new builder and leaves the receiver
// untouched.
//
//	err := app.Option("p,port", "listen port").
//		Type(types.KindInt).
//		Default(types.IntValue(8080)).
//		Validate(validation.Range(1, 65535)).
//		Env("PORT").
//		Register()
type OptionBuilder struct {
	cmd         *Command
	name        string
	description string
	flag        bool
	configs     []ConfigureOptionFunc
}

// Option starts the declaration of a value-taking option
func (c *Command) Option(name, description string) OptionBuilder {
	return OptionBuilder{cmd: c, name: name, description: description}
}

// Flag starts the declaration of a flag
func (c *Command) Flag(name, description string) OptionBuilder {
	return OptionBuilder{cmd: c, name: name, description: description, flag: true}
}

func (b OptionBuilder) with(config ConfigureOptionFunc) OptionBuilder {
	b.configs = append(slices.Clip(b.configs), config)
	return b
}

// Required marks the option as required
func (b OptionBuilder) Required() OptionBuilder {
	return b.with(SetRequired(true))
}

// Default sets the default value
func (b OptionBuilder) Default(value types.Value) OptionBuilder {
	return b.with(WithDefault(value))
}

// Check adds a predicate validator
func (b OptionBuilder) Check(check func(string) bool, message string) OptionBuilder {
	return b.with(WithCheck(check, message))
}

// Validate adds validators
func (b OptionBuilder) Validate(validators ...validation.Validator) OptionBuilder {
	return b.with(WithValidators(validators...))
}

// Env sets the environment fallback variable
func (b OptionBuilder) Env(name string) OptionBuilder {
	return b.with(WithEnv(name))
}

// Expected sets the exact number of values
func (b OptionBuilder) Expected(n int) OptionBuilder {
	return b.with(WithExpected(n))
}

// ExpectedRange sets the value count range; max 0 means unlimited
func (b OptionBuilder) ExpectedRange(min, max int) OptionBuilder {
	return b.with(WithExpectedRange(min, max))
}

// Callback sets the value callback
func (b OptionBuilder) Callback(callback CallbackFunc) OptionBuilder {
	return b.with(WithCallback(callback))
}

// Group sets the help group
func (b OptionBuilder) Group(group string) OptionBuilder {
	return b.with(WithGroup(group))
}

// Deprecated marks the option as deprecated
func (b OptionBuilder) Deprecated(message string) OptionBuilder {
	return b.with(WithDeprecated(message))
}

// Suggest names the replacement of a deprecated option
func (b OptionBuilder) Suggest(alternative string) OptionBuilder {
	return b.with(WithSuggestion(alternative))
}

// Type sets the element kind
func (b OptionBuilder) Type(kind types.Kind) OptionBuilder {
	return b.with(WithType(kind))
}

// DuplicatePolicy sets the duplicate policy
func (b OptionBuilder) DuplicatePolicy(policy types.DuplicatePolicy) OptionBuilder {
	return b.with(WithDuplicatePolicy(policy))
}

// Register validates the accumulated attributes and adds the option to the command
func (b OptionBuilder) Register() error {
	return b.cmd.add(b.name, b.description, b.flag, b.configs)
}
