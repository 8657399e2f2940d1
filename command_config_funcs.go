package cmdline

import (
	"io"

	"github.com/napalu/cmdline/env"
	"github.com/napalu/cmdline/types"
)

// WithDescription sets the command description
func WithDescription(description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.description = description
	}
}

// WithVersion sets the version string consumed by help renderers
func WithVersion(version string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.version = version
	}
}

// WithFooter sets the help footer
func WithFooter(footer string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.footer = footer
	}
}

// WithAllowUnknownOptions passes unknown options through to Result.RemainingArgs
func WithAllowUnknownOptions(allow bool) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetAllowUnknownOptions(allow)
	}
}

// WithPosixGrouping toggles short option cluster expansion
func WithPosixGrouping(enabled bool) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetPosixGrouping(enabled)
	}
}

// RequireSubcommand makes a parse fail when no subcommand is dispatched
func RequireSubcommand() ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.subcommandRequired = true
	}
}

// WithListDelimiterFunc sets the runes splitting list values
func WithListDelimiterFunc(delimiterFunc types.ListDelimiterFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetListDelimiterFunc(delimiterFunc)
	}
}

// WithEnvResolver sets the source of environment fallbacks
func WithEnvResolver(resolver env.Resolver) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetEnvResolver(resolver)
	}
}

// WithAutoEnv derives environment variable names from prefix; see Command.SetAutoEnv
func WithAutoEnv(prefix string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetAutoEnv(prefix)
	}
}

// WithEnvNameConverter sets the conversion applied to derived environment variable names
func WithEnvNameConverter(converter NameConversionFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetEnvNameConverter(converter)
	}
}

// WithNoteWriter sets where deprecation notes are written
func WithNoteWriter(w io.Writer) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.SetNoteWriter(w)
	}
}

// WithOption is a wrapper for AddOption
func WithOption(name, description string, configs ...ConfigureOptionFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddOption(name, description, configs...)
	}
}

// WithFlag is a wrapper for AddFlag
func WithFlag(name, description string, configs ...ConfigureOptionFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		*err = command.AddFlag(name, description, configs...)
	}
}

// WithSubcommand is a wrapper for AddSubcommand
func WithSubcommand(name, description string, configs ...ConfigureCommandFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		_, *err = command.AddSubcommand(name, description, configs...)
	}
}
