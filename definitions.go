package cmdline

import (
	"io"

	"github.com/napalu/cmdline/env"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/types/orderedmap"
	"github.com/napalu/cmdline/validation"
)

// Command describes one level of a command line: its options and its subcommands. Commands are
// configured once and may then be parsed any number of times, concurrently if need be. Parsing never
// modifies a Command.
type Command struct {
	name        string
	description string
	version     string
	footer      string
	options     *orderedmap.OrderedMap[string, *OptionSpec]
	shortIndex  map[string]*OptionSpec
	longIndex   map[string]*OptionSpec
	subcommands *orderedmap.OrderedMap[string, *Command]
	settings    settings
	// subcommandRequired makes a parse fail when no subcommand is dispatched
	subcommandRequired bool
}

// settings a subcommand inherits from its parent unless set on the subcommand itself
type settings struct {
	allowUnknown     *bool
	posixGrouping    *bool
	listFunc         types.ListDelimiterFunc
	envResolver      env.Resolver
	envPrefix        *string
	envNameConverter NameConversionFunc
	noteWriter       io.Writer
}

// OptionSpec is the immutable description of a declared option or flag
type OptionSpec struct {
	short       string
	long        string
	description string
	kind        types.Kind
	kindSet     bool
	flag        bool
	required    bool
	def         types.Value
	cardinality types.Cardinality
	cardSet     bool
	validators  []validation.Validator
	envVar      string
	policy      types.DuplicatePolicy
	deprecation *types.Deprecation
	group       string
	callback    CallbackFunc
	order       int
}

// ConfigureCommandFunc is used when defining Command settings
type ConfigureCommandFunc func(command *Command, err *error)

// ConfigureOptionFunc is used when defining OptionSpec attributes
type ConfigureOptionFunc func(option *OptionSpec, err *error)

// CallbackFunc is invoked once with the final value of an option supplied on the command line or
// through the environment, after the whole parse and only when that value passed validation. Values
// coming from declared or per-parse defaults never invoke it. A returned error is reported as an
// internal_error.
type CallbackFunc func(value types.Value) error

// NameConversionFunc converts an option name into an environment variable name
type NameConversionFunc func(string) string

// Gettable lists the Go types a Value can be retrieved as
type Gettable interface {
	string | bool | int | float64 | []string
}
