package cmdline

import (
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/cmdline/env"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/types/orderedmap"
)

// NewCommand creates a Command. Configuration errors are ignored; use NewCommandWith to check them.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := newCommand(name)
	for _, config := range configs {
		var err error
		config(cmd, &err)
	}

	return cmd
}

// NewCommandWith creates a Command using option functions. The caller should always test for error on
// return because the Command will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	app, err := NewCommandWith("app",
//		WithDescription("does things"),
//		WithOption("v,verbose", "be chatty", WithExpected(0)),
//		WithOption("o,output", "where to write", SetRequired(true)),
//		WithSubcommand("build", "build it",
//			WithOption("target", "build target",
//				WithValidators(validation.Choice("x64", "arm64")))))
func NewCommandWith(name string, configs ...ConfigureCommandFunc) (*Command, error) {
	cmd := newCommand(name)
	var err error
	for _, config := range configs {
		config(cmd, &err)
		if err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

func newCommand(name string) *Command {
	return &Command{
		name:        name,
		options:     orderedmap.NewOrderedMap[string, *OptionSpec](),
		shortIndex:  map[string]*OptionSpec{},
		longIndex:   map[string]*OptionSpec{},
		subcommands: orderedmap.NewOrderedMap[string, *Command](),
	}
}

// AddOption declares a value-taking option. name has the form "short,long" or "long".
func (c *Command) AddOption(name, description string, configs ...ConfigureOptionFunc) error {
	return c.add(name, description, false, configs)
}

// AddFlag declares a boolean option which takes no value
func (c *Command) AddFlag(name, description string, configs ...ConfigureOptionFunc) error {
	return c.add(name, description, true, configs)
}

func (c *Command) add(name, description string, flag bool, configs []ConfigureOptionFunc) error {
	option, err := newOptionSpec(name, description, flag)
	if err != nil {
		return err
	}
	for _, config := range configs {
		config(option, &err)
		if err != nil {
			return err
		}
	}
	if err = option.finalize(); err != nil {
		return err
	}

	return c.register(option)
}

func (c *Command) register(option *OptionSpec) error {
	if option.short != "" {
		if _, found := c.shortIndex[option.short]; found {
			return fmt.Errorf("%w: -%s in command '%s'", errs.ErrAliasExists, option.short, c.name)
		}
	}
	if option.long != "" {
		if _, found := c.longIndex[option.long]; found {
			return fmt.Errorf("%w: --%s in command '%s'", errs.ErrAliasExists, option.long, c.name)
		}
	}
	if c.options.Has(option.Name()) {
		return fmt.Errorf("%w: %s in command '%s'", errs.ErrAliasExists, option.Name(), c.name)
	}

	option.order = c.options.Count()
	c.options.Set(option.Name(), option)
	if option.short != "" {
		c.shortIndex[option.short] = option
	}
	if option.long != "" {
		c.longIndex[option.long] = option
	}

	return nil
}

// AddSubcommand declares a child Command. Settings not configured on the child are inherited from
// this command at parse time.
func (c *Command) AddSubcommand(name, description string, configs ...ConfigureCommandFunc) (*Command, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "-") || strings.ContainsAny(name, " \t\n") {
		return nil, fmt.Errorf("%w: subcommand '%s'", errs.ErrInvalidName, name)
	}
	if c.subcommands.Has(name) {
		return nil, fmt.Errorf("%w: '%s' in command '%s'", errs.ErrCommandExists, name, c.name)
	}
	child := newCommand(name)
	child.description = description
	var err error
	for _, config := range configs {
		config(child, &err)
		if err != nil {
			return nil, err
		}
	}
	c.subcommands.Set(name, child)

	return child, nil
}

// Name returns the command name
func (c *Command) Name() string {
	return c.name
}

// Description returns the command description
func (c *Command) Description() string {
	return c.description
}

// Version returns the version string shown by help renderers
func (c *Command) Version() string {
	return c.version
}

// Footer returns the text shown after the help output
func (c *Command) Footer() string {
	return c.footer
}

// Options returns the declared options in declaration order
func (c *Command) Options() []*OptionSpec {
	out := make([]*OptionSpec, 0, c.options.Count())
	for it := c.options.Front(); it != nil; it = it.Next() {
		out = append(out, it.Value)
	}
	return out
}

// LookupOption returns the option stored under name (its long alias, else its short alias)
func (c *Command) LookupOption(name string) (*OptionSpec, bool) {
	return c.options.Get(name)
}

// Subcommands returns the declared subcommands in declaration order
func (c *Command) Subcommands() []*Command {
	out := make([]*Command, 0, c.subcommands.Count())
	for it := c.subcommands.Front(); it != nil; it = it.Next() {
		out = append(out, it.Value)
	}
	return out
}

// Subcommand returns the direct child named name
func (c *Command) Subcommand(name string) (*Command, bool) {
	return c.subcommands.Get(name)
}

// Groups returns the option group names in order of first use; ungrouped options are not listed
func (c *Command) Groups() []string {
	var groups []string
	seen := map[string]bool{}
	for it := c.options.Front(); it != nil; it = it.Next() {
		if g := it.Value.group; g != "" && !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	return groups
}

// SubcommandRequired reports whether a parse must dispatch to a subcommand
func (c *Command) SubcommandRequired() bool {
	return c.subcommandRequired
}

// SetDescription sets the command description and returns the previous one
func (c *Command) SetDescription(description string) string {
	old := c.description
	c.description = description
	return old
}

// SetVersion sets the version string and returns the previous one
func (c *Command) SetVersion(version string) string {
	old := c.version
	c.version = version
	return old
}

// SetFooter sets the help footer and returns the previous one
func (c *Command) SetFooter(footer string) string {
	old := c.footer
	c.footer = footer
	return old
}

// SetAllowUnknownOptions when true, unknown options are passed through to Result.RemainingArgs
// instead of being reported. Returns the value previously set on this command.
func (c *Command) SetAllowUnknownOptions(allow bool) bool {
	old := c.settings.allowUnknown != nil && *c.settings.allowUnknown
	c.settings.allowUnknown = &allow
	return old
}

// SetPosixGrouping toggles expansion of short option clusters (-abc). Enabled by default.
// Returns the value previously set on this command.
func (c *Command) SetPosixGrouping(enabled bool) bool {
	old := c.settings.posixGrouping == nil || *c.settings.posixGrouping
	c.settings.posixGrouping = &enabled
	return old
}

// SetSubcommandRequired makes a parse fail with a subcommand_error when no subcommand is given
func (c *Command) SetSubcommandRequired(required bool) bool {
	old := c.subcommandRequired
	c.subcommandRequired = required
	return old
}

// SetListDelimiterFunc sets the function deciding which runes split list values. nil restores the
// default of ',', '|' and ' '.
func (c *Command) SetListDelimiterFunc(delimiterFunc types.ListDelimiterFunc) {
	c.settings.listFunc = delimiterFunc
}

// SetEnvResolver replaces the process environment as the source of environment fallbacks
func (c *Command) SetEnvResolver(resolver env.Resolver) {
	c.settings.envResolver = resolver
}

// SetAutoEnv derives an environment variable for every option without an explicit one, made of prefix,
// the subcommand path and the option name, converted by the env name converter
// (SCREAMING_SNAKE_CASE by default). "APP" maps option log-level of subcommand serve to APP_SERVE_LOG_LEVEL.
func (c *Command) SetAutoEnv(prefix string) {
	c.settings.envPrefix = &prefix
}

// SetEnvNameConverter replaces the conversion applied to derived environment variable names
func (c *Command) SetEnvNameConverter(converter NameConversionFunc) {
	c.settings.envNameConverter = converter
}

// SetNoteWriter sets where deprecation notes are written while parsing. nil disables writing;
// notes remain available from Result.Notes.
func (c *Command) SetNoteWriter(w io.Writer) {
	c.settings.noteWriter = w
}

// effective settings of one parse level
type effective struct {
	allowUnknown     bool
	posixGrouping    bool
	listFunc         types.ListDelimiterFunc
	envResolver      env.Resolver
	autoEnv          bool
	envPrefix        string
	envNameConverter NameConversionFunc
	noteWriter       io.Writer
}

func rootEffective() effective {
	return effective{
		posixGrouping:    true,
		listFunc:         types.DefaultListDelimiter,
		envResolver:      &env.DefaultEnvResolver{},
		envNameConverter: strcase.ToScreamingSnake,
	}
}

func (s settings) resolve(parent effective) effective {
	e := parent
	if s.allowUnknown != nil {
		e.allowUnknown = *s.allowUnknown
	}
	if s.posixGrouping != nil {
		e.posixGrouping = *s.posixGrouping
	}
	if s.listFunc != nil {
		e.listFunc = s.listFunc
	}
	if s.envResolver != nil {
		e.envResolver = s.envResolver
	}
	if s.envPrefix != nil {
		e.autoEnv = true
		e.envPrefix = *s.envPrefix
	}
	if s.envNameConverter != nil {
		e.envNameConverter = s.envNameConverter
	}
	if s.noteWriter != nil {
		e.noteWriter = s.noteWriter
	}
	return e
}

// declaredNames collects the option names declared anywhere in the command tree
func (c *Command) declaredNames(into map[string]bool) {
	for _, name := range c.options.Keys() {
		into[name] = true
	}
	for it := c.subcommands.Front(); it != nil; it = it.Next() {
		it.Value.declaredNames(into)
	}
}
