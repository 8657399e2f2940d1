package cmdline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/types/orderedmap"
	"github.com/napalu/cmdline/types/queue"
)

// maxSuggestionDistance is the Levenshtein distance within which unknown names get a suggestion
const maxSuggestionDistance = 2

// outcome is the part of a parse shared by every command level
type outcome struct {
	errors      []*errs.ParseError
	notes       []types.Note
	remaining   []string
	positionals []string
	path        []string
	callbacks   *queue.Q[pendingCallback]
	defaults    map[string]string
}

type pendingCallback struct {
	spec  *OptionSpec
	value types.Value
	path  []string
}

// level is the parse state of one command level
type level struct {
	cmd     *Command
	cfg     effective
	path    []string
	out     *outcome
	tz      *parse.Tokenizer
	values  *orderedmap.OrderedMap[string, types.Value]
	raw     map[string][]string
	counts  map[string]int
	sources map[string]types.Source
	failed  map[string]bool
	noted   map[string]bool
}

func (c *Command) parse(args []string, defaults map[string]string) *Result {
	out := &outcome{
		callbacks: queue.New[pendingCallback](),
		defaults:  defaults,
	}
	root := c.parseLevel(args, rootEffective(), nil, out)
	out.callbacks.Drain(func(p pendingCallback) {
		if err := p.invoke(); err != nil {
			e := errs.New(errs.InternalError, fmt.Sprintf("callback for option '%s' failed: %v", p.spec.display(), err)).
				WithOption(p.spec.Name())
			e.Command = p.path
			out.errors = append(out.errors, e)
		}
	})

	return newResult(c, root, out)
}

func (p pendingCallback) invoke() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return p.spec.callback(types.Clone(p.value))
}

// parseLevel matches args against c, dispatching to a subcommand when one is named. Validation of this
// level runs once the dispatched subcommand, if any, has been parsed.
func (c *Command) parseLevel(args []string, parent effective, path []string, out *outcome) *level {
	l := &level{
		cmd:     c,
		cfg:     c.settings.resolve(parent),
		path:    path,
		out:     out,
		values:  orderedmap.NewOrderedMap[string, types.Value](),
		raw:     map[string][]string{},
		counts:  map[string]int{},
		sources: map[string]types.Source{},
		failed:  map[string]bool{},
		noted:   map[string]bool{},
	}
	l.tz = parse.NewTokenizer(args, l, l.cfg.posixGrouping)

	var child *level
	for child == nil {
		tok, ok := l.tz.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case parse.Separator:
			out.remaining = append(out.remaining, tok.Rest...)
		case parse.Long:
			if spec, found := c.longIndex[tok.Name]; found {
				l.match(spec, tok)
			} else {
				l.unknown(tok)
			}
		case parse.Short:
			if spec, found := l.resolveShort(tok.Name); found {
				l.match(spec, tok)
			} else {
				l.unknown(tok)
			}
		case parse.Unknown:
			l.unknown(tok)
		case parse.Malformed:
			l.fail(errs.New(errs.InvalidFormat, fmt.Sprintf("malformed option '%s'", tok.Raw)).WithArgument(tok.Raw))
		case parse.Positional:
			if sub, found := c.subcommands.Get(tok.Raw); found {
				out.path = append(out.path, sub.name)
				child = sub.parseLevel(l.tz.Rest(), l.cfg, append(slices.Clip(path), sub.name), out)
			} else {
				l.positional(tok.Raw)
			}
		}
	}

	if child == nil && c.subcommandRequired && c.subcommands.Count() > 0 {
		l.fail(errs.New(errs.SubcommandError, fmt.Sprintf("command '%s' requires a subcommand: %s",
			c.name, strings.Join(c.subcommands.Keys(), ", "))))
	}
	l.validate()
	if child != nil {
		l.merge(child)
	}

	return l
}

// LookupShort implements parse.AliasLookup
func (l *level) LookupShort(c string) (bool, bool) {
	spec, found := l.cmd.shortIndex[c]
	if !found {
		return false, false
	}
	return true, !spec.flag
}

// resolveShort looks name up as a short alias, then as a long alias. When both match the option
// declared first wins.
func (l *level) resolveShort(name string) (*OptionSpec, bool) {
	short, shortFound := l.cmd.shortIndex[name]
	long, longFound := l.cmd.longIndex[name]
	switch {
	case shortFound && longFound:
		if long.order < short.order {
			return long, true
		}
		return short, true
	case shortFound:
		return short, true
	case longFound:
		return long, true
	}
	return nil, false
}

func (l *level) match(spec *OptionSpec, tok parse.Token) {
	l.deprecated(spec)
	if spec.flag {
		if tok.HasValue {
			l.failOption(spec, errs.New(errs.ExtraValue,
				fmt.Sprintf("flag '%s' does not take a value", spec.display())).WithArgument(tok.Raw))
			return
		}
		l.store(spec, types.BoolValue(true), nil, tok.Raw)
		return
	}

	texts := l.consume(spec, tok)
	card := spec.cardinality
	if len(texts) < card.Min {
		msg := fmt.Sprintf("option '%s' requires a value", spec.display())
		if card.Min > 1 {
			msg = fmt.Sprintf("option '%s' expects at least %d values, got %d", spec.display(), card.Min, len(texts))
		}
		l.failOption(spec, errs.New(errs.MissingValue, msg).WithArgument(tok.Raw))
		return
	}
	if len(texts) == 0 {
		v, ok := l.implicit(spec)
		if !ok {
			l.failOption(spec, errs.New(errs.MissingValue,
				fmt.Sprintf("option '%s' requires a value", spec.display())).WithArgument(tok.Raw))
			return
		}
		l.store(spec, v, nil, tok.Raw)
		return
	}

	v, raw, err := l.coerce(spec, texts)
	if err != nil {
		l.failOption(spec, errs.New(errs.TypeMismatch,
			fmt.Sprintf("option '%s': %s", spec.display(), err)).WithArgument(tok.Raw))
		return
	}
	l.store(spec, v, raw, tok.Raw)
}

// consume collects the values of spec: the attached value, then following arguments up to the
// declared maximum. Past the minimum, consumption stops at the first ineligible argument.
func (l *level) consume(spec *OptionSpec, tok parse.Token) []string {
	var texts []string
	if tok.HasValue {
		texts = append(texts, tok.Value)
	}
	card := spec.cardinality
	for len(texts) < card.Max {
		next, ok := l.tz.Peek()
		if !ok || !l.eligible(next, len(texts) < card.Min) {
			break
		}
		l.tz.Take()
		texts = append(texts, next)
	}
	return texts
}

// eligible reports whether next can be consumed as a value. A mandatory value may be anything except
// the separator or a declared option; optional values must not look like an option or name a subcommand.
func (l *level) eligible(next string, mandatory bool) bool {
	if next == "--" || l.isKnownOption(next) {
		return false
	}
	if mandatory {
		return true
	}
	if len(next) > 1 && next[0] == '-' && !util.IsNumeric(next) {
		return false
	}
	return !l.cmd.subcommands.Has(next)
}

func (l *level) isKnownOption(arg string) bool {
	switch {
	case strings.HasPrefix(arg, "--"):
		name, _, _ := strings.Cut(arg[2:], "=")
		_, found := l.cmd.longIndex[name]
		return found
	case len(arg) > 1 && arg[0] == '-':
		body := arg[1:]
		if l.cfg.posixGrouping {
			_, found := l.cmd.shortIndex[string([]rune(body)[:1])]
			return found
		}
		name, _, _ := strings.Cut(body, "=")
		_, found := l.resolveShort(name)
		return found
	}
	return false
}

// implicit returns the value of an option whose minimum is 0 and which was given without a value
func (l *level) implicit(spec *OptionSpec) (types.Value, bool) {
	if spec.kind == types.KindList || spec.cardinality.IsMulti() {
		return types.ListValue{}, true
	}
	var text string
	switch spec.kind {
	case types.KindBool:
		text = "true"
	case types.KindString:
		text = ""
	default:
		return nil, false
	}
	if spec.StoredKind() == types.KindList {
		return types.ListValue{text}, true
	}
	v, err := util.Coerce(spec.kind, text)
	return v, err == nil
}

// coerce converts texts to the stored kind of spec. It returns the raw elements validators run on.
func (l *level) coerce(spec *OptionSpec, texts []string) (types.Value, []string, error) {
	switch {
	case spec.kind == types.KindList:
		items := make([]string, 0, len(texts))
		for _, t := range texts {
			items = append(items, util.SplitList(t, l.cfg.listFunc)...)
		}
		return types.ListValue(items), items, nil
	case spec.StoredKind() == types.KindList:
		v, err := util.CoerceList(spec.kind, texts)
		return v, texts, err
	default:
		v, err := util.Coerce(spec.kind, texts[0])
		return v, texts[:1], err
	}
}

// store records a matched value, applying the duplicate policy of spec
func (l *level) store(spec *OptionSpec, value types.Value, raw []string, arg string) {
	name := spec.Name()
	n := l.counts[name]
	l.counts[name] = n + 1
	if n > 0 {
		switch spec.policy {
		case types.Error:
			e := errs.New(errs.DuplicateOption, fmt.Sprintf("option '%s' specified more than once", spec.display()))
			l.fail(e.WithArgument(arg).WithOption(name))
			return
		case types.Accumulate:
			prev, _ := l.values.Get(name)
			l.values.Set(name, types.ListValue(append(types.Elements(prev), types.Elements(value)...)))
			l.raw[name] = append(l.raw[name], raw...)
			return
		}
	}
	if spec.StoredKind() == types.KindList && value.Kind() != types.KindList {
		value = types.ListValue(types.Elements(value))
	}
	l.values.Set(name, value)
	l.raw[name] = slices.Clone(raw)
	l.sources[name] = types.SourceCommandLine
}

func (l *level) unknown(tok parse.Token) {
	if l.cfg.allowUnknown {
		l.out.remaining = append(l.out.remaining, tok.Raw)
		if !tok.HasValue {
			if next, ok := l.tz.Peek(); ok && l.eligible(next, false) {
				l.tz.Take()
				l.out.remaining = append(l.out.remaining, next)
			}
		}
		return
	}

	msg := fmt.Sprintf("unknown option '%s'", tok.Raw)
	if len([]rune(tok.Name)) > 1 {
		longs := make([]string, 0, len(l.cmd.longIndex))
		for _, spec := range l.cmd.Options() {
			if spec.long != "" {
				longs = append(longs, spec.long)
			}
		}
		if s, found := util.Closest(tok.Name, longs, maxSuggestionDistance); found {
			msg += fmt.Sprintf("; did you mean '--%s'?", s)
		}
	}
	l.fail(errs.New(errs.UnknownOption, msg).WithArgument(tok.Raw))
}

// positional handles an argument which is neither an option nor a value. Commands without
// subcommands collect it; otherwise it is an unknown subcommand.
func (l *level) positional(arg string) {
	if l.cmd.subcommands.Count() == 0 {
		l.out.positionals = append(l.out.positionals, arg)
		return
	}
	if l.cfg.allowUnknown {
		l.out.remaining = append(l.out.remaining, arg)
		return
	}

	msg := fmt.Sprintf("unknown subcommand '%s'", arg)
	if s, found := util.Closest(arg, l.cmd.subcommands.Keys(), maxSuggestionDistance); found {
		msg += fmt.Sprintf("; did you mean '%s'?", s)
	}
	l.fail(errs.New(errs.SubcommandError, msg).WithArgument(arg))
}

// deprecated records a note the first time a deprecated option is used
func (l *level) deprecated(spec *OptionSpec) {
	if spec.deprecation == nil || l.noted[spec.Name()] {
		return
	}
	l.noted[spec.Name()] = true

	note := types.Note{Option: spec.display(), Message: spec.deprecation.Message}
	if alt := spec.deprecation.Alternative; alt != "" {
		if len([]rune(alt)) == 1 {
			note.Alternative = "-" + alt
		} else {
			note.Alternative = "--" + alt
		}
	}
	l.out.notes = append(l.out.notes, note)
	if l.cfg.noteWriter != nil {
		_, _ = fmt.Fprintln(l.cfg.noteWriter, "warning: "+note.String())
	}
}

// validate resolves environment fallbacks and defaults, then checks required options and runs validators
func (l *level) validate() {
	for it := l.cmd.options.Front(); it != nil; it = it.Next() {
		spec := it.Value
		name := spec.Name()
		if l.failed[name] {
			continue
		}
		if !l.values.Has(name) {
			l.fromEnv(spec)
			if l.failed[name] {
				continue
			}
		}
		if !l.values.Has(name) {
			l.fromDefault(spec)
			if l.failed[name] {
				continue
			}
		}

		value, found := l.values.Get(name)
		if !found {
			if spec.required {
				msg := fmt.Sprintf("required option '%s' is missing", spec.display())
				if envName := l.envName(spec); envName != "" {
					msg += fmt.Sprintf(" (environment variable %s is not set)", envName)
				}
				l.failOption(spec, errs.New(errs.MissingRequired, msg))
			}
			continue
		}
		if !l.runValidators(spec) {
			continue
		}
		if spec.callback != nil && l.sources[name] != types.SourceDefault {
			l.out.callbacks.Enqueue(pendingCallback{spec: spec, value: value, path: slices.Clone(l.path)})
		}
	}
}

func (l *level) envName(spec *OptionSpec) string {
	if spec.envVar != "" {
		return spec.envVar
	}
	if !l.cfg.autoEnv {
		return ""
	}
	var parts []string
	if l.cfg.envPrefix != "" {
		parts = append(parts, l.cfg.envPrefix)
	}
	parts = append(parts, l.path...)
	parts = append(parts, spec.Name())
	return l.cfg.envNameConverter(strings.Join(parts, "_"))
}

func (l *level) fromEnv(spec *OptionSpec) {
	envName := l.envName(spec)
	if envName == "" {
		return
	}
	text, found := l.cfg.envResolver.Lookup(envName)
	if !found {
		return
	}
	v, raw, err := l.fromText(spec, text)
	if err != nil {
		l.failOption(spec, errs.New(errs.TypeMismatch,
			fmt.Sprintf("environment variable %s for option '%s': %s", envName, spec.display(), err)).WithArgument(text))
		return
	}
	l.values.Set(spec.Name(), v)
	l.raw[spec.Name()] = raw
	l.sources[spec.Name()] = types.SourceEnv
}

func (l *level) fromDefault(spec *OptionSpec) {
	name := spec.Name()
	if text, found := l.out.defaults[name]; found {
		v, raw, err := l.fromText(spec, text)
		if err != nil {
			l.failOption(spec, errs.New(errs.TypeMismatch,
				fmt.Sprintf("default for option '%s': %s", spec.display(), err)).WithArgument(text))
			return
		}
		l.values.Set(name, v)
		l.raw[name] = raw
		l.sources[name] = types.SourceDefault
		return
	}
	if spec.def != nil {
		l.values.Set(name, types.Clone(spec.def))
		l.raw[name] = types.Elements(spec.def)
		l.sources[name] = types.SourceDefault
	}
}

// fromText coerces text supplied outside the argument list; list-valued options split it first
func (l *level) fromText(spec *OptionSpec, text string) (types.Value, []string, error) {
	texts := []string{text}
	if spec.StoredKind() == types.KindList && spec.kind != types.KindList {
		texts = util.SplitList(text, l.cfg.listFunc)
	}
	if len(texts) == 0 {
		return types.ListValue{}, nil, nil
	}
	return l.coerce(spec, texts)
}

// runValidators checks every raw value of spec; the first failing validator is reported
func (l *level) runValidators(spec *OptionSpec) bool {
	for _, text := range l.raw[spec.Name()] {
		for _, v := range spec.validators {
			if err := v.Validate(text); err != nil {
				l.failOption(spec, errs.New(errs.ValidationFailed,
					fmt.Sprintf("option '%s': %s", spec.display(), err)).WithArgument(text))
				return false
			}
		}
	}
	return true
}

// merge overlays the values of a dispatched subcommand onto this level
func (l *level) merge(child *level) {
	for it := child.values.Front(); it != nil; it = it.Next() {
		l.values.Set(it.Key, it.Value)
		l.sources[it.Key] = child.sources[it.Key]
	}
}

func (l *level) failOption(spec *OptionSpec, e *errs.ParseError) {
	l.failed[spec.Name()] = true
	l.fail(e.WithOption(spec.Name()))
}

func (l *level) fail(e *errs.ParseError) {
	e.Command = slices.Clone(l.path)
	l.out.errors = append(l.out.errors, e)
}
