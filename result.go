package cmdline

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
)

// Result is the immutable outcome of a parse
type Result struct {
	values      map[string]types.Value
	order       []string
	sources     map[string]types.Source
	errors      []*errs.ParseError
	notes       []types.Note
	path        []string
	remaining   []string
	positionals []string
	declared    map[string]bool
}

func newResult(c *Command, root *level, out *outcome) *Result {
	r := &Result{
		values:      make(map[string]types.Value, root.values.Count()),
		order:       root.values.Keys(),
		sources:     root.sources,
		errors:      out.errors,
		notes:       out.notes,
		path:        out.path,
		remaining:   out.remaining,
		positionals: out.positionals,
		declared:    map[string]bool{},
	}
	for it := root.values.Front(); it != nil; it = it.Next() {
		r.values[it.Key] = it.Value
	}
	c.declaredNames(r.declared)

	return r
}

// Success is true when no error was found. It is the single source of truth for a parse outcome.
func (r *Result) Success() bool {
	return len(r.errors) == 0
}

// Failed is the negation of Success
func (r *Result) Failed() bool {
	return !r.Success()
}

// ErrorCount returns the number of errors found
func (r *Result) ErrorCount() int {
	return len(r.errors)
}

// Errors returns the parse errors in the order they were found
func (r *Result) Errors() []*errs.ParseError {
	out := make([]*errs.ParseError, len(r.errors))
	for i, e := range r.errors {
		c := *e
		c.Command = slices.Clone(e.Command)
		out[i] = &c
	}
	return out
}

// Err returns nil on success, otherwise every parse error joined with errors.Join
func (r *Result) Err() error {
	if r.Success() {
		return nil
	}
	all := make([]error, len(r.errors))
	for i, e := range r.Errors() {
		all[i] = e
	}
	return errors.Join(all...)
}

// ErrorMessage returns every error on its own line, in the order they were found
func (r *Result) ErrorMessage() string {
	lines := make([]string, len(r.errors))
	for i, e := range r.errors {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Values returns a copy of the value table, keyed by option name. Values of a dispatched subcommand are
// merged in; on a shared name the subcommand's value wins.
func (r *Result) Values() map[string]types.Value {
	out := make(map[string]types.Value, len(r.values))
	for k, v := range r.values {
		out[k] = types.Clone(v)
	}
	return out
}

// Names returns the names of the options holding a value, in the order they were resolved
func (r *Result) Names() []string {
	return slices.Clone(r.order)
}

// Value returns the Value stored for name
func (r *Result) Value(name string) (types.Value, bool) {
	v, found := r.values[name]
	if !found {
		return nil, false
	}
	return types.Clone(v), true
}

// Has reports whether name holds a value. It panics with a *errs.UsageError when no command of the
// parsed tree declares name.
func (r *Result) Has(name string) bool {
	if !r.declared[name] {
		panic(&errs.UsageError{Option: name, Err: errs.ErrUndeclaredOption})
	}
	_, found := r.values[name]
	return found
}

// Source tells where the value of name came from
func (r *Result) Source(name string) types.Source {
	if _, found := r.values[name]; !found {
		return types.SourceNone
	}
	return r.sources[name]
}

// Subcommand returns the outermost dispatched subcommand
func (r *Result) Subcommand() (string, bool) {
	if len(r.path) == 0 {
		return "", false
	}
	return r.path[0], true
}

// Path returns every dispatched subcommand, outermost first
func (r *Result) Path() []string {
	return slices.Clone(r.path)
}

// RemainingArgs returns the arguments following a bare --, and unknown arguments passed through when
// unknown options are allowed
func (r *Result) RemainingArgs() []string {
	return slices.Clone(r.remaining)
}

// Positionals returns the arguments collected by a command without subcommands
func (r *Result) Positionals() []string {
	return slices.Clone(r.positionals)
}

// Notes returns the informational notes, such as deprecation warnings, produced while parsing
func (r *Result) Notes() []types.Note {
	return slices.Clone(r.notes)
}

// Get returns the value of name as T. It returns a *errs.UsageError when name holds no value or holds a
// value of another type.
func Get[T Gettable](r *Result, name string) (T, error) {
	var zero T
	v, found := r.values[name]
	if !found {
		err := errs.ErrOptionNotSet
		if !r.declared[name] {
			err = errs.ErrUndeclaredOption
		}
		return zero, &errs.UsageError{Option: name, Err: err}
	}

	t, ok := native(v).(T)
	if !ok {
		return zero, &errs.UsageError{
			Option: name,
			Err:    errs.ErrWrongValueType,
			Detail: fmt.Sprintf("stored %s, requested %T", v.Kind(), zero),
		}
	}

	return t, nil
}

// TryGet returns the value of name as T, or false when it holds no value or a value of another type
func TryGet[T Gettable](r *Result, name string) (T, bool) {
	t, err := Get[T](r, name)
	return t, err == nil
}

// MustGet returns the value of name as T and panics with a *errs.UsageError otherwise
func MustGet[T Gettable](r *Result, name string) T {
	t, err := Get[T](r, name)
	if err != nil {
		panic(err)
	}
	return t
}

// GetOrDefault returns the value of name as T, or defaultValue when TryGet would fail
func GetOrDefault[T Gettable](r *Result, name string, defaultValue T) T {
	if t, ok := TryGet[T](r, name); ok {
		return t
	}
	return defaultValue
}

// native returns the Go value held by v
func native(v types.Value) any {
	switch val := v.(type) {
	case types.StringValue:
		return string(val)
	case types.BoolValue:
		return bool(val)
	case types.IntValue:
		return int(val)
	case types.FloatValue:
		return float64(val)
	case types.ListValue:
		return slices.Clone([]string(val))
	}
	return nil
}
