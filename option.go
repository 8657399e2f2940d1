package cmdline

import (
	"fmt"
	"strings"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/validation"
)

// parseOptionName splits "short,long" or "long" into its aliases. Leading dashes are tolerated.
func parseOptionName(name string) (short, long string, err error) {
	if strings.TrimSpace(name) == "" {
		return "", "", errs.ErrEmptyName
	}
	parts := strings.Split(name, ",")
	if len(parts) > 2 {
		return "", "", fmt.Errorf("%w: '%s' has more than two aliases", errs.ErrInvalidName, name)
	}
	for _, p := range parts {
		alias := strings.TrimSpace(p)
		alias = strings.TrimPrefix(strings.TrimPrefix(alias, "-"), "-")
		if err := checkAlias(name, alias); err != nil {
			return "", "", err
		}
		if len([]rune(alias)) == 1 {
			if short != "" {
				return "", "", fmt.Errorf("%w: '%s' has two short aliases", errs.ErrInvalidName, name)
			}
			short = alias
		} else {
			if long != "" {
				return "", "", fmt.Errorf("%w: '%s' has two long aliases", errs.ErrInvalidName, name)
			}
			long = alias
		}
	}
	return short, long, nil
}

func checkAlias(name, alias string) error {
	if alias == "" {
		return fmt.Errorf("%w: empty alias in '%s'", errs.ErrInvalidName, name)
	}
	if strings.HasPrefix(alias, "-") || strings.ContainsAny(alias, "= \t\n") {
		return fmt.Errorf("%w: '%s'", errs.ErrInvalidName, alias)
	}
	return nil
}

// Name is the key under which the option's value is stored: the long alias, else the short one
func (o *OptionSpec) Name() string {
	if o.long != "" {
		return o.long
	}
	return o.short
}

// Short returns the short alias or an empty string
func (o *OptionSpec) Short() string {
	return o.short
}

// Long returns the long alias or an empty string
func (o *OptionSpec) Long() string {
	return o.long
}

// Description returns the help description
func (o *OptionSpec) Description() string {
	return o.description
}

// Kind returns the declared element kind of the option
func (o *OptionSpec) Kind() types.Kind {
	return o.kind
}

// StoredKind is the kind of the Value held in a Result: KindList for multi-value, accumulating
// and list options, Kind otherwise
func (o *OptionSpec) StoredKind() types.Kind {
	if o.kind == types.KindList || o.cardinality.IsMulti() || o.policy == types.Accumulate {
		return types.KindList
	}
	return o.kind
}

// IsFlag is true for options taking no value
func (o *OptionSpec) IsFlag() bool {
	return o.flag
}

// Required reports whether the option must be supplied
func (o *OptionSpec) Required() bool {
	return o.required
}

// Default returns the default value, if any
func (o *OptionSpec) Default() (types.Value, bool) {
	if o.def == nil {
		return nil, false
	}
	return types.Clone(o.def), true
}

// Cardinality returns the number of values the option consumes
func (o *OptionSpec) Cardinality() types.Cardinality {
	return o.cardinality
}

// Validators returns a copy of the option's validators
func (o *OptionSpec) Validators() []validation.Validator {
	out := make([]validation.Validator, len(o.validators))
	copy(out, o.validators)
	return out
}

// EnvVar returns the explicitly configured environment variable name
func (o *OptionSpec) EnvVar() string {
	return o.envVar
}

// DuplicatePolicy returns the policy applied when the option occurs more than once
func (o *OptionSpec) DuplicatePolicy() types.DuplicatePolicy {
	return o.policy
}

// Deprecation returns the deprecation details or nil
func (o *OptionSpec) Deprecation() *types.Deprecation {
	if o.deprecation == nil {
		return nil
	}
	d := *o.deprecation
	return &d
}

// Group returns the help group
func (o *OptionSpec) Group() string {
	return o.group
}

// HasCallback reports whether a callback is attached
func (o *OptionSpec) HasCallback() bool {
	return o.callback != nil
}

// String returns the aliases as they are typed on the command line
func (o *OptionSpec) String() string {
	switch {
	case o.short != "" && o.long != "":
		return "-" + o.short + ", --" + o.long
	case o.long != "":
		return "--" + o.long
	default:
		return "-" + o.short
	}
}

// display returns the alias used in messages
func (o *OptionSpec) display() string {
	if o.long != "" {
		return "--" + o.long
	}
	return "-" + o.short
}

func newOptionSpec(name, description string, flag bool) (*OptionSpec, error) {
	short, long, err := parseOptionName(name)
	if err != nil {
		return nil, err
	}
	o := &OptionSpec{
		short:       short,
		long:        long,
		description: description,
		kind:        types.KindString,
		cardinality: types.Exactly(1),
		policy:      types.LastWins,
		flag:        flag,
	}
	if flag {
		o.kind = types.KindBool
		o.cardinality = types.Exactly(0)
	}
	return o, nil
}

// finalize checks the combination of attributes once every ConfigureOptionFunc ran
func (o *OptionSpec) finalize() error {
	c := o.cardinality
	if c.Min < 0 || c.Max < c.Min {
		return fmt.Errorf("%w: %s for '%s'", errs.ErrInvalidCardinality, c, o.Name())
	}
	if o.flag && o.cardSet && !c.IsFlag() {
		return fmt.Errorf("%w: flag '%s' cannot take values", errs.ErrInvalidCardinality, o.Name())
	}
	if c.IsFlag() {
		o.flag = true
		if o.kindSet && o.kind != types.KindBool {
			return fmt.Errorf("%w: '%s' declared as %s", errs.ErrFlagKind, o.Name(), o.kind)
		}
		o.kind = types.KindBool
	}
	for _, v := range o.validators {
		if v == nil {
			return fmt.Errorf("%w: option '%s'", errs.ErrNilValidator, o.Name())
		}
	}
	if o.def != nil {
		if o.required {
			return fmt.Errorf("%w: '%s'", errs.ErrRequiredWithDefault, o.Name())
		}
		def, err := o.normalizeDefault(o.def)
		if err != nil {
			return err
		}
		o.def = def
	}
	if o.deprecation != nil && o.deprecation.Alternative != "" {
		o.deprecation.Alternative = strings.TrimLeft(o.deprecation.Alternative, "-")
	}
	return nil
}

// normalizeDefault returns def as a Value of the option's stored kind. A scalar default of the element
// kind is accepted for list-valued options.
func (o *OptionSpec) normalizeDefault(def types.Value) (types.Value, error) {
	stored := o.StoredKind()
	switch v := def.(type) {
	case types.ListValue:
		if stored != types.KindList {
			break
		}
		if o.kind != types.KindList {
			if _, err := util.CoerceList(o.kind, v); err != nil {
				return nil, fmt.Errorf("%w: '%s': %s", errs.ErrDefaultKind, o.Name(), err)
			}
		}
		return types.Clone(v), nil
	case types.StringValue, types.BoolValue, types.IntValue, types.FloatValue:
		if v.Kind() == stored {
			return v, nil
		}
		if stored == types.KindList && (v.Kind() == o.kind || o.kind == types.KindList) {
			return types.ListValue{v.Text()}, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s' is %s, default is %s", errs.ErrDefaultKind, o.Name(), stored, kindOf(def))
}

func kindOf(v types.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}
