package cmdline

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/validation"
)

// tagName is the struct tag key read by AddStruct and Result.Bind
const tagName = "cmdline"

// NewCommandFromStruct creates a Command and declares the options and subcommands described by the
// `cmdline` tags of the struct dst points to. See AddStruct.
//
//	type Options struct {
//		Verbose bool     `cmdline:"name:v,verbose;desc:be chatty"`
//		Port    int      `cmdline:"name:p,port;default:8080;range:1..65535"`
//		Tags    []string `cmdline:"desc:labels"`
//		Build   struct {
//			Target string `cmdline:"required:true;choice:x64,arm64"`
//		} `cmdline:"kind:command;desc:build it"`
//	}
func NewCommandFromStruct(name string, dst any, configs ...ConfigureCommandFunc) (*Command, error) {
	cmd, err := NewCommandWith(name, configs...)
	if err != nil {
		return nil, err
	}
	if err = cmd.AddStruct(dst); err != nil {
		return nil, err
	}

	return cmd, nil
}

// AddStruct declares an option for every exported field of the struct dst points to carrying a
// `cmdline` tag, and a subcommand for every tagged struct field of kind command. Untagged fields and
// fields tagged "-" are skipped. An option name defaults to the field name in kebab-case.
// Field types map to kinds: string, bool (a flag), int, float64 and []string (a list).
func (c *Command) AddStruct(dst any) error {
	v, err := structValue(dst)
	if err != nil {
		return err
	}

	return c.addStruct(v.Type())
}

func (c *Command) addStruct(t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		field, config, err := taggedField(t.Field(i))
		if err != nil {
			return err
		}
		if config == nil {
			continue
		}
		if config.Kind == parse.TagCommand {
			if field.Type.Kind() != reflect.Struct {
				return fmt.Errorf("%w: subcommand field %s must be a struct", errs.ErrUnsupportedField, field.Name)
			}
			sub, err := c.AddSubcommand(fieldName(field, config), config.Description)
			if err != nil {
				return err
			}
			if err = sub.addStruct(field.Type); err != nil {
				return err
			}
			continue
		}
		if err = c.addField(field, config); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

func (c *Command) addField(field reflect.StructField, config *parse.TagConfig) error {
	declared, err := fieldKind(field.Type)
	if err != nil {
		return err
	}
	kind := declared
	var flag bool
	switch {
	case config.Expected == nil:
		flag = kind == types.KindBool
	case config.Expected.IsFlag():
		// a []string flag collects its occurrences under the accumulate policy
		flag = kind == types.KindBool || kind == types.KindList
	}
	// multi-value slices collect one element per value instead of splitting
	if kind == types.KindList && config.Expected != nil && config.Expected.IsMulti() {
		kind = types.KindString
	}

	var configs []ConfigureOptionFunc
	if !flag {
		configs = append(configs, WithType(kind))
	}
	if card := config.Expected; card != nil {
		if card.Min == card.Max {
			configs = append(configs, WithExpected(card.Min))
		} else {
			configs = append(configs, WithExpectedRange(card.Min, card.Max))
		}
	}
	if config.Policy != nil {
		configs = append(configs, WithDuplicatePolicy(*config.Policy))
	}
	if config.Required {
		configs = append(configs, SetRequired(true))
	}
	if config.Env != "" {
		configs = append(configs, WithEnv(config.Env))
	}
	if config.Group != "" {
		configs = append(configs, WithGroup(config.Group))
	}
	if config.Deprecated != nil {
		configs = append(configs, WithDeprecated(*config.Deprecated))
	}
	if config.Use != "" {
		configs = append(configs, WithSuggestion(config.Use))
	}
	if config.Default != nil {
		def, err := defaultValue(declared, *config.Default)
		if err != nil {
			return err
		}
		configs = append(configs, WithDefault(def))
	}
	validators, err := tagValidators(kind, config)
	if err != nil {
		return err
	}
	if len(validators) > 0 {
		configs = append(configs, WithValidators(validators...))
	}

	return c.add(fieldName(field, config), config.Description, flag, configs)
}

// Bind copies the values of r into the tagged fields of the struct dst points to, descending into
// subcommand fields. Fields without a value are left untouched. Since subcommand values are merged into
// r, a parent field and a subcommand field sharing an option name both receive the subcommand's value.
func (r *Result) Bind(dst any) error {
	v, err := structValue(dst)
	if err != nil {
		return err
	}

	return r.bind(v)
}

func (r *Result) bind(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field, config, err := taggedField(t.Field(i))
		if err != nil {
			return err
		}
		if config == nil {
			continue
		}
		if config.Kind == parse.TagCommand {
			if field.Type.Kind() != reflect.Struct {
				return fmt.Errorf("%w: subcommand field %s must be a struct", errs.ErrUnsupportedField, field.Name)
			}
			if err = r.bind(v.Field(i)); err != nil {
				return err
			}
			continue
		}

		name, err := storedName(fieldName(field, config))
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		value, found := r.values[name]
		if !found {
			continue
		}
		rv := reflect.ValueOf(native(value))
		switch {
		case rv.Type().AssignableTo(field.Type):
			v.Field(i).Set(rv)
		case rv.Kind() == field.Type.Kind() && rv.Type().ConvertibleTo(field.Type):
			v.Field(i).Set(rv.Convert(field.Type))
		default:
			return &errs.UsageError{
				Option: name,
				Err:    errs.ErrWrongValueType,
				Detail: fmt.Sprintf("stored %s, field %s is %s", value.Kind(), field.Name, field.Type),
			}
		}
	}

	return nil
}

func structValue(dst any) (reflect.Value, error) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: got %T", errs.ErrNotStructPointer, dst)
	}
	return v.Elem(), nil
}

// taggedField returns the parsed tag of field, or a nil config when the field is not tagged
func taggedField(field reflect.StructField) (reflect.StructField, *parse.TagConfig, error) {
	tag, ok := field.Tag.Lookup(tagName)
	if !ok || tag == "-" || !field.IsExported() {
		return field, nil, nil
	}
	config, err := parse.Tag(tag)
	if err != nil {
		return field, nil, fmt.Errorf("field %s: %w", field.Name, err)
	}
	return field, config, nil
}

// fieldName returns the tagged name of field, else the field name in kebab-case
func fieldName(field reflect.StructField, config *parse.TagConfig) string {
	if config.Name != "" {
		return config.Name
	}
	return strcase.ToKebab(field.Name)
}

// storedName returns the key under which an option declared as aliases is stored
func storedName(aliases string) (string, error) {
	short, long, err := parseOptionName(aliases)
	if err != nil {
		return "", err
	}
	if long != "" {
		return long, nil
	}
	return short, nil
}

func fieldKind(t reflect.Type) (types.Kind, error) {
	switch t.Kind() {
	case reflect.String:
		return types.KindString, nil
	case reflect.Bool:
		return types.KindBool, nil
	case reflect.Int:
		return types.KindInt, nil
	case reflect.Float64:
		return types.KindFloat, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			return types.KindList, nil
		}
	}
	return types.KindString, fmt.Errorf("%w: %s", errs.ErrUnsupportedField, t)
}

func defaultValue(kind types.Kind, text string) (types.Value, error) {
	if kind == types.KindList {
		return types.ListValue(util.SplitList(text, nil)), nil
	}
	v, err := util.Coerce(kind, text)
	if err != nil {
		return nil, fmt.Errorf("%w: default %s", errs.ErrInvalidTag, err)
	}
	return v, nil
}

func tagValidators(kind types.Kind, config *parse.TagConfig) ([]validation.Validator, error) {
	var validators []validation.Validator
	if len(config.Choices) > 0 {
		validators = append(validators, validation.Choice(config.Choices...))
	}
	if config.Pattern != "" {
		p, err := validation.Pattern(config.Pattern, "")
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTag, err)
		}
		validators = append(validators, p)
	}
	if config.Range != nil {
		v, err := rangeValidator(kind, config.Range[0], config.Range[1])
		if err != nil {
			return nil, err
		}
		validators = append(validators, v)
	}
	return validators, nil
}

func rangeValidator(kind types.Kind, lo, hi string) (validation.Validator, error) {
	bad := fmt.Errorf("%w: invalid range '%s..%s' for %s option", errs.ErrInvalidTag, lo, hi, kind)
	switch kind {
	case types.KindInt:
		min, err1 := strconv.Atoi(strings.TrimSpace(lo))
		max, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil {
			return nil, bad
		}
		return validation.Range(min, max), nil
	case types.KindFloat:
		min, err1 := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		max, err2 := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err1 != nil || err2 != nil {
			return nil, bad
		}
		return validation.Range(min, max), nil
	}
	return nil, bad
}
