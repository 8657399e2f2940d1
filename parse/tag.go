package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
)

// TagKind tells whether a tagged struct field declares an option or a subcommand
type TagKind string

const (
	TagOption  TagKind = "option"
	TagCommand TagKind = "command"
)

// TagConfig is the content of a `cmdline` struct tag
type TagConfig struct {
	Kind        TagKind
	Name        string
	Description string
	Default     *string
	Required    bool
	Env         string
	Expected    *types.Cardinality
	Policy      *types.DuplicatePolicy
	Group       string
	Deprecated  *string
	Use         string
	Choices     []string
	Range       []string
	Pattern     string
}

// Tag parses a struct tag of semicolon-separated key:value pairs, for example
//
//	`cmdline:"name:p,port;desc:listen port;default:8080;range:1..65535;env:PORT"`
//
// A ';' inside a value is written as '\;'. Keys:
//
//	kind        option (default) or command
//	name        aliases ("p,port"), or the subcommand name
//	desc        description
//	default     default value as command-line text
//	required    true or false
//	env         environment variable
//	expected    value count: "2", "1..3" or "1.." (unlimited)
//	policy      last_wins, error or accumulate
//	group       help group
//	deprecated  deprecation message
//	use         replacement of a deprecated option; implies deprecated
//	choice      comma-separated accepted values
//	range       inclusive numeric bounds "min..max"
//	pattern     regular expression values must match
func Tag(tag string) (*TagConfig, error) {
	config := &TagConfig{Kind: TagOption}
	for _, part := range splitEscaped(tag, ';') {
		if strings.TrimSpace(part) == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("%w: '%s' is not a key:value pair", errs.ErrInvalidTag, part)
		}
		key = strings.TrimSpace(key)

		switch key {
		case "kind":
			switch TagKind(value) {
			case TagOption, TagCommand:
				config.Kind = TagKind(value)
			default:
				return nil, fmt.Errorf("%w: kind must be 'option' or 'command', got '%s'", errs.ErrInvalidTag, value)
			}
		case "name":
			config.Name = value
		case "desc":
			config.Description = value
		case "default":
			v := value
			config.Default = &v
		case "required":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid 'required' value '%s'", errs.ErrInvalidTag, value)
			}
			config.Required = b
		case "env":
			config.Env = value
		case "expected":
			c, err := cardinality(value)
			if err != nil {
				return nil, err
			}
			config.Expected = &c
		case "policy":
			p, err := policy(value)
			if err != nil {
				return nil, err
			}
			config.Policy = &p
		case "group":
			config.Group = value
		case "deprecated":
			v := value
			config.Deprecated = &v
		case "use":
			config.Use = value
		case "choice":
			config.Choices = strings.Split(value, ",")
		case "range":
			lo, hi, found := strings.Cut(value, "..")
			if !found || lo == "" || hi == "" {
				return nil, fmt.Errorf("%w: range must be 'min..max', got '%s'", errs.ErrInvalidTag, value)
			}
			config.Range = []string{lo, hi}
		case "pattern":
			config.Pattern = value
		default:
			return nil, fmt.Errorf("%w: unrecognized key '%s'", errs.ErrInvalidTag, key)
		}
	}

	return config, nil
}

func cardinality(value string) (types.Cardinality, error) {
	lo, hi, isRange := strings.Cut(value, "..")
	min, err := strconv.Atoi(lo)
	if err != nil {
		return types.Cardinality{}, fmt.Errorf("%w: invalid 'expected' value '%s'", errs.ErrInvalidTag, value)
	}
	if !isRange {
		return types.Exactly(min), nil
	}
	if hi == "" {
		return types.Between(min, 0), nil
	}
	max, err := strconv.Atoi(hi)
	if err != nil || max == 0 {
		return types.Cardinality{}, fmt.Errorf("%w: invalid 'expected' value '%s'", errs.ErrInvalidTag, value)
	}
	return types.Between(min, max), nil
}

func policy(value string) (types.DuplicatePolicy, error) {
	for _, p := range []types.DuplicatePolicy{types.LastWins, types.Error, types.Accumulate} {
		if p.String() == value {
			return p, nil
		}
	}
	return types.LastWins, fmt.Errorf("%w: unknown policy '%s'", errs.ErrInvalidTag, value)
}

// splitEscaped splits s on sep, honouring a backslash before sep
func splitEscaped(s string, sep rune) []string {
	var parts []string
	var current strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			if r != sep {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == sep:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteRune('\\')
	}
	return append(parts, current.String())
}
