// Package validation provides the validators an option can run against each of its raw values.
// The set is closed: RangeValidator, PatternValidator, ChoiceValidator and CustomValidator.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validator checks a single raw string value
type Validator interface {
	// Validate returns nil when value is acceptable, otherwise an error whose message explains why
	Validate(value string) error

	// Description returns a human-readable description of what this validator checks
	Description() string

	validator()
}

// ErrInvalidValue is wrapped by every error a Validator returns
var ErrInvalidValue = errors.New("invalid value")

func failf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

// RangeValidator accepts numeric values within an inclusive range
type RangeValidator struct {
	min, max float64
	integer  bool
}

// Range creates a RangeValidator over [min, max]. An int range only accepts integers.
func Range[T int | float64](min, max T) *RangeValidator {
	var zero T
	_, isInt := any(zero).(int)
	return &RangeValidator{min: float64(min), max: float64(max), integer: isInt}
}

func (r *RangeValidator) Validate(value string) error {
	var n float64
	if r.integer {
		i, err := strconv.ParseInt(strings.TrimSpace(value), 0, 64)
		if err != nil {
			return failf("'%s' is not an integer", value)
		}
		n = float64(i)
	} else {
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return failf("'%s' is not a number", value)
		}
		n = f
	}
	if n < r.min || n > r.max {
		return failf("'%s' is not in range %s", value, r.bounds())
	}
	return nil
}

func (r *RangeValidator) Description() string {
	return "value in range " + r.bounds()
}

func (r *RangeValidator) bounds() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return "[" + f(r.min) + ", " + f(r.max) + "]"
}

func (*RangeValidator) validator() {}

// PatternValidator accepts values matching a regular expression
type PatternValidator struct {
	re          *regexp.Regexp
	description string
}

// Pattern compiles pattern into a PatternValidator. description is optional and used in messages.
func Pattern(pattern, description string) (*PatternValidator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}
	return &PatternValidator{re: re, description: description}, nil
}

// MustPattern is like Pattern but panics when pattern does not compile
func MustPattern(pattern, description string) *PatternValidator {
	p, err := Pattern(pattern, description)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *PatternValidator) Validate(value string) error {
	if !p.re.MatchString(value) {
		return failf("'%s' does not match %s", value, p.Description())
	}
	return nil
}

// Description returns the pattern's description, or the pattern itself when none was given
func (p *PatternValidator) Description() string {
	if p.description != "" {
		return p.description
	}
	return p.re.String()
}

func (*PatternValidator) validator() {}

// ChoiceValidator accepts one of a fixed set of values
type ChoiceValidator struct {
	choices []string
}

// Choice creates a ChoiceValidator. Matching is exact and case-sensitive.
func Choice(choices ...string) *ChoiceValidator {
	c := make([]string, len(choices))
	copy(c, choices)
	return &ChoiceValidator{choices: c}
}

func (c *ChoiceValidator) Validate(value string) error {
	for _, choice := range c.choices {
		if choice == value {
			return nil
		}
	}
	return failf("'%s' is not one of: %s", value, strings.Join(c.choices, ", "))
}

func (c *ChoiceValidator) Description() string {
	return "one of: " + strings.Join(c.choices, ", ")
}

func (*ChoiceValidator) validator() {}

// CustomValidator wraps a caller-supplied predicate
type CustomValidator struct {
	fn          func(string) bool
	description string
}

// Custom creates a CustomValidator. description names the rule and forms the failure message.
func Custom(fn func(string) bool, description string) *CustomValidator {
	return &CustomValidator{fn: fn, description: description}
}

func (c *CustomValidator) Validate(value string) error {
	if c.fn == nil || !c.fn(value) {
		return failf("'%s' failed check: %s", value, c.Description())
	}
	return nil
}

func (c *CustomValidator) Description() string {
	if c.description == "" {
		return "custom check"
	}
	return c.description
}

func (*CustomValidator) validator() {}
