package types

import (
	"fmt"
	"math"
)

// Unlimited is the Cardinality.Max value of an option accepting any number of values
const Unlimited = math.MaxInt

// Cardinality is the minimum/maximum number of value tokens an option consumes.
// A Cardinality of Exactly(0) denotes a flag.
type Cardinality struct {
	Min int
	Max int
}

// Exactly returns a Cardinality consuming exactly n values
func Exactly(n int) Cardinality {
	return Cardinality{Min: n, Max: n}
}

// Between returns a Cardinality consuming min to max values. A max of 0 means Unlimited.
func Between(min, max int) Cardinality {
	if max == 0 {
		max = Unlimited
	}
	return Cardinality{Min: min, Max: max}
}

// IsFlag is true when the Cardinality accepts no value at all
func (c Cardinality) IsFlag() bool {
	return c.Max == 0
}

// IsMulti is true when the Cardinality can hold more than one value
func (c Cardinality) IsMulti() bool {
	return c.Max > 1
}

// String returns the string representation of a Cardinality
func (c Cardinality) String() string {
	switch {
	case c.Min == c.Max:
		return fmt.Sprintf("exactly(%d)", c.Min)
	case c.Max == Unlimited:
		return fmt.Sprintf("range(%d,unlimited)", c.Min)
	default:
		return fmt.Sprintf("range(%d,%d)", c.Min, c.Max)
	}
}

// DuplicatePolicy decides what happens when an option is matched more than once in one parse
type DuplicatePolicy int

const (
	LastWins   DuplicatePolicy = iota // LastWins overwrites the earlier value
	Error                             // Error reports a duplicate_option and keeps the first value
	Accumulate                        // Accumulate appends every occurrence to a list
)

// String returns the string representation of a DuplicatePolicy
func (d DuplicatePolicy) String() string {
	switch d {
	case Error:
		return "error"
	case Accumulate:
		return "accumulate"
	case LastWins:
		fallthrough
	default:
		return "last_wins"
	}
}

// Deprecation marks an option as deprecated. Alternative is optional.
type Deprecation struct {
	Message     string
	Alternative string
}

// Note is an informational message produced while parsing. Notes never cause a parse to fail.
type Note struct {
	Option      string
	Message     string
	Alternative string
}

// String returns the human-readable form of the Note
func (n Note) String() string {
	s := fmt.Sprintf("option '%s' is deprecated", n.Option)
	if n.Message != "" {
		s += ": " + n.Message
	}
	if n.Alternative != "" {
		s += fmt.Sprintf(" (use '%s' instead)", n.Alternative)
	}
	return s
}

// Source tells where the value of an option came from
type Source int

const (
	SourceNone Source = iota
	SourceCommandLine
	SourceEnv
	SourceDefault
)

// String returns the string representation of a Source
func (s Source) String() string {
	switch s {
	case SourceCommandLine:
		return "command-line"
	case SourceEnv:
		return "env"
	case SourceDefault:
		return "default"
	default:
		return "none"
	}
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|' || r == ' '.
type ListDelimiterFunc func(matchOn rune) bool

// DefaultListDelimiter splits on ',', '|' and ' '
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}
