// Package parse turns raw command-line arguments into classified tokens.
package parse

import (
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/cmdline/internal/util"
)

// TokenKind classifies a Token
type TokenKind int

const (
	Positional TokenKind = iota // Positional is any argument which is not an option
	Long                        // Long is a --name or --name=value argument
	Short                       // Short is a -x argument or one member of an expanded cluster
	Separator                   // Separator is a bare -- ; its Token carries every following argument
	Unknown                     // Unknown is a cluster containing at least one undeclared alias
	Malformed                   // Malformed is a long option with an empty or dash-prefixed name
)

// String returns the string representation of a TokenKind
func (k TokenKind) String() string {
	switch k {
	case Long:
		return "long"
	case Short:
		return "short"
	case Separator:
		return "separator"
	case Unknown:
		return "unknown"
	case Malformed:
		return "malformed"
	default:
		return "positional"
	}
}

// Token is one classified command-line element
type Token struct {
	Kind TokenKind
	// Name is the alias without its leading dashes
	Name string
	// Value is the attached value (--name=value, -d5) when HasValue is true
	Value    string
	HasValue bool
	// Raw is the argument the token was produced from
	Raw string
	// Rest holds the verbatim arguments following a Separator
	Rest []string
}

// AliasLookup answers the questions cluster expansion needs about short aliases
type AliasLookup interface {
	// LookupShort reports whether c is a declared short alias and whether it accepts a value
	LookupShort(c string) (known bool, takesValue bool)
}

// Tokenizer lazily classifies the arguments of one command level. It is not safe for concurrent use.
type Tokenizer struct {
	raw     *deque.Deque
	pending *deque.Deque
	lookup  AliasLookup
	posix   bool
	done    bool
}

// NewTokenizer creates a Tokenizer over args. With posixGrouping, -abc is expanded to -a -b -c.
func NewTokenizer(args []string, lookup AliasLookup, posixGrouping bool) *Tokenizer {
	raw := deque.New()
	for _, a := range args {
		raw.PushBack(a)
	}
	return &Tokenizer{
		raw:     raw,
		pending: deque.New(),
		lookup:  lookup,
		posix:   posixGrouping,
	}
}

// Next returns the next token, or false once the arguments are exhausted or a separator was returned
func (t *Tokenizer) Next() (Token, bool) {
	if v, ok := t.pending.PopFront(); ok {
		return v.(Token), true
	}
	if t.done {
		return Token{}, false
	}
	v, ok := t.raw.PopFront()
	if !ok {
		return Token{}, false
	}
	arg := v.(string)
	tok := t.classify(arg)
	if tok.Kind == Separator {
		tok.Rest = t.Rest()
		t.done = true
	}
	return tok, true
}

// Peek returns the next unread argument. Nothing can be peeked while cluster tokens are pending.
func (t *Tokenizer) Peek() (string, bool) {
	if t.done || t.pending.Len() > 0 {
		return "", false
	}
	v, ok := t.raw.Front()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Take consumes the argument returned by Peek
func (t *Tokenizer) Take() (string, bool) {
	if _, ok := t.Peek(); !ok {
		return "", false
	}
	v, _ := t.raw.PopFront()
	return v.(string), true
}

// Rest drains and returns every unread argument
func (t *Tokenizer) Rest() []string {
	out := make([]string, 0, t.raw.Len())
	for {
		v, ok := t.raw.PopFront()
		if !ok {
			break
		}
		out = append(out, v.(string))
	}
	return out
}

func (t *Tokenizer) classify(arg string) Token {
	switch {
	case arg == "--":
		return Token{Kind: Separator, Raw: arg}
	case strings.HasPrefix(arg, "--"):
		name, value, hasValue := strings.Cut(arg[2:], "=")
		if name == "" || strings.HasPrefix(name, "-") {
			return Token{Kind: Malformed, Name: name, Raw: arg}
		}
		return Token{Kind: Long, Name: name, Value: value, HasValue: hasValue, Raw: arg}
	case len(arg) < 2 || arg[0] != '-':
		return Token{Kind: Positional, Raw: arg}
	}

	body := arg[1:]
	if util.IsNumeric(arg) {
		if known, _ := t.lookup.LookupShort(body[:1]); !known {
			return Token{Kind: Positional, Raw: arg}
		}
	}
	if !t.posix || len(body) == 1 {
		name, value, hasValue := strings.Cut(body, "=")
		return Token{Kind: Short, Name: name, Value: value, HasValue: hasValue, Raw: arg}
	}
	return t.expand(arg, body)
}

// expand splits a cluster into its flags. The first value-taking alias receives the remainder of the
// cluster as its attached value. Pending tokens are only queued once the whole cluster resolved.
func (t *Tokenizer) expand(arg, body string) Token {
	var tokens []Token
	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		c := string(runes[i])
		known, takesValue := t.lookup.LookupShort(c)
		if !known {
			if c == "=" && i > 0 {
				// -a=x where a is a flag; reported as an extra value on a
				prev := &tokens[len(tokens)-1]
				prev.Value, prev.HasValue = string(runes[i+1:]), true
				break
			}
			return Token{Kind: Unknown, Name: body, Raw: arg}
		}
		tok := Token{Kind: Short, Name: c, Raw: arg}
		if takesValue && i+1 < len(runes) {
			tok.Value = strings.TrimPrefix(string(runes[i+1:]), "=")
			tok.HasValue = true
			tokens = append(tokens, tok)
			break
		}
		tokens = append(tokens, tok)
		if takesValue {
			break
		}
	}
	for _, tok := range tokens[1:] {
		t.pending.PushBack(tok)
	}
	return tokens[0]
}
