package token

import (
	"fmt"
	"regexp"
)

// Whitespace is the reserved terminal type name that the parse runtime
// always discards between tokens. It need not appear in any grammar rule
// (the lexer's active-terminal gating treats it as eligible in every
// state), but it is only matched if a Terminal of this type is passed to
// the Lexer.
const Whitespace = "whitespace"

// EndOfInput is the reserved terminal type name for the synthetic token
// produced once the lexer's cursor reaches the end of input.
const EndOfInput = "$"

// Unknown is the transient terminal type used by Lexer.Split and
// Lexer.SplitOffside to wrap an entire unlexed line, deferring real lexing
// until the parser can supply active-terminal context.
const Unknown = "unknown"

// Terminal is a named pattern: a terminal type and the anchored regular
// expression used to recognize it. Patterns are anchored at construction
// time by prefixing them with "^(?:...)" so that a match only ever begins
// at the position the caller requests - Go's regexp package has no native
// sticky-match mode, so this is the idiomatic substitute.
type Terminal struct {
	Type    string
	Pattern *regexp.Regexp

	src string
}

// NewTerminal compiles pat as an anchored regular expression under the
// given type name. An error is returned if pat does not compile.
func NewTerminal(typeName, pat string) (Terminal, error) {
	anchored, err := regexp.Compile("^(?:" + pat + ")")
	if err != nil {
		return Terminal{}, fmt.Errorf("terminal %q: cannot compile pattern %q: %w", typeName, pat, err)
	}
	return Terminal{Type: typeName, Pattern: anchored, src: pat}, nil
}

// MustTerminal is like NewTerminal but panics on error; useful for
// terminals whose patterns are compile-time literals.
func MustTerminal(typeName, pat string) Terminal {
	t, err := NewTerminal(typeName, pat)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// Literal builds the auto-promoted terminal for a string-literal grammar
// element: its type name and its matched text are both the literal itself,
// and the pattern is the literal regex-escaped.
func Literal(lit string) Terminal {
	return MustTerminal(lit, regexp.QuoteMeta(lit))
}

func (t Terminal) String() string {
	return fmt.Sprintf("%s=/%s/", t.Type, t.src)
}
