package grammar

import (
	"fmt"

	"github.com/daanrutten/dsl-parser/synerr"
	"github.com/daanrutten/dsl-parser/token"
)

// RuleSet is an immutable mapping from non-terminal name to a non-empty
// ordered list of Rules, built from a caller-supplied list of declared
// terminals plus raw production strings. Any element base that is neither
// a declared terminal nor a non-terminal key is auto-promoted to an
// implicit string-literal terminal, matched verbatim (regex-escaped).
type RuleSet struct {
	start string

	order []string
	rules map[string][]Rule

	declared     map[string]token.Terminal
	declaredOrd  []string
	literals     map[string]token.Terminal
	literalOrder []string
}

// New validates and builds a RuleSet. rulesRaw maps each non-terminal to
// its ordered list of rule strings (space-separated element names, each
// optionally suffixed with ?, *, or +). terminals is the ordered list of
// already-declared terminal types (the same list a Lexer is built from).
//
// New fails with a GRAMMAR_EMPTY_RULE error if any non-terminal has no
// productions, if any rule is empty, or if start names a non-terminal not
// present in rulesRaw.
func New(terminals []token.Terminal, rulesRaw map[string][]string, order []string, start string) (*RuleSet, error) {
	rs := &RuleSet{
		start:       start,
		order:       append([]string(nil), order...),
		rules:       map[string][]Rule{},
		declared:    map[string]token.Terminal{},
		literals:    map[string]token.Terminal{},
	}

	for _, t := range terminals {
		rs.declared[t.Type] = t
		rs.declaredOrd = append(rs.declaredOrd, t.Type)
	}

	if _, ok := rulesRaw[start]; !ok {
		return nil, synerr.NewWithoutPosition(synerr.GrammarEmptyRule,
			fmt.Sprintf("start symbol %q has no productions", start))
	}

	for _, key := range rs.order {
		raws, ok := rulesRaw[key]
		if !ok || len(raws) == 0 {
			return nil, synerr.NewWithoutPosition(synerr.GrammarEmptyRule,
				fmt.Sprintf("non-terminal %q has no productions", key))
		}

		var parsed []Rule
		for _, raw := range raws {
			r := ParseRule(raw)
			if len(r) == 0 {
				return nil, synerr.NewWithoutPosition(synerr.GrammarEmptyRule,
					fmt.Sprintf("non-terminal %q has an empty rule", key))
			}
			parsed = append(parsed, r)
		}
		rs.rules[key] = parsed
	}

	// now that every non-terminal key is known, auto-promote any element
	// base that's neither a declared terminal nor a key into a literal
	// terminal.
	for _, key := range rs.order {
		for _, r := range rs.rules[key] {
			for _, e := range r {
				if rs.IsNonTerminal(e.Base) || rs.IsTerminal(e.Base) {
					continue
				}
				rs.literals[e.Base] = token.Literal(e.Base)
				rs.literalOrder = append(rs.literalOrder, e.Base)
			}
		}
	}

	return rs, nil
}

// IsNonTerminal reports whether name is a key of this RuleSet.
func (rs *RuleSet) IsNonTerminal(name string) bool {
	_, ok := rs.rules[name]
	return ok
}

// IsTerminal reports whether name is a declared terminal type or an
// auto-promoted string-literal terminal.
func (rs *RuleSet) IsTerminal(name string) bool {
	if _, ok := rs.declared[name]; ok {
		return true
	}
	_, ok := rs.literals[name]
	return ok
}

// Terminal returns the token.Terminal for a declared or auto-promoted
// terminal type name, and whether it exists.
func (rs *RuleSet) Terminal(name string) (token.Terminal, bool) {
	if t, ok := rs.declared[name]; ok {
		return t, true
	}
	t, ok := rs.literals[name]
	return t, ok
}

// Terminals returns every terminal type this grammar references: declared
// terminals first (in their original order), then auto-promoted literals
// in first-encountered order.
func (rs *RuleSet) Terminals() []string {
	out := append([]string(nil), rs.declaredOrd...)
	out = append(out, rs.literalOrder...)
	return out
}

// LiteralTerminals returns the auto-promoted string-literal terminals, in
// first-encountered order. A Lexer built to tokenize this grammar's input
// must include these in addition to the explicitly declared terminals.
func (rs *RuleSet) LiteralTerminals() []token.Terminal {
	out := make([]token.Terminal, len(rs.literalOrder))
	for i, name := range rs.literalOrder {
		out[i] = rs.literals[name]
	}
	return out
}

// NonTerminals returns the non-terminal keys in declaration order.
func (rs *RuleSet) NonTerminals() []string {
	return append([]string(nil), rs.order...)
}

// Rules returns the ordered productions for a non-terminal key.
func (rs *RuleSet) Rules(key string) []Rule {
	return rs.rules[key]
}

// StartSymbol returns the grammar's designated start non-terminal.
func (rs *RuleSet) StartSymbol() string {
	return rs.start
}
