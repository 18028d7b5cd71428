// Package grammar holds the context-free grammar data model (Rule,
// RuleSet) and the FIRST/FOLLOW fixpoint analysis over it, generalized to
// the three quantifier suffixes (?, *, +). Grounded in shape
// on dekarrin-tunaq's internal/ictiobus/grammar package (LR0Item's
// NonTerminal/Left/Right fields imply the same flat production-as-strings
// representation used here), though that package has no notion of
// quantified elements.
package grammar

import "strings"

// Quantifier is the optional suffix on a grammar element.
type Quantifier byte

const (
	// None: exactly one occurrence.
	None Quantifier = 0
	// Optional ('?'): zero or one.
	Optional Quantifier = '?'
	// Star ('*'): zero or more.
	Star Quantifier = '*'
	// Plus ('+'): one or more.
	Plus Quantifier = '+'
)

// Element is one symbol in a Rule's right-hand side: a base name (a
// non-terminal key, a declared terminal type, or an implicit
// string-literal terminal) plus an optional quantifier suffix.
type Element struct {
	Base string
	Quant Quantifier
}

// ParseElement splits a raw rule-element string such as "item*" into its
// base name and quantifier.
func ParseElement(raw string) Element {
	if raw == "" {
		return Element{}
	}
	last := raw[len(raw)-1]
	switch Quantifier(last) {
	case Optional, Star, Plus:
		return Element{Base: raw[:len(raw)-1], Quant: Quantifier(last)}
	default:
		return Element{Base: raw, Quant: None}
	}
}

// String renders the element back to its raw form (base plus suffix).
func (e Element) String() string {
	if e.Quant == None {
		return e.Base
	}
	return e.Base + string(byte(e.Quant))
}

// CanOmit is true for '?' and '*': the element may match zero
// occurrences, so the element after it also contributes to the rule's
// FIRST, and it may be skipped entirely by a closure/FIRST computation.
func (e Element) CanOmit() bool {
	return e.Quant == Optional || e.Quant == Star
}

// CanRepeat is true for '*' and '+': the element may match more than one
// consecutive occurrence, the mechanism that makes goto loop back onto the
// same item instead of always advancing.
func (e Element) CanRepeat() bool {
	return e.Quant == Star || e.Quant == Plus
}

// Rule is one production: an ordered, non-empty sequence of elements.
type Rule []Element

// ParseRule builds a Rule from a space-separated element-name string, as
// used by the TOML config loader (grammar/config) and by literal grammar
// definitions in tests.
func ParseRule(raw string) Rule {
	fields := strings.Fields(raw)
	r := make(Rule, len(fields))
	for i, f := range fields {
		r[i] = ParseElement(f)
	}
	return r
}

func (r Rule) String() string {
	parts := make([]string, len(r))
	for i, e := range r {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Equal reports whether two rules have identical element sequences
// (base name and quantifier, position for position).
func (r Rule) Equal(o Rule) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}
