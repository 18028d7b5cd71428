// Package dslparser is the facade over the toolkit's packages, grounded
// on dekarrin-tunaq's internal/ictiobus/ictiobus.go (which plays the
// same facade role over that package's lex/grammar/parse/translation
// split), trimmed to the construction-time surface: build a Lexer from
// terminals, build a RuleSet from rules, and build a Parser from a
// RuleSet, with or without table persistence.
package dslparser

import (
	"github.com/daanrutten/dsl-parser/grammar"
	"github.com/daanrutten/dsl-parser/lex"
	"github.com/daanrutten/dsl-parser/parse"
	"github.com/daanrutten/dsl-parser/token"
	"github.com/daanrutten/dsl-parser/visit"
)

// NewLexer constructs a Lexer matching terminals in declaration order.
func NewLexer(terminals []token.Terminal) *lex.Lexer {
	return lex.New(terminals)
}

// NewRuleSet validates and builds a RuleSet, auto-promoting any
// undeclared element base to a string-literal terminal.
func NewRuleSet(terminals []token.Terminal, rules map[string][]string, order []string, start string) (*grammar.RuleSet, error) {
	return grammar.New(terminals, rules, order, start)
}

// NewParser builds a Parser (and its action table) for rs.
func NewParser(rs *grammar.RuleSet) (*parse.Parser, error) {
	return parse.New(rs)
}

// NewVersionedParser is NewParser, but persists the built table under
// version (or loads a previously-persisted one of the same version).
func NewVersionedParser(rs *grammar.RuleSet, version string) (*parse.Parser, error) {
	return parse.NewVersioned(rs, version)
}

// NewVisitor returns an empty tree visitor.
func NewVisitor() *visit.Visitor {
	return visit.New()
}
