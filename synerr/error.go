// Package synerr carries positioned errors raised by the lexer and parser.
// Its API is reconstructed from the call sites of dekarrin-tunaq's
// icterrors package (icterrors.NewSyntaxErrorFromToken), which was not
// itself present in the retrieval pack.
package synerr

import (
	"fmt"

	"github.com/daanrutten/dsl-parser/token"
)

// Kind categorizes the error conditions this package raises. Each kind is
// raised synchronously and never recovered from automatically.
type Kind int

const (
	// GrammarEmptyRule: a non-terminal with no productions, or a rule
	// with no elements. Raised at Parser construction.
	GrammarEmptyRule Kind = iota

	// LRConflict: shift/reduce or reduce/reduce detected at table-build
	// time.
	LRConflict

	// LexUnrecognized: no terminal matches at a position.
	LexUnrecognized

	// LexIndent: offside mismatch - a line's column matches no level on
	// the indent stack.
	LexIndent

	// ParseNoAction: the action table has no entry for (state,
	// lookahead).
	ParseNoAction

	// ConfigInvalid: a grammar config file failed to parse. Ambient
	// tooling error, not one of the five core parser error kinds.
	ConfigInvalid
)

func (k Kind) String() string {
	switch k {
	case GrammarEmptyRule:
		return "GRAMMAR_EMPTY_RULE"
	case LRConflict:
		return "LR_CONFLICT"
	case LexUnrecognized:
		return "LEX_UNRECOGNIZED"
	case LexIndent:
		return "LEX_INDENT"
	case ParseNoAction:
		return "PARSE_NO_ACTION"
	case ConfigInvalid:
		return "CONFIG_INVALID"
	default:
		return "UNKNOWN"
	}
}

// Error is a message plus a source (line, index) position, both stored
// 0-based internally and rendered 1-based by String.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Index   int

	// HasPosition is false for errors raised before any input is
	// consumed (e.g. GrammarEmptyRule, LRConflict), which have no source
	// position to report.
	HasPosition bool
}

// New builds an Error with an explicit 0-based position.
func New(kind Kind, msg string, line, index int) *Error {
	return &Error{Kind: kind, Message: msg, Line: line, Index: index, HasPosition: true}
}

// NewWithoutPosition builds an Error for conditions with no associated
// source location (grammar/table construction errors).
func NewWithoutPosition(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// FromNode builds an Error whose position is taken from the leftmost leaf
// beneath n.
func FromNode(kind Kind, msg string, n token.Node) *Error {
	leaf := n.Leftmost()
	return New(kind, msg, leaf.Line, leaf.Index)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// String appends " at line L:C" (1-based) to the message when a position
// is available.
func (e *Error) String() string {
	if !e.HasPosition {
		return e.Message
	}
	return fmt.Sprintf("%s at line %d:%d", e.Message, e.Line+1, e.Index+1)
}
