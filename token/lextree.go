package token

import "fmt"

// Node is the shared accessor for the two-variant tagged union ParseTree |
// LexTree: every node in a parse tree
// knows its own grammar symbol name and can report the leftmost source
// position beneath it, whether it is a leaf (LexTree) or an internal node
// (ParseTree) that recurses into its first child to find one.
type Node interface {
	// NodeType is the terminal type (for a LexTree) or non-terminal name
	// (for a ParseTree) this node was produced for.
	NodeType() string

	// Leftmost returns the leftmost LexTree leaf beneath this node. A
	// LexTree's leftmost leaf is itself.
	Leftmost() LexTree

	String() string
}

// LexTree is a leaf node: a single lexed token. Match holds the matched
// text in Match[0], with any regex capture groups following it in source
// order. Index is the 0-based column within Line where the match begins.
type LexTree struct {
	Type  string
	Match []string
	Index int
	Line  int
}

// NewLexTree builds a LexTree for a successful match at the given position.
func NewLexTree(typeName string, match []string, index, line int) LexTree {
	return LexTree{Type: typeName, Match: match, Index: index, Line: line}
}

// NewUnknownLine wraps an entire unlexed source line, to be lexed on demand by the
// parse runtime. Match[0] holds the full line text.
func NewUnknownLine(line string, lineNum int) LexTree {
	return LexTree{Type: Unknown, Match: []string{line}, Index: 0, Line: lineNum}
}

// EOT is the synthetic end-of-input token.
func EOT(line, index int) LexTree {
	return LexTree{Type: EndOfInput, Match: []string{""}, Index: index, Line: line}
}

func (lt LexTree) NodeType() string { return lt.Type }

func (lt LexTree) Leftmost() LexTree { return lt }

// Text returns the full matched text, or "" if this LexTree has no match
// (the zero value).
func (lt LexTree) Text() string {
	if len(lt.Match) == 0 {
		return ""
	}
	return lt.Match[0]
}

// Position returns this leaf's source position.
func (lt LexTree) Position() Position {
	return Position{Line: lt.Line, Index: lt.Index}
}

func (lt LexTree) String() string {
	return fmt.Sprintf("(TERM %s %q)", lt.Type, lt.Text())
}
