// Package lex implements a pattern-matching tokenizer with an optional
// offside (indent/dedent) mode, grounded on dekarrin-tunaq's
// internal/ictiobus/lex package (in particular lazy.go's longest-match
// scanning loop), adapted to a value-oriented contract: Next takes
// an explicit (input, index, line) position rather than reading from a
// stream, and accepts an active-terminal set supplied by the parser.
package lex

import (
	"regexp"
	"strings"

	"github.com/daanrutten/dsl-parser/synerr"
	"github.com/daanrutten/dsl-parser/token"
)

// Lexer is constructed with an ordered list of terminals and matches them
// in declaration order: the first terminal whose pattern matches at a
// given position wins, even if a later terminal would match more text.
type Lexer struct {
	terminals []token.Terminal
}

// New builds a Lexer over the given terminals, in the order given. This
// order is significant for Next's tie-break rule.
func New(terminals []token.Terminal) *Lexer {
	cp := make([]token.Terminal, len(terminals))
	copy(cp, terminals)
	return &Lexer{terminals: cp}
}

// Terminals returns the ordered terminal list this Lexer was built with.
func (lx *Lexer) Terminals() []token.Terminal {
	return lx.terminals
}

// Next scans input starting at byte offset index (on the 0-based line
// line), returning the first matching terminal's LexTree. If active is
// non-nil, only terminals whose Type is a key of active (or the
// token.Whitespace type, which is always eligible) are attempted - this is
// the per-state hint the parse runtime supplies so the lexer doesn't
// speculatively match a terminal the grammar cannot consume at this point.
//
// If index is at or past the end of input, Next returns the synthetic $
// token. If no eligible terminal matches and input remains, Next returns a
// LEX_UNRECOGNIZED error.
func (lx *Lexer) Next(input string, index, line int, active map[string]struct{}) (token.LexTree, error) {
	col := columnOf(input, index)

	if index >= len(input) {
		return token.EOT(line, col), nil
	}

	rest := input[index:]

	for _, t := range lx.terminals {
		if active != nil {
			if _, ok := active[t.Type]; !ok && t.Type != token.Whitespace {
				continue
			}
		}

		m := t.Pattern.FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		return token.NewLexTree(t.Type, m, col, line), nil
	}

	return token.LexTree{}, synerr.New(synerr.LexUnrecognized,
		"no terminal recognized at this position", line, col)
}

// columnOf reports the 0-based column of byte offset index within input,
// i.e. its distance from the start of its line. Callers that already pass
// a single line as input (as the parse runtime does) get
// index back unchanged, since there is no newline to measure from.
func columnOf(input string, index int) int {
	if index > len(input) {
		index = len(input)
	}
	if last := strings.LastIndexByte(input[:index], '\n'); last >= 0 {
		return index - last - 1
	}
	return index
}

// Lex repeatedly calls Next, advancing the cursor by the length of each
// match, and returns the token sequence up to, but not including, the
// terminating $ token. Zero-width matches are forbidden.
func (lx *Lexer) Lex(input string) ([]token.LexTree, error) {
	var out []token.LexTree
	pos, line := 0, 0

	for {
		tok, err := lx.Next(input, pos, line, nil)
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EndOfInput {
			return out, nil
		}
		out = append(out, tok)

		matched := tok.Text()
		if len(matched) == 0 {
			return nil, synerr.New(synerr.LexUnrecognized,
				"terminal "+tok.Type+" matched zero-width input", line, tok.Index)
		}

		line += strings.Count(matched, "\n")
		pos += len(matched)
	}
}

var lineSplitRe = regexp.MustCompile(`\r?\n`)

// Split splits input into raw line tokens: each surviving line (one not
// matching the optional comment pattern) is wrapped as an Unknown token
// carrying the full line text, and a synthetic $ token is appended at the
// final position. No actual lexing is performed; this defers tokenization
// until the parser can supply active-terminal context via Next.
func (lx *Lexer) Split(input string, comment *regexp.Regexp) []token.LexTree {
	lines := lineSplitRe.Split(input, -1)

	var out []token.LexTree
	for i, l := range lines {
		if comment != nil && comment.MatchString(l) {
			continue
		}
		out = append(out, token.NewUnknownLine(l, i))
	}
	finalLine := len(lines) - 1
	if finalLine < 0 {
		finalLine = 0
	}
	out = append(out, token.EOT(finalLine, 0))
	return out
}

var leadingWhitespaceRe = regexp.MustCompile(`^[ \t]*`)

// SplitOffside is Split plus indentation tracking: it maintains a stack of
// indentation columns (initially [0]) and emits synthetic "indent" and
// "dedent" tokens around each Unknown line token as the leading whitespace
// column rises and falls. Blank lines (after stripping
// any comment) neither push nor pop.
func (lx *Lexer) SplitOffside(input string, comment *regexp.Regexp) ([]token.LexTree, error) {
	lines := lineSplitRe.Split(input, -1)
	stack := []int{0}

	var out []token.LexTree
	for i, l := range lines {
		if comment != nil && comment.MatchString(l) {
			continue
		}
		if strings.TrimSpace(l) == "" {
			continue
		}

		col := len(leadingWhitespaceRe.FindString(l))
		top := stack[len(stack)-1]

		if col > top {
			out = append(out, token.LexTree{Type: "indent", Match: []string{""}, Index: 0, Line: i})
			stack = append(stack, col)
		} else {
			for col < stack[len(stack)-1] {
				stack = stack[:len(stack)-1]
				out = append(out, token.LexTree{Type: "dedent", Match: []string{""}, Index: 0, Line: i})
			}
			if col != stack[len(stack)-1] {
				return nil, synerr.New(synerr.LexIndent,
					"indentation does not match any enclosing level", i, col)
			}
		}

		out = append(out, token.NewUnknownLine(l, i))
	}

	finalLine := len(lines) - 1
	if finalLine < 0 {
		finalLine = 0
	}
	for len(stack) > 1 {
		stack = stack[:len(stack)-1]
		out = append(out, token.LexTree{Type: "dedent", Match: []string{""}, Index: 0, Line: finalLine})
	}
	out = append(out, token.EOT(finalLine, 0))

	return out, nil
}
