package parse

import (
	"os"
	"testing"

	"github.com/daanrutten/dsl-parser/grammar"
	"github.com/daanrutten/dsl-parser/lex"
	"github.com/daanrutten/dsl-parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafTexts(n token.Node) []string {
	switch v := n.(type) {
	case token.LexTree:
		return []string{v.Text()}
	case token.ParseTree:
		var out []string
		for _, c := range v.Children {
			out = append(out, leafTexts(c)...)
		}
		return out
	default:
		return nil
	}
}

// arithParser builds the classic left-recursive expression grammar.
// Punctuation must be explicitly declared with its own pattern: an
// element name is only auto-promoted to a literal terminal matching its
// own text verbatim, so a one-character operator like "+" needs a real
// declared terminal rather than relying on that auto-promotion.
func arithParser(t *testing.T) (*Parser, *lex.Lexer) {
	t.Helper()
	num := token.MustTerminal("num", `\d+`)
	ws := token.MustTerminal(token.Whitespace, `\s+`)
	add := token.MustTerminal("add", `\+`)
	mul := token.MustTerminal("mul", `\*`)
	lparen := token.MustTerminal("lparen", `\(`)
	rparen := token.MustTerminal("rparen", `\)`)

	rules := map[string][]string{
		"sum":     {"sum add product", "product"},
		"product": {"product mul value", "value"},
		"value":   {"num", "lparen sum rparen"},
	}
	order := []string{"sum", "product", "value"}
	terminals := []token.Terminal{add, mul, lparen, rparen, num, ws}
	rs, err := grammar.New(terminals, rules, order, "sum")
	require.NoError(t, err)

	p, err := New(rs)
	require.NoError(t, err)

	lexer := lex.New(terminals)
	return p, lexer
}

func Test_Parse_arithmeticPrecedence(t *testing.T) {
	p, lexer := arithParser(t)

	lineTokens := lexer.Split("1+2*3", nil)
	tree, err := p.Parse(lexer, lineTokens)
	require.NoError(t, err)

	assert.Equal(t, "sum", tree.NodeType())
	assert.Equal(t, []string{"1", "+", "2", "*", "3"}, leafTexts(tree))
}

func Test_Parse_parenthesized(t *testing.T) {
	p, lexer := arithParser(t)

	lineTokens := lexer.Split("(1+2)*3", nil)
	tree, err := p.Parse(lexer, lineTokens)
	require.NoError(t, err)

	assert.Equal(t, "sum", tree.NodeType())
	assert.Equal(t, []string{"(", "1", "+", "2", ")", "*", "3"}, leafTexts(tree))
}

// After "+" only num or lparen is active, so the lexer rejects "*" itself
// (LEX_UNRECOGNIZED) before the action table is consulted.
func Test_Parse_unexpectedTokenErrors(t *testing.T) {
	p, lexer := arithParser(t)

	lineTokens := lexer.Split("1+*2", nil)
	_, err := p.Parse(lexer, lineTokens)
	require.Error(t, err)
}

func listParser(t *testing.T) (*Parser, *lex.Lexer) {
	t.Helper()
	num := token.MustTerminal("num", `\d+`)
	ws := token.MustTerminal(token.Whitespace, `\s+`)
	lbracket := token.MustTerminal("lbracket", `\[`)
	rbracket := token.MustTerminal("rbracket", `\]`)

	rules := map[string][]string{
		"list": {"lbracket num* rbracket"},
	}
	terminals := []token.Terminal{lbracket, rbracket, num, ws}
	rs, err := grammar.New(terminals, rules, []string{"list"}, "list")
	require.NoError(t, err)

	p, err := New(rs)
	require.NoError(t, err)

	lexer := lex.New(terminals)
	return p, lexer
}

func Test_Parse_quantifierStar_zeroOccurrences(t *testing.T) {
	p, lexer := listParser(t)

	lineTokens := lexer.Split("[]", nil)
	tree, err := p.Parse(lexer, lineTokens)
	require.NoError(t, err)

	pt, ok := tree.(token.ParseTree)
	require.True(t, ok)
	assert.Equal(t, "list", pt.Type)
	assert.Len(t, pt.Children, 2)
}

func Test_Parse_quantifierStar_multipleOccurrences(t *testing.T) {
	p, lexer := listParser(t)

	lineTokens := lexer.Split("[1 2 3]", nil)
	tree, err := p.Parse(lexer, lineTokens)
	require.NoError(t, err)

	pt, ok := tree.(token.ParseTree)
	require.True(t, ok)
	assert.Equal(t, "list", pt.Type)
	assert.Len(t, pt.Children, 5)
	assert.Equal(t, []string{"[", "1", "2", "3", "]"}, leafTexts(tree))
}

func Test_NewVersioned_buildsThenReuses(t *testing.T) {
	num := token.MustTerminal("num", `\d+`)
	rules := map[string][]string{"value": {"num"}}
	rs, err := grammar.New([]token.Terminal{num}, rules, []string{"value"}, "value")
	require.NoError(t, err)

	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(orig)

	p1, err := NewVersioned(rs, "t1")
	require.NoError(t, err)
	require.NotNil(t, p1.Table().Collection(), "freshly built table should carry its collection")

	p2, err := NewVersioned(rs, "t1")
	require.NoError(t, err)
	assert.Nil(t, p2.Table().Collection(), "second call should load the persisted table, which has no collection")
}
