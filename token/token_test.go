package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Position_String(t *testing.T) {
	p := Position{Line: 0, Index: 0}
	assert.Equal(t, "1:1", p.String())

	p = Position{Line: 4, Index: 9}
	assert.Equal(t, "5:10", p.String())
}

func Test_NewTerminal_anchored(t *testing.T) {
	term, err := NewTerminal("num", `\d+`)
	require.NoError(t, err)

	loc := term.Pattern.FindStringIndex("  123")
	assert.Nil(t, loc, "pattern must only match at the start of the string, not mid-string")

	loc = term.Pattern.FindStringIndex("123abc")
	require.NotNil(t, loc)
	assert.Equal(t, []int{0, 3}, loc)
}

func Test_Literal_escapesMetacharacters(t *testing.T) {
	lit := Literal("(")
	assert.Equal(t, "(", lit.Type)
	assert.True(t, lit.Pattern.MatchString("("))
}

func Test_LexTree_Leftmost_isSelf(t *testing.T) {
	lt := NewLexTree("num", []string{"42"}, 3, 1)
	assert.Equal(t, lt, lt.Leftmost())
	assert.Equal(t, "num", lt.NodeType())
	assert.Equal(t, "42", lt.Text())
}

func Test_ParseTree_Leftmost_recurses(t *testing.T) {
	leaf := NewLexTree("num", []string{"1"}, 0, 0)
	inner := ParseTree{Type: "value", Children: []Node{leaf}}
	outer := ParseTree{Type: "sum", Children: []Node{inner}}

	assert.Equal(t, leaf, outer.Leftmost())
}

func Test_ParseTree_Copy_isDeep(t *testing.T) {
	leaf := NewLexTree("num", []string{"1"}, 0, 0)
	orig := ParseTree{Type: "value", Children: []Node{leaf}}

	cp := orig.Copy()
	assert.True(t, orig.Equal(cp))

	cp.Children[0] = NewLexTree("num", []string{"2"}, 0, 0)
	assert.False(t, orig.Equal(cp))
}

func Test_ParseTree_Equal(t *testing.T) {
	a := ParseTree{Type: "sum", Children: []Node{NewLexTree("num", []string{"1"}, 0, 0)}}
	b := ParseTree{Type: "sum", Children: []Node{NewLexTree("num", []string{"1"}, 0, 0)}}
	c := ParseTree{Type: "sum", Children: []Node{NewLexTree("num", []string{"2"}, 0, 0)}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal("not a tree"))
}

func Test_ParseTree_String(t *testing.T) {
	leaf := NewLexTree("num", []string{"1"}, 0, 0)
	tree := ParseTree{Type: "value", Children: []Node{leaf}}

	s := tree.String()
	assert.Contains(t, s, "( value )")
	assert.Contains(t, s, `(TERM num "1")`)
}
