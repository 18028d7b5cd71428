package visit

import (
	"testing"

	"github.com/daanrutten/dsl-parser/token"
	"github.com/stretchr/testify/assert"
)

func Test_Visitor_On_dispatchesByNodeType(t *testing.T) {
	v := New()
	v.On("num", func(state any, n token.Node) any {
		return n.(token.LexTree).Text()
	})

	leaf := token.NewLexTree("num", []string{"42"}, 0, 0)
	result := v.Visit(nil, leaf)
	assert.Equal(t, "42", result)
}

func Test_Visitor_VisitChildren_returnsLastResult(t *testing.T) {
	v := New()
	v.On("num", func(state any, n token.Node) any {
		return n.(token.LexTree).Text()
	})

	tree := token.ParseTree{Type: "sum", Children: []token.Node{
		token.NewLexTree("num", []string{"1"}, 0, 0),
		token.NewLexTree("num", []string{"2"}, 0, 0),
	}}

	result := v.Visit(nil, tree)
	assert.Equal(t, "2", result)
}

func Test_Visitor_Collapse_unwrapsSingleChild(t *testing.T) {
	v := New()
	v.On("num", func(state any, n token.Node) any {
		return n.(token.LexTree).Text()
	})
	v.Collapse("value", func(state any, n token.Node) any {
		t.Fatal("fn should not be called when there is exactly one child")
		return nil
	})

	tree := token.ParseTree{Type: "value", Children: []token.Node{
		token.NewLexTree("num", []string{"7"}, 0, 0),
	}}

	result := v.Visit(nil, tree)
	assert.Equal(t, "7", result)
}

func Test_Visitor_Collapse_callsFnWhenMultipleChildren(t *testing.T) {
	v := New()
	called := false
	v.Collapse("value", func(state any, n token.Node) any {
		called = true
		return "fallback"
	})

	tree := token.ParseTree{Type: "value", Children: []token.Node{
		token.NewLexTree("lparen", []string{"("}, 0, 0),
		token.NewLexTree("rparen", []string{")"}, 0, 0),
	}}

	result := v.Visit(nil, tree)
	assert.True(t, called)
	assert.Equal(t, "fallback", result)
}

func Test_Visitor_Visit_unregisteredNodeRecurses(t *testing.T) {
	v := New()
	v.On("num", func(state any, n token.Node) any {
		return n.(token.LexTree).Text()
	})

	tree := token.ParseTree{Type: "unhandled", Children: []token.Node{
		token.NewLexTree("num", []string{"9"}, 0, 0),
	}}

	result := v.Visit(nil, tree)
	assert.Equal(t, "9", result)
}
