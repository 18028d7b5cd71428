package table

import (
	"testing"

	"github.com/daanrutten/dsl-parser/grammar"
	"github.com/daanrutten/dsl-parser/synerr"
	"github.com/daanrutten/dsl-parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arithRuleSet(t *testing.T) *grammar.RuleSet {
	t.Helper()
	num, err := token.NewTerminal("num", `\d+`)
	require.NoError(t, err)

	rules := map[string][]string{
		"sum":     {"sum add product", "product"},
		"product": {"product mul value", "value"},
		"value":   {"num", "lparen sum rparen"},
	}
	order := []string{"sum", "product", "value"}
	rs, err := grammar.New([]token.Terminal{num}, rules, order, "sum")
	require.NoError(t, err)
	return rs
}

func Test_Build_leftRecursiveArithmetic_noConflict(t *testing.T) {
	tbl, err := Build(arithRuleSet(t))
	require.NoError(t, err)
	assert.Greater(t, tbl.NumStates(), 0)
}

func Test_Build_conflictingGrammar(t *testing.T) {
	num, err := token.NewTerminal("num", `\d+`)
	require.NoError(t, err)

	// classically ambiguous: no precedence to resolve expr expr vs expr,
	// so the state reached after "expr expr" holds both a reduce of
	// expr -> expr expr on num (num is in FOLLOW(expr)) and a shift on num
	// to start another expr - a shift/reduce conflict with no SLR(1) table.
	rules := map[string][]string{
		"expr": {"expr expr", "num"},
	}
	rs, err := grammar.New([]token.Terminal{num}, rules, []string{"expr"}, "expr")
	require.NoError(t, err)

	_, err = Build(rs)
	require.Error(t, err)

	se, ok := err.(*synerr.Error)
	require.True(t, ok)
	assert.Equal(t, synerr.LRConflict, se.Kind)
}

func Test_Table_Action_unknownSymbolIsErrorKind(t *testing.T) {
	tbl, err := Build(arithRuleSet(t))
	require.NoError(t, err)

	act := tbl.Action(0, "this-symbol-does-not-exist")
	assert.Equal(t, Error, act.Kind)
}

func Test_Table_Collection_nilOnlyAfterLoad(t *testing.T) {
	tbl, err := Build(arithRuleSet(t))
	require.NoError(t, err)
	assert.NotNil(t, tbl.Collection())
}
