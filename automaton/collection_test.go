package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Build_listGrammar_hasExpectedSymbolsAndGoto(t *testing.T) {
	rs := listRuleSet(t)

	col, err := Build(rs)
	require.NoError(t, err)
	require.NotEmpty(t, col.States)

	syms := col.Symbols(0)
	assert.Contains(t, syms, "list")
	assert.Contains(t, syms, "lbracket")

	trans, ok := col.Goto(0, "list")
	require.True(t, ok)
	assert.GreaterOrEqual(t, trans.ToState, 0)
}

func Test_Build_quantifierRepeatStaysInSameItem(t *testing.T) {
	rs := listRuleSet(t)

	col, err := Build(rs)
	require.NoError(t, err)

	// find the state reached after shifting lbracket, then num: num* must
	// allow shifting another num and landing back on an item with the
	// dot still before num (the CameFrom "stay" seed).
	afterBracket, ok := col.Goto(0, "lbracket")
	require.True(t, ok)

	afterNum, ok := col.Goto(afterBracket.ToState, "num")
	require.True(t, ok)

	afterAnotherNum, ok := col.Goto(afterNum.ToState, "num")
	require.True(t, ok)
	assert.Equal(t, afterNum.ToState, afterAnotherNum.ToState,
		"repeating num must return to the same state, since num* can consume any count")
}

func Test_Build_determinism(t *testing.T) {
	rs := listRuleSet(t)

	col1, err := Build(rs)
	require.NoError(t, err)
	col2, err := Build(rs)
	require.NoError(t, err)

	assert.Equal(t, len(col1.States), len(col2.States))
}
