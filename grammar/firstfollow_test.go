package grammar

import (
	"testing"

	"github.com/daanrutten/dsl-parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leftRecursiveArithRuleSet builds the classic left-recursive expression
// grammar: sum -> sum add product | product, product -> product mul value |
// value, value -> num | lparen sum rparen.
func leftRecursiveArithRuleSet(t *testing.T) *RuleSet {
	t.Helper()
	num, err := token.NewTerminal("num", `\d+`)
	require.NoError(t, err)

	rules, order := arithRules()
	rs, err := New([]token.Terminal{num}, rules, order, "sum")
	require.NoError(t, err)
	return rs
}

func Test_Analyze_first(t *testing.T) {
	rs := leftRecursiveArithRuleSet(t)
	a := Analyze(rs)

	assert.ElementsMatch(t, []string{"num", "lparen"}, a.First("value").Sorted())
	assert.ElementsMatch(t, []string{"num", "lparen"}, a.First("product").Sorted())
	assert.ElementsMatch(t, []string{"num", "lparen"}, a.First("sum").Sorted())
}

func Test_Analyze_follow(t *testing.T) {
	rs := leftRecursiveArithRuleSet(t)
	a := Analyze(rs)

	assert.Contains(t, a.Follow("sum").Sorted(), "$")
	assert.Contains(t, a.Follow("sum").Sorted(), "rparen")
	assert.Contains(t, a.Follow("product").Sorted(), "add")
	assert.Contains(t, a.Follow("value").Sorted(), "mul")
}

func Test_Analyze_quantifierFirst(t *testing.T) {
	comma, err := token.NewTerminal("comma", `,`)
	require.NoError(t, err)
	num, err := token.NewTerminal("num", `\d+`)
	require.NoError(t, err)

	rules := map[string][]string{
		"list": {"lbracket item* rbracket"},
		"item": {"num comma?"},
	}
	order := []string{"list", "item"}
	rs, err := New([]token.Terminal{comma, num}, rules, order, "list")
	require.NoError(t, err)

	a := Analyze(rs)

	// list's FIRST must include lbracket even though item is optional
	// inside it (item* can match zero times).
	assert.Contains(t, a.First("list").Sorted(), "lbracket")
	assert.Contains(t, a.First("item").Sorted(), "num")

	// item's FOLLOW must include itself's FIRST, since item* can repeat
	// and so an item can be immediately followed by another item.
	assert.Contains(t, a.Follow("item").Sorted(), "num")
}
