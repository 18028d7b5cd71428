// Package automaton builds the canonical collection of LR(0) item sets for
// a grammar.RuleSet, with the quantifier semantics (?, *, +) folded
// directly into closure and goto, rather than handled as
// a separate epsilon-elimination pass. Grounded in shape on
// dekarrin-tunaq's internal/ictiobus/grammar/item.go (LR0Item's
// NonTerminal/Left/Right/dot-position structure, structural Equal, and
// "NONTERM -> ALPHA.BETA" String format) and
// internal/ictiobus/automaton/automaton.go's discovery-worklist style of
// canonical-collection construction.
package automaton

import (
	"fmt"
	"strings"

	"github.com/daanrutten/dsl-parser/grammar"
)

// StartKey names the synthetic augmenting non-terminal whose single rule
// wraps the user's declared start symbol, as required to seed state 0 of
// the canonical collection.
const StartKey = "$start$"

// Item is a dotted rule: a production with a cursor marking how much of it
// has been recognized. Two items are equal when Key, Rule, and Dot are all
// structurally equal.
type Item struct {
	Key  string
	Rule grammar.Rule
	Dot  int
}

// AtEnd reports whether the dot has reached the end of the rule.
func (it Item) AtEnd() bool {
	return it.Dot >= len(it.Rule)
}

// ElementAtDot returns the element immediately after the dot. Panics if
// AtEnd (callers must check first).
func (it Item) ElementAtDot() grammar.Element {
	return it.Rule[it.Dot]
}

// Advance returns a copy of it with the dot moved forward by one.
func (it Item) Advance() Item {
	return Item{Key: it.Key, Rule: it.Rule, Dot: it.Dot + 1}
}

// String renders the item as "KEY -> ALPHA . BETA", matching
// grammar/item.go's LR0Item.String format (used here as the
// structural-equality / dedup key, and in diagnostics and debug dumps).
func (it Item) String() string {
	var left, right []string
	for i, e := range it.Rule {
		if i < it.Dot {
			left = append(left, e.String())
		} else {
			right = append(right, e.String())
		}
	}
	return fmt.Sprintf("%s -> %s . %s", it.Key, strings.Join(left, " "), strings.Join(right, " "))
}

// skipOmit folds ?/* nullability directly into the item set: given an item
// with the dot at position d, it returns the item itself plus one
// additional item per consecutive omissible element starting at d (dot
// advanced past each), stopping at the first non-omissible element or the
// end of the rule. This is what lets closure/goto treat an omissible
// element as "optionally already consumed" without a separate epsilon
// production.
func skipOmit(it Item) []Item {
	chain := []Item{it}
	cur := it
	for !cur.AtEnd() && cur.ElementAtDot().CanOmit() {
		cur = cur.Advance()
		chain = append(chain, cur)
	}
	return chain
}
