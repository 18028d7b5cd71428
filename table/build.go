package table

import (
	"fmt"

	"github.com/daanrutten/dsl-parser/automaton"
	"github.com/daanrutten/dsl-parser/grammar"
	"github.com/daanrutten/dsl-parser/synerr"
)

// Table is the built action/goto table: one row of Action per state,
// indexed by lookahead symbol name (terminal type or non-terminal). It
// also retains the canonical collection it was built from, for dumping
// and for the debug automaton snapshot.
type Table struct {
	rs  *grammar.RuleSet
	col *automaton.Collection

	// numStates is len(col.States) when built fresh, or the number of
	// rows read back from disk when col is nil (a rehydrated table has
	// no item-set collection, only the action rows).
	numStates int
	rows      []map[string]Action

	// reduceOf[s][symbol] is the item the reduce/accept action in
	// rows[s][symbol] was produced from, used only to name rules in
	// conflict diagnostics (nil on a table loaded from disk).
	reduceOf []map[string]automaton.Item
}

// Build walks the canonical collection of rs (computing FIRST/FOLLOW
// along the way) and emits one Action per (state, lookahead symbol), per
// the algorithm: items at end of rule contribute reduce/accept actions
// over FOLLOW, items with a symbol at the dot contribute shift actions
// via goto. A conflicting pair of actions on the same (state, symbol)
// raises LR_CONFLICT naming the offending rule(s) and both action kinds.
func Build(rs *grammar.RuleSet) (*Table, error) {
	col, err := automaton.Build(rs)
	if err != nil {
		return nil, err
	}
	analysis := grammar.Analyze(rs)

	t := &Table{
		rs:        rs,
		col:       col,
		numStates: len(col.States),
		rows:      make([]map[string]Action, len(col.States)),
		reduceOf:  make([]map[string]automaton.Item, len(col.States)),
	}

	for s, state := range col.States {
		row := map[string]Action{}
		reduceOf := map[string]automaton.Item{}
		t.rows[s] = row
		t.reduceOf[s] = reduceOf

		for idx, it := range state {
			if !it.AtEnd() {
				continue
			}

			if it.Key == automaton.StartKey {
				if err := t.set(s, "$", Action{Kind: Accept, Key: rs.StartSymbol()}, it); err != nil {
					return nil, err
				}
				continue
			}

			for _, lookahead := range analysis.Follow(it.Key).Sorted() {
				if err := t.set(s, lookahead, Action{Kind: Reduce, Key: it.Key, Rule: idx}, it); err != nil {
					return nil, err
				}
			}
		}

		for _, el := range col.Symbols(s) {
			trans, ok := col.Goto(s, el)
			if !ok {
				continue
			}
			shiftAct := Action{Kind: Shift, State: trans.ToState, CameFrom: trans.CameFrom}
			if err := t.set(s, el, shiftAct, automaton.Item{}); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// set installs next into row (s, symbol), raising LR_CONFLICT if a
// different action is already present. it is the item next was derived
// from (zero value for shift actions, which aren't tied to one item).
func (t *Table) set(s int, symbol string, next Action, it automaton.Item) error {
	row := t.rows[s]
	existing, ok := row[symbol]
	if !ok {
		row[symbol] = next
		if next.Kind == Reduce || next.Kind == Accept {
			t.reduceOf[s][symbol] = it
		}
		return nil
	}
	if actionsEqual(existing, next) {
		return nil
	}

	prevIt, hasPrev := t.reduceOf[s][symbol]
	msg := fmt.Sprintf("conflict in state %d on symbol %q: %s vs %s", s, symbol, existing.Kind, next.Kind)
	if hasPrev {
		msg += fmt.Sprintf(" (rule %s -> %s)", prevIt.Key, prevIt.Rule.String())
	}
	if next.Kind == Reduce || next.Kind == Accept {
		msg += fmt.Sprintf(" (rule %s -> %s)", it.Key, it.Rule.String())
	}
	return synerr.NewWithoutPosition(synerr.LRConflict, msg)
}

func actionsEqual(a, b Action) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Shift:
		return a.State == b.State
	case Reduce:
		return a.Key == b.Key && a.Rule == b.Rule
	case Accept:
		return a.Key == b.Key
	default:
		return true
	}
}

// Action returns the table entry for (state, symbol), or the zero
// (Error-kind) Action if none exists.
func (t *Table) Action(state int, symbol string) Action {
	return t.rows[state][symbol]
}

// Symbols returns every symbol name with a non-error action in the given
// state's row. The parse runtime uses this, filtered down to terminal
// names, to build the active-terminal set it hands to the lexer.
func (t *Table) Symbols(state int) []string {
	row := t.rows[state]
	out := make([]string, 0, len(row))
	for symbol := range row {
		out = append(out, symbol)
	}
	return out
}

// Collection exposes the canonical collection the table was built from.
// It is nil on a table rehydrated from a persisted file, since the
// persisted format carries only action rows (see Save/Load).
func (t *Table) Collection() *automaton.Collection {
	return t.col
}

// NumStates returns the number of rows in the table.
func (t *Table) NumStates() int {
	return t.numStates
}

// RuleSet returns the grammar this table was built for.
func (t *Table) RuleSet() *grammar.RuleSet {
	return t.rs
}
