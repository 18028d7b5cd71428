package automaton

import (
	"github.com/daanrutten/dsl-parser/grammar"
	"github.com/daanrutten/dsl-parser/internal/rtutil"
)

// Transition is the destination of a goto step: the state index reached,
// and a CameFrom array parallel to the destination state's item list.
// CameFrom[r] names the index, within the source state, of the item that
// produced destination item r as a direct successor (through skipOmit or
// a repeat-loop stay); it is nil where destination item r was introduced
// by closure's non-terminal expansion instead. The parse runtime's
// readStack uses this to count how many stack entries belong to a
// quantified production at reduce time.
type Transition struct {
	ToState   int
	CameFrom  []*int
}

// Collection is the canonical collection of LR(0) item sets for a
// grammar, with goto transitions keyed by (state index, base symbol
// name). State 0 is always the closure of the synthetic start item.
type Collection struct {
	States      []State
	transitions map[int]map[string]Transition
}

// Goto returns the transition out of state s on symbol el, if one exists.
func (c *Collection) Goto(s int, el string) (Transition, bool) {
	row, ok := c.transitions[s]
	if !ok {
		return Transition{}, false
	}
	t, ok := row[el]
	return t, ok
}

// Symbols returns the distinct base symbol names any item in state s has
// at its dot, in sorted order (the order new states are discovered in,
// and hence their numbering, follows this sort - the collection itself is
// correct regardless of numbering, but a fixed order keeps table dumps
// reproducible across builds of the same grammar).
func (c *Collection) Symbols(s int) []string {
	set := rtutil.NewStringSet()
	for _, it := range c.States[s] {
		if it.AtEnd() {
			continue
		}
		set.Add(it.ElementAtDot().Base)
	}
	return set.Sorted()
}

func (c *Collection) setTransition(s int, el string, t Transition) {
	row, ok := c.transitions[s]
	if !ok {
		row = map[string]Transition{}
		c.transitions[s] = row
	}
	row[el] = t
}

// Build constructs the canonical collection for rs: state 0 is the
// closure of the synthetic start item {$start$ -> . Start}, and every
// subsequent state is discovered by repeatedly computing goto over every
// symbol any state's items have at their dot, in order of discovery.
func Build(rs *grammar.RuleSet) (*Collection, error) {
	startRule := grammar.Rule{{Base: rs.StartSymbol(), Quant: grammar.None}}
	startItem := Item{Key: StartKey, Rule: startRule, Dot: 0}

	state0 := Closure([]Item{startItem}, rs)

	col := &Collection{
		States:      []State{state0},
		transitions: map[int]map[string]Transition{},
	}
	stateKeys := map[string]int{state0.key(): 0}

	worklist := []int{0}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]

		for _, el := range col.Symbols(s) {
			items, cameFromRaw, err := computeGoto(col.States, s, el, rs)
			if err != nil {
				return nil, err
			}
			if len(items) == 0 {
				continue
			}

			key := items.key()
			if idx, ok := stateKeys[key]; ok {
				remapped := remapCameFrom(items, cameFromRaw, col.States[idx])
				col.setTransition(s, el, Transition{ToState: idx, CameFrom: remapped})
				continue
			}

			newIdx := len(col.States)
			col.States = append(col.States, items)
			stateKeys[key] = newIdx
			col.setTransition(s, el, Transition{ToState: newIdx, CameFrom: cameFromRaw})
			worklist = append(worklist, newIdx)
		}
	}

	return col, nil
}

// computeGoto computes goto(items, el): for every item in
// source state s with base(symbol at dot) == el, it emits the skipOmit
// chain of the dot-advanced item, plus (if the matched element is
// repeatable) the item itself with the dot unchanged, then closes the
// result. Each emitted seed is tagged with the source item's index in s.
func computeGoto(states []State, s int, el string, rs *grammar.RuleSet) (State, []*int, error) {
	srcState := states[s]

	var seeds []seeded
	for i, it := range srcState {
		if it.AtEnd() {
			continue
		}
		e := it.ElementAtDot()
		if e.Base != el {
			continue
		}

		idx := i
		advanced := it.Advance()
		for _, chainItem := range skipOmit(advanced) {
			seeds = append(seeds, seeded{item: chainItem, source: &idx})
		}

		if e.CanRepeat() {
			seeds = append(seeds, seeded{item: it, source: &idx})
		}
	}

	if len(seeds) == 0 {
		return nil, nil, nil
	}

	return closureWithSource(seeds, rs)
}

// remapCameFrom rewrites a freshly-computed cameFrom array (indexed by
// items' own BFS-discovery order) onto the position each item occupies in
// an already-canonicalized destination state, matched by item key. This
// is what lets multiple distinct transitions into the same destination
// state each carry a correct, independently-computed CameFrom array even
// though the destination's item order was fixed the first time it was
// discovered.
func remapCameFrom(items State, cameFromRaw []*int, canonical State) []*int {
	pos := make(map[string]int, len(canonical))
	for p, it := range canonical {
		pos[it.String()] = p
	}

	remapped := make([]*int, len(canonical))
	for p, it := range items {
		if cp, ok := pos[it.String()]; ok {
			remapped[cp] = cameFromRaw[p]
		}
	}
	return remapped
}
