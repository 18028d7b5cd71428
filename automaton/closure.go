package automaton

import (
	"fmt"
	"sort"

	"github.com/daanrutten/dsl-parser/grammar"
	"github.com/daanrutten/dsl-parser/synerr"
)

// State is an ordered, deduplicated list of items. Two states are treated
// as equal (the same point in the canonical collection) when they contain
// the same set of items regardless of order; the order itself is fixed at
// the moment the state is first discovered and is what reduce actions
// reference as "item index within state".
type State []Item

// key returns the state's set-equality key: its item strings, sorted.
func (s State) key() string {
	keys := make([]string, len(s))
	for i, it := range s {
		keys[i] = it.String()
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += k + "\x00"
	}
	return out
}

// seeded is one item carried into a closure computation, optionally
// tagged with the index (within the state it came from) of the item it is
// a direct successor of. A nil Source means the item was introduced by
// closure's own non-terminal expansion, not by the caller's goto step.
type seeded struct {
	item   Item
	source *int
}

// Closure computes the closure of a bare item list (no source tracking),
// used to seed state 0 from the synthetic start item.
func Closure(items []Item, rs *grammar.RuleSet) State {
	var seed []seeded
	for _, it := range items {
		seed = append(seed, seeded{item: it})
	}
	st, _, err := closureWithSource(seed, rs)
	if err != nil {
		// Closure() is only ever called with a single source-free seed
		// (state 0), where no two distinct sources can conflict; this
		// branch is unreachable in practice.
		panic(err)
	}
	return st
}

// closureWithSource runs the breadth-first closure expansion: start from
// skipOmit of each seed item, and whenever an
// item's dot sits before a non-terminal A, add skipOmit of A's productions
// (dot at zero) to the working list. Items are deduplicated structurally.
//
// For each resulting item, cameFrom[i] records the seed's source index if
// that item was itself a seed (or part of a seed's skipOmit chain); it is
// nil for items introduced purely by non-terminal expansion.
//
// A reduce/reduce-style conflict is raised if two distinct seeds (with
// different, non-nil source indices) resolve to the same produced item.
func closureWithSource(seeds []seeded, rs *grammar.RuleSet) (State, []*int, error) {
	// expand each seed through its own skipOmit chain up front, so that
	// the initial frontier handed to the worklist already reflects
	// "emit the item itself plus each omissible successor".
	var frontier []seeded
	for _, sd := range seeds {
		for _, chainItem := range skipOmit(sd.item) {
			frontier = append(frontier, seeded{item: chainItem, source: sd.source})
		}
	}

	// the frontier keeps seed order (for goto: per source item, the
	// advanced chain first, then the repeat-loop stay), which fixes the
	// item indices of a newly discovered state. A later transition into an
	// already-known state is matched by item key (see remapCameFrom).
	var result []Item
	var cameFrom []*int
	seen := map[string]int{}
	var worklist []Item

	insert := func(it Item, src *int) error {
		key := it.String()
		if idx, ok := seen[key]; ok {
			if cameFrom[idx] == nil {
				cameFrom[idx] = src
			} else if src != nil && *cameFrom[idx] != *src {
				return synerr.NewWithoutPosition(synerr.LRConflict,
					fmt.Sprintf("rule %q: item %q reachable from incompatible quantifier chains", it.Key, it.String()))
			}
			return nil
		}
		seen[key] = len(result)
		result = append(result, it)
		cameFrom = append(cameFrom, src)
		worklist = append(worklist, it)
		return nil
	}

	for _, sd := range frontier {
		if err := insert(sd.item, sd.source); err != nil {
			return nil, nil, err
		}
	}

	for i := 0; i < len(worklist); i++ {
		it := worklist[i]
		if it.AtEnd() {
			continue
		}
		el := it.ElementAtDot()
		if !rs.IsNonTerminal(el.Base) {
			continue
		}
		for _, rule := range rs.Rules(el.Base) {
			newItem := Item{Key: el.Base, Rule: rule, Dot: 0}
			for _, chainItem := range skipOmit(newItem) {
				if err := insert(chainItem, nil); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return State(result), cameFrom, nil
}
