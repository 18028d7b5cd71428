package grammar

import "github.com/daanrutten/dsl-parser/internal/rtutil"

// Analysis holds the computed FIRST and FOLLOW sets for every symbol in a
// RuleSet. Computed once at Parser construction and
// reused for the lifetime of the action table.
type Analysis struct {
	rs     *RuleSet
	first  map[string]rtutil.StringSet
	follow map[string]rtutil.StringSet
}

// Analyze computes FIRST and FOLLOW over every symbol (terminal and
// non-terminal) referenced by rs, to a fixpoint.
func Analyze(rs *RuleSet) *Analysis {
	a := &Analysis{
		rs:     rs,
		first:  map[string]rtutil.StringSet{},
		follow: map[string]rtutil.StringSet{},
	}

	for _, nt := range rs.NonTerminals() {
		a.first[nt] = rtutil.NewStringSet()
		a.follow[nt] = rtutil.NewStringSet()
	}
	for _, t := range rs.Terminals() {
		a.first[t] = rtutil.NewStringSet(t)
	}

	a.computeFirst()
	a.computeFollow()

	return a
}

func (a *Analysis) computeFirst() {
	for {
		changed := false
		for _, k := range a.rs.NonTerminals() {
			for _, rule := range a.rs.Rules(k) {
				for _, e := range rule {
					if a.first[k].AddAll(a.first[e.Base]) {
						changed = true
					}
					if !e.CanOmit() {
						break
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}

func (a *Analysis) computeFollow() {
	a.follow[a.rs.StartSymbol()].Add("$")

	for {
		changed := false
		for _, k := range a.rs.NonTerminals() {
			for _, rule := range a.rs.Rules(k) {
				for i, e := range rule {
					if !a.rs.IsNonTerminal(e.Base) {
						continue
					}

					if e.CanRepeat() {
						if a.follow[e.Base].AddAll(a.first[e.Base]) {
							changed = true
						}
					}

					j := i + 1
					reachedEnd := true
					for ; j < len(rule); j++ {
						next := rule[j]
						if a.follow[e.Base].AddAll(a.first[next.Base]) {
							changed = true
						}
						if !next.CanOmit() {
							reachedEnd = false
							break
						}
					}

					if reachedEnd {
						if a.follow[e.Base].AddAll(a.follow[k]) {
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}

// First returns the FIRST set of a base symbol name (terminal or
// non-terminal).
func (a *Analysis) First(symbol string) rtutil.StringSet {
	return a.first[symbol]
}

// Follow returns the FOLLOW set of a non-terminal name.
func (a *Analysis) Follow(nonTerminal string) rtutil.StringSet {
	return a.follow[nonTerminal]
}
