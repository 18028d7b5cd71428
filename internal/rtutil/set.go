// Package rtutil holds small ordered-collection helpers shared across the
// grammar/automaton/table/parse packages, grounded on dekarrin-tunaq's
// internal/util package (StringSet, Stack) but trimmed to only the
// operations this toolkit actually needs.
package rtutil

import "sort"

// StringSet is a set of strings with deterministic iteration via Sorted.
type StringSet map[string]struct{}

// NewStringSet builds a StringSet from the given elements.
func NewStringSet(elems ...string) StringSet {
	s := StringSet{}
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts element into the set, reporting whether it was newly added
// (false if it was already present - useful for fixpoint loops to detect
// "no change").
func (s StringSet) Add(element string) bool {
	if _, ok := s[element]; ok {
		return false
	}
	s[element] = struct{}{}
	return true
}

// AddAll adds every element of o to s, reporting whether anything changed.
func (s StringSet) AddAll(o StringSet) bool {
	changed := false
	for e := range o {
		if s.Add(e) {
			changed = true
		}
	}
	return changed
}

// Has reports whether element is in the set.
func (s StringSet) Has(element string) bool {
	_, ok := s[element]
	return ok
}

// Sorted returns the set's elements in ascending order, for deterministic
// output (table dumps, error messages).
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}
