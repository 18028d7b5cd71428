// Package visit provides a type-dispatched tree walk over token.Node
// values. It has no direct teacher analog (dekarrin-tunaq's ictiobus
// produces Go structs directly from an SDTS rather than walking a
// generic tree after the fact), so it follows spec.md's §4.G contract
// plumbed through the teacher's error/naming conventions instead of one
// specific source file.
package visit

import "github.com/daanrutten/dsl-parser/token"

// Dispatch is a function registered for one node type. It receives the
// user's own walk state and the node, and returns a user-defined value.
type Dispatch func(state any, n token.Node) any

// Visitor holds dispatch functions keyed by node type name.
type Visitor struct {
	dispatch map[string]Dispatch
}

// New returns an empty Visitor.
func New() *Visitor {
	return &Visitor{dispatch: map[string]Dispatch{}}
}

// On registers fn as the dispatch for nodeType.
func (v *Visitor) On(nodeType string, fn Dispatch) {
	v.dispatch[nodeType] = fn
}

// Collapse registers a dispatch for nodeType that, when the node has
// exactly one child, delegates to that child's own dispatch instead of
// calling fn - a convenience for unit productions (such as sum -> product),
// which otherwise add a layer of indirection a caller rarely wants to
// handle explicitly.
func (v *Visitor) Collapse(nodeType string, fn Dispatch) {
	v.dispatch[nodeType] = func(state any, n token.Node) any {
		if pt, ok := n.(token.ParseTree); ok && len(pt.Children) == 1 {
			return v.Visit(state, pt.Children[0])
		}
		return fn(state, n)
	}
}

// Visit looks up the dispatch registered for n's node type and invokes
// it. If none is registered and n has children, Visit recurses into
// each child in order and returns the result of the last.
func (v *Visitor) Visit(state any, n token.Node) any {
	if fn, ok := v.dispatch[n.NodeType()]; ok {
		return fn(state, n)
	}
	return v.VisitChildren(state, n)
}

// VisitChildren visits every child of n in order (if n is a ParseTree;
// a LexTree leaf has none) and returns the result of the last, or nil
// if n has no children.
func (v *Visitor) VisitChildren(state any, n token.Node) any {
	pt, ok := n.(token.ParseTree)
	if !ok || len(pt.Children) == 0 {
		return nil
	}
	var result any
	for _, child := range pt.Children {
		result = v.Visit(state, child)
	}
	return result
}
