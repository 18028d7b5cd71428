package token

import (
	"fmt"
	"strings"
)

// tree-printing layout constants, grounded on types/tree.go's
// leveledStr: pad each branch label to a fixed width so sibling subtrees
// line up in a terminal dump.
const (
	treeLevelEmpty     = "        "
	treeLevelOngoing   = "  |     "
	treeLevelPrefix    = "  |%s: "
	treeLevelLastMark  = `  \%s: `
	treeLevelPadChar   = '-'
	treeLevelPadTarget = 3
)

// ParseTree is an internal node: a non-terminal and its ordered children,
// each of which is itself a Node (either another ParseTree or a LexTree
// leaf). Child order is source order.
type ParseTree struct {
	Type     string
	Children []Node
}

func (pt ParseTree) NodeType() string { return pt.Type }

// Leftmost recurses into the first child to find the leftmost leaf
// beneath this node. A childless ParseTree yields the zero LexTree.
func (pt ParseTree) Leftmost() LexTree {
	if len(pt.Children) == 0 {
		return LexTree{}
	}
	return pt.Children[0].Leftmost()
}

// Copy returns a deep copy of the tree.
func (pt ParseTree) Copy() ParseTree {
	cp := ParseTree{Type: pt.Type, Children: make([]Node, len(pt.Children))}
	for i, c := range pt.Children {
		switch v := c.(type) {
		case ParseTree:
			cp.Children[i] = v.Copy()
		case LexTree:
			cp.Children[i] = v
		default:
			cp.Children[i] = c
		}
	}
	return cp
}

// Equal reports whether two parse trees have identical structure: same
// type at every node, same number of children, and leaves with identical
// Type/Text.
func (pt ParseTree) Equal(o any) bool {
	other, ok := o.(ParseTree)
	if !ok {
		return false
	}
	if pt.Type != other.Type || len(pt.Children) != len(other.Children) {
		return false
	}
	for i := range pt.Children {
		if !nodeEqual(pt.Children[i], other.Children[i]) {
			return false
		}
	}
	return true
}

func nodeEqual(a, b Node) bool {
	switch av := a.(type) {
	case ParseTree:
		bv, ok := b.(ParseTree)
		return ok && av.Equal(bv)
	case LexTree:
		bv, ok := b.(LexTree)
		return ok && av.Type == bv.Type && av.Text() == bv.Text()
	default:
		return false
	}
}

// String returns a prettified representation suitable for line-by-line
// comparison in tests. Two parse trees are considered semantically
// identical if they produce identical String() output.
func (pt ParseTree) String() string {
	return leveledStr(pt, "", "")
}

func leveledStr(n Node, firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)

	pt, isInternal := n.(ParseTree)
	if !isInternal {
		sb.WriteString(n.String())
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("( %s )", pt.Type))

	for i, child := range pt.Children {
		sb.WriteRune('\n')
		var childFirst, childCont string
		if i+1 < len(pt.Children) {
			childFirst = contPrefix + padPrefix(treeLevelPrefix, "")
			childCont = contPrefix + treeLevelOngoing
		} else {
			childFirst = contPrefix + padPrefix(treeLevelLastMark, "")
			childCont = contPrefix + treeLevelEmpty
		}
		sb.WriteString(leveledStr(child, childFirst, childCont))
	}

	return sb.String()
}

func padPrefix(format, msg string) string {
	for len([]rune(msg)) < treeLevelPadTarget {
		msg = string(treeLevelPadChar) + msg
	}
	return fmt.Sprintf(format, msg)
}
