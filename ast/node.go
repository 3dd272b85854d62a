package ast

import (
	"github.com/arbor-ast/go-arbor/span"
)

// Node is the contract every concrete node kind satisfies.
//
// Children returns exactly the node-typed fields in declared order: absent
// optional node fields contribute nothing, sequence fields contribute their
// full contents in order, primitive fields never appear. Equals is deep
// structural equality and is false across kinds. Clone returns a node equal
// to the receiver; shared immutable leaves may return themselves.
//
// Equals, Clone and the traversal algorithms built on Children assume a
// finite tree. Presenting a deliberately built cyclic graph to them does
// not terminate; only the validate package walks cyclic structures safely.
type Node interface {
	Kind() Kind
	Span() span.Span
	Children() []Node
	Accept(v Visitor) (any, error)
	Equals(o Node) bool
	Clone() Node
}

// ParentLinked is implemented by nodes that carry a weak back-reference to
// their parent. The link is informational only: it is set by whoever
// assembles a tree (constructors and Connect do) and never drives ownership
// or cycle prevention.
type ParentLinked interface {
	Node
	Parent() Node
	SetParent(p Node)
}

// Terminal marks kinds whose fields are all primitives, so they can never
// have children. Depth, NodeCount and the kind searches short-circuit on it.
type Terminal interface {
	Node
	TerminalNode()
}

// Scalar is an optional capability interface for kinds carrying a single
// displayable field (a value, name or operator). Generic renderers may use
// it to surface the field without per-kind code; it is best-effort and not
// part of the kernel contract.
type Scalar interface {
	Node
	ScalarField() (name string, value any)
}

// ScalarOf probes n for a display field.
func ScalarOf(n Node) (name string, value any, ok bool) {
	if s, ok := n.(Scalar); ok {
		name, value = s.ScalarField()
		return name, value, true
	}
	return "", nil, false
}

// base carries the span and the weak parent link of non-shared nodes.
type base struct {
	span   span.Span
	parent Node
}

func (b *base) Span() span.Span  { return b.span }
func (b *base) Parent() Node     { return b.parent }
func (b *base) SetParent(p Node) { b.parent = p }

// emptyNodes is the children view shared by every leaf.
var emptyNodes = []Node{}

// adopt points the parent link of each non-nil, parent-linked child at p.
func adopt(p Node, kids ...Node) {
	for _, c := range kids {
		if c == nil {
			continue
		}
		if pl, ok := c.(ParentLinked); ok {
			pl.SetParent(p)
		}
	}
}

// Connect walks the tree under root and re-establishes every parent link
// that the nodes support. Shared pooled leaves carry no link; wrap them in
// a Box to place them in a parent-linked tree.
func Connect(root Node) {
	for _, c := range root.Children() {
		if pl, ok := c.(ParentLinked); ok {
			pl.SetParent(root)
		}
		Connect(c)
	}
}

// IsLeaf reports whether n has no node-typed children.
func IsLeaf(n Node) bool {
	if _, ok := n.(Terminal); ok {
		return true
	}
	return len(n.Children()) == 0
}

// Depth returns 0 for leaves and 1 + the maximum child depth otherwise.
func Depth(n Node) int {
	if _, ok := n.(Terminal); ok {
		return 0
	}
	d := 0
	for _, c := range n.Children() {
		if cd := Depth(c) + 1; cd > d {
			d = cd
		}
	}
	return d
}

// NodeCount returns the number of nodes in the tree rooted at n.
func NodeCount(n Node) int {
	if _, ok := n.(Terminal); ok {
		return 1
	}
	count := 1
	for _, c := range n.Children() {
		count += NodeCount(c)
	}
	return count
}

// Ancestors returns the chain of parents from n's parent to the root,
// nearest first. Nodes without a parent link have no ancestors.
func Ancestors(n Node) []Node {
	var res []Node
	cur := n
	for {
		pl, ok := cur.(ParentLinked)
		if !ok || pl.Parent() == nil {
			return res
		}
		res = append(res, pl.Parent())
		cur = pl.Parent()
	}
}

// Siblings returns the other children of n's parent, in declared order.
func Siblings(n Node) []Node {
	pl, ok := n.(ParentLinked)
	if !ok || pl.Parent() == nil {
		return nil
	}
	var res []Node
	for _, c := range pl.Parent().Children() {
		if c != n {
			res = append(res, c)
		}
	}
	return res
}

// nodeEq compares two possibly-nil children.
func nodeEq(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// nodesEq compares two child sequences pairwise.
func nodesEq(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nodeEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// cloneNode deep-copies a possibly-nil child.
func cloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}

// cloneNodes deep-copies a child sequence.
func cloneNodes(ns []Node) []Node {
	if ns == nil {
		return nil
	}
	res := make([]Node, len(ns))
	for i, n := range ns {
		res[i] = cloneNode(n)
	}
	return res
}
