package ast

import (
	"errors"
	"iter"
)

// SkipChildren can be returned by a visit callback to stop the walk from
// descending into the current node's children. It is never reported to the
// caller as an error.
var SkipChildren = errors.New("ast: skip children")

// The traversal functions below are stateless and operate purely through
// the Node contract, so trees may freely mix representation strategies.
// They assume a finite tree: a cyclic graph makes them recurse or loop
// without bound. Use the validate package to walk suspect structures.

// Preorder visits n, then each child left to right, recursively.
func Preorder(n Node, visit func(Node) error) error {
	if err := visit(n); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, c := range n.Children() {
		if err := Preorder(c, visit); err != nil {
			return err
		}
	}
	return nil
}

// Postorder visits each child recursively, then n.
func Postorder(n Node, visit func(Node) error) error {
	for _, c := range n.Children() {
		if err := Postorder(c, visit); err != nil {
			return err
		}
	}
	return visit(n)
}

// LevelOrder visits the tree breadth-first: n, then its children, then
// their children, always left to right within a level.
func LevelOrder(n Node, visit func(Node) error) error {
	queue := []Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if err := visit(cur); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
		queue = append(queue, cur.Children()...)
	}
	return nil
}

// WithDepth visits preorder, passing each node's distance from n (n is 0).
func WithDepth(n Node, visit func(Node, int) error) error {
	return withDepth(n, 0, visit)
}

func withDepth(n Node, depth int, visit func(Node, int) error) error {
	if err := visit(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, c := range n.Children() {
		if err := withDepth(c, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns the nodes of kind k under n in preorder, n included. The
// sequence is restartable: ranging over it again walks the tree again.
func FindAll(n Node, k Kind) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		findAll(n, k, yield)
	}
}

func findAll(n Node, k Kind, yield func(Node) bool) bool {
	if n.Kind() == k && !yield(n) {
		return false
	}
	if _, ok := n.(Terminal); ok {
		return true
	}
	for _, c := range n.Children() {
		if !findAll(c, k, yield) {
			return false
		}
	}
	return true
}

// FindFirst returns the first node of kind k in preorder, or false.
func FindFirst(n Node, k Kind) (Node, bool) {
	for found := range FindAll(n, k) {
		return found, true
	}
	return nil, false
}

// Contains reports whether the tree under n contains a node of kind k.
func Contains(n Node, k Kind) bool {
	_, ok := FindFirst(n, k)
	return ok
}
