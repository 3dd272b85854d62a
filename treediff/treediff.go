// Package treediff computes structural differences between two trees.
//
// Diff compares node by node: two nodes of the same kind and display value
// are aligned and their child sequences diffed, everything else becomes a
// replace. Child sequences are aligned by mapping each child's signature
// (kind plus display value) to a rune and running a text diff over the rune
// strings, which keeps reordered and shifted children from producing
// replace noise. The result is an edit list over the Node contract, usable
// with any mix of representation strategies.
package treediff

import (
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arbor-ast/go-arbor/ast"
	"github.com/arbor-ast/go-arbor/debug"
	"github.com/arbor-ast/go-arbor/diag"
)

// Op classifies one edit.
type Op int

const (
	OpInsert Op = iota
	OpDelete
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	}
	return "<unknown op>"
}

// Edit is one difference. From is nil for inserts, To is nil for deletes.
type Edit struct {
	Op   Op
	From ast.Node
	To   ast.Node
}

// Diff returns the edits that turn the tree under from into the tree under
// to. Equal trees produce no edits. Both trees must be finite.
func Diff(from, to ast.Node) []Edit {
	var edits []Edit
	diffNodes(from, to, &edits)
	if debug.Diff() {
		debug.Logf("treediff: %d edits between %s and %s", len(edits), from.Kind(), to.Kind())
	}
	return edits
}

func diffNodes(from, to ast.Node, edits *[]Edit) {
	if signature(from) != signature(to) {
		*edits = append(*edits, Edit{Op: OpReplace, From: from, To: to})
		return
	}
	diffChildren(from.Children(), to.Children(), edits)
}

// diffChildren aligns two child sequences by signature. Each distinct
// signature gets a rune; the rune strings are diffed and equal runs recurse
// pairwise.
func diffChildren(from, to []ast.Node, edits *[]Edit) {
	sigs := map[string]rune{}
	fromRunes := mapSignatures(sigs, from)
	toRunes := mapSignatures(sigs, to)

	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				*edits = append(*edits, Edit{Op: OpDelete, From: from[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				*edits = append(*edits, Edit{Op: OpInsert, To: to[ti]})
				ti++
			}
		case diffpatch.DiffEqual:
			for range d.Text {
				diffChildren(from[fi].Children(), to[ti].Children(), edits)
				fi++
				ti++
			}
		}
	}
}

func mapSignatures(sigs map[string]rune, nodes []ast.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		sig := signature(n)
		r, ok := sigs[sig]
		if !ok {
			r = rune(len(sigs))
			sigs[sig] = r
		}
		rs[i] = r
	}
	return rs
}

// signature is a node's shallow identity: kind plus display field. Child
// structure deliberately stays out so reordered composites still align.
func signature(n ast.Node) string {
	if name, value, ok := ast.ScalarOf(n); ok {
		return fmt.Sprintf("%s %s=%v", n.Kind(), name, value)
	}
	return n.Kind().String()
}

// AsDiagnostics renders edits as Warning diagnostics, one per edit, with
// the primary label on the surviving side.
func AsDiagnostics(edits []Edit) diag.List {
	var ds diag.List
	for _, e := range edits {
		switch e.Op {
		case OpInsert:
			ds = append(ds, diag.New(diag.Warning, fmt.Sprintf("node inserted: %s", describe(e.To))).
				WithPrimary(e.To.Span(), "inserted here"))
		case OpDelete:
			ds = append(ds, diag.New(diag.Warning, fmt.Sprintf("node deleted: %s", describe(e.From))).
				WithPrimary(e.From.Span(), "deleted from here"))
		case OpReplace:
			ds = append(ds, diag.New(diag.Warning,
				fmt.Sprintf("node replaced: %s -> %s", describe(e.From), describe(e.To))).
				WithPrimary(e.To.Span(), "replacement").
				WithSecondary(e.From.Span(), "replaced node"))
		}
	}
	return ds
}

func describe(n ast.Node) string {
	return signature(n)
}
