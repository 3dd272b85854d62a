// Package ast provides the node representation core of the arbor toolkit.
//
// # Overview
//
// Trees are built from concrete node kinds that all satisfy the Node
// contract: a source span, an ordered children view, visitor dispatch, deep
// structural equality and deep cloning. Everything downstream of
// construction (traversal, search, diffing, validation, rendering) is
// written against that contract alone, so a tree may freely mix the
// representation strategies below.
//
// # Node contract
//
// Children returns exactly the node-typed fields in declared field order.
// Optional node fields contribute zero or one entries, sequence fields
// contribute their full contents in order, and primitive fields (numbers,
// text, flags) never appear. A node with no node-typed children is a leaf.
//
// Equals is deep structural equality: same concrete kind, equal spans, and
// pairwise-equal children. Comparisons across kinds are always false.
//
// Clone returns a new node for which clone.Equals(original) holds. For
// ordinary kinds every descendant is a fresh object; shared immutable
// leaves may return themselves.
//
// Fields are fixed for a node's lifetime. "Editing" a tree means building
// replacement nodes, normally with a transformer (see below).
//
// # Representation strategies
//
// Three interchangeable strategies materialize a kind, differing only in
// storage and allocation behavior:
//
//   - Standard kinds (Program, LetDecl, BinaryExpr, UnaryExpr, CallExpr)
//     store their fields directly and recompute the Children view per call.
//   - Terminal kinds (FloatLit, BadExpr) have only primitive fields, so
//     Children returns one shared empty slice and Depth, NodeCount and the
//     kind searches take constant-time fast paths. Observable behavior is
//     identical to standard kinds.
//   - Pooled kinds (IntLit, BoolLit, StringLit, Ident) are single-field
//     immutable leaves constructed through a Pool, which hands out one
//     shared instance per small value. Clone on these returns the
//     receiver. Box wraps a shared leaf when it needs a parent link.
//
// # Constructing nodes
//
//	pool := ast.NewPool()
//	tree := ast.NewBinaryExpr(sp, ast.OpMul,
//		ast.NewBinaryExpr(sp, ast.OpAdd,
//			pool.IntLit(span.Span{}, 1),
//			pool.IntLit(span.Span{}, 2)),
//		pool.IntLit(span.Span{}, 3))
//
// Pools are explicit, injected services: construct one per compiler (or per
// test) rather than reaching for a global. Pool shards are individually
// locked, so concurrent construction from several goroutines is safe.
//
// # Visitors and transformers
//
// A Visitor declares one method per kind; node.Accept(v) dispatches to the
// method for the node's concrete kind. The generic Accept[T] helper asserts
// the result type. A transformer is a visitor whose results are nodes:
// embed Identity for the leave-unchanged default and override the kinds to
// rewrite.
//
// # Traversal
//
// Preorder, Postorder, LevelOrder and WithDepth walk a tree calling a
// visit function; returning SkipChildren prunes the walk below the current
// node. FindAll returns a restartable sequence of kind matches; FindFirst
// and Contains are the usual shortcuts. All of these, and Equals and Clone,
// assume a finite tree — they are not defensive against cycles. The
// validate package is the cycle-safe walker.
//
// # Parent links
//
// Nodes that can carry a weak parent back-reference implement ParentLinked.
// Constructors set the link for their direct children and Connect rebuilds
// links for a whole tree. The link is a lookup aid for Ancestors and
// Siblings, never an ownership edge.
package ast
