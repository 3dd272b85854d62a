// Package validate walks trees safely, even cyclic ones.
//
// The generic traversal library assumes finite trees; this package is the
// one walker that does not. A validation run drives every reachable node
// through unvisited → in-progress → done, collects each node's own
// diagnostics on the way, and reports a cycle whenever a child is reached
// while still in progress. Findings are diag values, never errors: callers
// decide pass/fail policy, conventionally failing only on Error severity.
package validate

import (
	"fmt"

	"github.com/arbor-ast/go-arbor/ast"
	"github.com/arbor-ast/go-arbor/debug"
	"github.com/arbor-ast/go-arbor/diag"
)

// Checker is implemented by nodes that carry their own validation logic.
// The walker invokes it once per node and collects the findings.
type Checker interface {
	Check() diag.List
}

type state uint8

const (
	inProgress state = iota + 1
	done
)

type walker struct {
	states map[ast.Node]state
	stack  []ast.Node
	diags  diag.List
	check  func(ast.Node) diag.List
}

func (w *walker) walk(n ast.Node) {
	switch w.states[n] {
	case inProgress:
		w.reportCycle(n)
		return
	case done:
		return
	}
	w.states[n] = inProgress
	w.stack = append(w.stack, n)
	if w.check != nil {
		w.diags = append(w.diags, w.check(n)...)
	}
	for _, c := range n.Children() {
		w.walk(c)
	}
	w.stack = w.stack[:len(w.stack)-1]
	w.states[n] = done
}

// reportCycle emits one diagnostic for the in-progress chain from n back to
// itself and abandons the descent. A node participating in several cycles
// is reported once, for the first cycle encountered.
func (w *walker) reportCycle(n ast.Node) {
	if debug.Validate() {
		debug.Logf("validate: cycle at %s %s (walk depth %d)", n.Kind(), n.Span(), len(w.stack))
	}
	d := diag.New(diag.Error, "cycle detected in node structure").
		WithPrimary(n.Span(), fmt.Sprintf("%s node is its own descendant", n.Kind())).
		WithHelp("trees own their subtrees exclusively; rebuild the shared region instead of linking to an ancestor")
	start := len(w.stack)
	for i, s := range w.stack {
		if s == n {
			start = i
			break
		}
	}
	for _, step := range w.stack[start+1:] {
		d = d.WithSecondary(step.Span(), fmt.Sprintf("cycle passes through this %s node", step.Kind()))
	}
	w.diags = append(w.diags, d)
}

// Structure checks the tree under root for cycles. An acyclic tree yields
// no diagnostics.
func Structure(root ast.Node) diag.List {
	w := &walker{states: map[ast.Node]state{}}
	w.walk(root)
	return w.diags
}

// FullValidator composes per-node custom diagnostics (Checker hooks and
// optional rule sets) with structural cycle detection in a single
// cycle-safe walk.
type FullValidator struct {
	Rules *RuleSet // optional declarative rules, may be nil
}

// Validate walks the tree under root and returns every finding. Group the
// result with diag.List.BySeverity to apply severity policy.
func (v *FullValidator) Validate(root ast.Node) diag.List {
	w := &walker{
		states: map[ast.Node]state{},
		check: func(n ast.Node) diag.List {
			var ds diag.List
			if c, ok := n.(Checker); ok {
				ds = append(ds, c.Check()...)
			}
			if v.Rules != nil {
				ds = append(ds, v.Rules.Check(n)...)
			}
			return ds
		},
	}
	w.walk(root)
	return w.diags
}
