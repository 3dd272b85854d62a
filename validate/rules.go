package validate

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arbor-ast/go-arbor/ast"
	"github.com/arbor-ast/go-arbor/diag"
)

// A Rule is a declarative per-node check: a boolean expression evaluated
// against every node a FullValidator walks. A rule that evaluates to true
// produces one diagnostic at that node.
//
// Expressions see the environment:
//
//	kind     string  node kind name, e.g. "IntLit"
//	leaf     bool    whether the node has no children
//	children int     number of children
//	field    string  display field name ("" when the kind has none)
//	value    any     display field value (nil when the kind has none)
//
// Example: flag deeply nested calls as a hint.
//
//	rs.Add("huge-call", diag.Hint, `kind == "CallExpr" && children > 8`)
type Rule struct {
	Name     string
	Severity diag.Severity
	Source   string
	program  *vm.Program
}

// RuleSet is an ordered collection of compiled rules.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Add compiles source as a boolean expression and appends the rule.
func (rs *RuleSet) Add(name string, severity diag.Severity, source string) error {
	program, err := expr.Compile(source, expr.Env(ruleEnv(nil)), expr.AsBool())
	if err != nil {
		return fmt.Errorf("validate: rule %q: %w", name, err)
	}
	rs.rules = append(rs.rules, Rule{
		Name:     name,
		Severity: severity,
		Source:   source,
		program:  program,
	})
	return nil
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Check evaluates every rule against n. Evaluation failures surface as
// Error diagnostics rather than being dropped.
func (rs *RuleSet) Check(n ast.Node) diag.List {
	if len(rs.rules) == 0 {
		return nil
	}
	env := ruleEnv(n)
	var ds diag.List
	for i := range rs.rules {
		r := &rs.rules[i]
		out, err := vm.Run(r.program, env)
		if err != nil {
			ds = append(ds, diag.New(diag.Error, fmt.Sprintf("rule %q failed to evaluate: %v", r.Name, err)).
				WithPrimary(n.Span(), "while checking this node"))
			continue
		}
		if hit, _ := out.(bool); hit {
			ds = append(ds, diag.New(r.Severity, fmt.Sprintf("rule %q matched", r.Name)).
				WithPrimary(n.Span(), fmt.Sprintf("%s node", n.Kind())).
				WithNote(r.Source))
		}
	}
	return ds
}

func ruleEnv(n ast.Node) map[string]any {
	env := map[string]any{
		"kind":     "",
		"leaf":     false,
		"children": 0,
		"field":    "",
		"value":    any(nil),
	}
	if n == nil {
		return env
	}
	env["kind"] = n.Kind().String()
	env["leaf"] = ast.IsLeaf(n)
	env["children"] = len(n.Children())
	if name, value, ok := ast.ScalarOf(n); ok {
		env["field"] = name
		env["value"] = value
	}
	return env
}
