package validate

import (
	"strings"
	"testing"

	"github.com/arbor-ast/go-arbor/ast"
	"github.com/arbor-ast/go-arbor/diag"
	"github.com/arbor-ast/go-arbor/span"
)

func TestRuleSetAdd(t *testing.T) {
	rs := NewRuleSet()
	if err := rs.Add("big-int", diag.Warning, `kind == "IntLit" && value > 100`); err != nil {
		t.Fatal(err)
	}
	if rs.Len() != 1 {
		t.Errorf("Len() = %d", rs.Len())
	}

	// Non-boolean expressions are rejected at compile time.
	err := rs.Add("bad", diag.Warning, `children + 1`)
	if err == nil {
		t.Fatal("non-boolean rule compiled")
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("error does not name the rule: %v", err)
	}
	if rs.Len() != 1 {
		t.Errorf("failed Add changed the set: Len() = %d", rs.Len())
	}
}

func TestRuleSetCheck(t *testing.T) {
	rs := NewRuleSet()
	if err := rs.Add("big-int", diag.Warning, `kind == "IntLit" && value > 100`); err != nil {
		t.Fatal(err)
	}
	if err := rs.Add("wide-call", diag.Hint, `kind == "CallExpr" && children > 2`); err != nil {
		t.Fatal(err)
	}

	p := ast.NewPool()
	if ds := rs.Check(p.IntLit(span.Span{}, 5)); len(ds) != 0 {
		t.Errorf("small literal matched: %v", ds)
	}

	ds := rs.Check(ast.NewIntLit(span.New(1, 0, 3), 500))
	if len(ds) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(ds), ds)
	}
	if ds[0].Severity != diag.Warning || !strings.Contains(ds[0].Message, "big-int") {
		t.Errorf("diagnostic = %+v", ds[0])
	}
	if len(ds[0].Notes) != 1 || !strings.Contains(ds[0].Notes[0], "value > 100") {
		t.Errorf("rule source not attached: %v", ds[0].Notes)
	}

	call := ast.NewCallExpr(span.Span{}, p.Ident(span.Span{}, "f"),
		[]ast.Node{p.IntLit(span.Span{}, 1), p.IntLit(span.Span{}, 2)})
	ds = rs.Check(call)
	if len(ds) != 1 || ds[0].Severity != diag.Hint {
		t.Errorf("call check = %v", ds)
	}
}

func TestFullValidatorAppliesRules(t *testing.T) {
	rs := NewRuleSet()
	if err := rs.Add("named-x", diag.Info, `kind == "Ident" && value == "x"`); err != nil {
		t.Fatal(err)
	}

	p := ast.NewPool()
	root := ast.NewLetDecl(span.Span{}, p.Ident(span.Span{}, "x"), nil, p.IntLit(span.Span{}, 1))

	v := &FullValidator{Rules: rs}
	ds := v.Validate(root)
	if len(ds) != 1 || ds[0].Severity != diag.Info {
		t.Fatalf("got %v", ds)
	}
}

func TestRuleEnvLeafAndField(t *testing.T) {
	rs := NewRuleSet()
	if err := rs.Add("leafy", diag.Hint, `leaf && field == "value"`); err != nil {
		t.Fatal(err)
	}
	p := ast.NewPool()
	if ds := rs.Check(p.BoolLit(span.Span{}, true)); len(ds) != 1 {
		t.Errorf("leaf with display field not matched: %v", ds)
	}
	if ds := rs.Check(ast.NewProgram(span.Span{}, nil)); len(ds) != 0 {
		t.Errorf("fieldless composite matched: %v", ds)
	}
}
