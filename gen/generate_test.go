package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	s, err := Load("testdata/toylang.yaml")
	if err != nil {
		t.Fatal(err)
	}
	src, err := Generate(s)
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by arbor-codegen. DO NOT EDIT.",
		"package toylang",
		`ast.NewKind("Pair")`,
		`ast.NewKind("Atom")`,
		"type Pair struct {",
		"type PairVisitor interface {",
		"func NewPair(sp span.Span, first ast.Node, second ast.Node) *Pair",
		"func (n *Pair) Kind() ast.Kind { return KindPair }",
		"return v.VisitOther(n)",
		"func (n *Atom) TerminalNode() {}",
		"func (n *Atom) Children() []ast.Node { return emptyNodes }",
		`func (n *Atom) ScalarField() (string, any) { return "text", n.Text }`,
		"Body []ast.Node",
		"kids = append(kids, n.Body...)",
		"if n.Else != nil {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Multi-field kinds expose no display field.
	if strings.Contains(out, "func (n *Pair) ScalarField") {
		t.Error("Pair has a ScalarField method")
	}

	// Leaf kinds clone by value copy, not reconstruction.
	if !strings.Contains(out, "func (n *Atom) Clone() ast.Node {\n\tc := *n") {
		t.Error("Atom does not clone by value copy")
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "toylang_gen.go", src, 0); err != nil {
		t.Errorf("generated source does not parse: %v", err)
	}
}

func TestGenerateKeywordFieldNames(t *testing.T) {
	s, err := Parse([]byte(`
package: p
kinds:
  - name: Cast
    fields:
      - {name: Type, node: true}
      - {name: Func, node: true}
`))
	if err != nil {
		t.Fatal(err)
	}
	src, err := Generate(s)
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)
	if !strings.Contains(out, "type_ ast.Node") || !strings.Contains(out, "func_ ast.Node") {
		t.Error("keyword-colliding parameters not renamed")
	}
	if !strings.Contains(out, "Type: type_") {
		t.Error("renamed parameter not assigned to its field")
	}
}

func TestGenerateDocComments(t *testing.T) {
	s, err := Parse([]byte(`
package: p
kinds:
  - name: Pair
    doc: joins two values.
    fields:
      - {name: First, node: true}
      - {name: Second, node: true}
  - name: Bare
`))
	if err != nil {
		t.Fatal(err)
	}
	src, err := Generate(s)
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)
	if !strings.Contains(out, "// Pair joins two values.") {
		t.Error("schema doc not carried to the kind")
	}
	if !strings.Contains(out, "// Bare is a generated node kind.") {
		t.Error("default doc missing")
	}
}
