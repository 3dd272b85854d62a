package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"

	"github.com/arbor-ast/go-arbor/debug"
)

// Generate renders a validated schema to gofmt-formatted Go source.
func Generate(s *Schema) ([]byte, error) {
	model, err := buildModel(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("gen: template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		if debug.Codegen() {
			debug.Logf("gen: unformattable output for package %s:\n%s", s.Package, buf.String())
		}
		return nil, fmt.Errorf("gen: generated code does not parse: %w", err)
	}
	return src, nil
}

type fileModel struct {
	Package string
	Kinds   []*kindModel
}

type kindModel struct {
	Name         string
	Doc          string
	Leaf         bool
	StructFields []string
	CtorParams   string
	CtorAssigns  string
	AdoptLines   []string
	ChildrenCap  int
	ChildLines   []string
	EqualsExpr   string
	CloneArgs    string
	ScalarName   string // "" when the kind has no display field
	ScalarField  string
}

func buildModel(s *Schema) (*fileModel, error) {
	fm := &fileModel{Package: s.Package}
	for _, k := range s.Kinds {
		km, err := buildKind(k)
		if err != nil {
			return nil, err
		}
		fm.Kinds = append(fm.Kinds, km)
	}
	return fm, nil
}

func buildKind(k *KindSpec) (*kindModel, error) {
	km := &kindModel{
		Name: k.Name,
		Doc:  k.Doc,
		Leaf: k.IsLeafOnly(),
	}
	var (
		params  []string
		assigns []string
		equals  = []string{"n.span == x.span"}
		clones  []string
	)
	primCount := 0
	for _, f := range k.Fields {
		param := paramName(f.Name)
		switch {
		case f.Node && f.List:
			km.StructFields = append(km.StructFields, f.Name+" []ast.Node")
			params = append(params, param+" []ast.Node")
			assigns = append(assigns, f.Name+": "+param)
			km.AdoptLines = append(km.AdoptLines, "adopt(n, "+param+"...)")
			km.ChildrenCap += 1
			km.ChildLines = append(km.ChildLines, "kids = append(kids, n."+f.Name+"...)")
			equals = append(equals, "eqNodes(n."+f.Name+", x."+f.Name+")")
			clones = append(clones, "cloneNodes(n."+f.Name+")")
		case f.Node:
			km.StructFields = append(km.StructFields, f.Name+" ast.Node")
			params = append(params, param+" ast.Node")
			assigns = append(assigns, f.Name+": "+param)
			km.AdoptLines = append(km.AdoptLines, "adopt(n, "+param+")")
			km.ChildrenCap++
			km.ChildLines = append(km.ChildLines,
				"if n."+f.Name+" != nil {\n\t\tkids = append(kids, n."+f.Name+")\n\t}")
			equals = append(equals, "eqNode(n."+f.Name+", x."+f.Name+")")
			clones = append(clones, "cloneNode(n."+f.Name+")")
		default:
			km.StructFields = append(km.StructFields, f.Name+" "+f.Type)
			params = append(params, param+" "+f.Type)
			assigns = append(assigns, f.Name+": "+param)
			equals = append(equals, "n."+f.Name+" == x."+f.Name)
			clones = append(clones, "n."+f.Name)
			primCount++
			if primCount == 1 {
				km.ScalarName = strings.ToLower(f.Name)
				km.ScalarField = f.Name
			}
		}
	}
	if primCount != 1 {
		km.ScalarName = ""
		km.ScalarField = ""
	}
	km.CtorParams = strings.Join(params, ", ")
	km.CtorAssigns = strings.Join(assigns, ", ")
	km.EqualsExpr = strings.Join(equals, " &&\n\t\t")
	km.CloneArgs = strings.Join(clones, ", ")
	return km, nil
}

func paramName(field string) string {
	p := strings.ToLower(field[:1]) + field[1:]
	if token.IsKeyword(p) {
		p += "_"
	}
	return p
}

var fileTemplate = template.Must(template.New("kinds").Parse(`// Code generated by arbor-codegen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/arbor-ast/go-arbor/ast"
	"github.com/arbor-ast/go-arbor/span"
)

// Node kinds declared by the schema.
var (
{{- range .Kinds}}
	Kind{{.Name}} = ast.NewKind("{{.Name}}")
{{- end}}
)

// node carries the span and weak parent link of every generated kind.
type node struct {
	span   span.Span
	parent ast.Node
}

func (n *node) Span() span.Span      { return n.span }
func (n *node) Parent() ast.Node     { return n.parent }
func (n *node) SetParent(p ast.Node) { n.parent = p }

var emptyNodes = []ast.Node{}

func adopt(p ast.Node, kids ...ast.Node) {
	for _, c := range kids {
		if pl, ok := c.(ast.ParentLinked); ok {
			pl.SetParent(p)
		}
	}
}

func eqNode(a, b ast.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

func eqNodes(a, b []ast.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eqNode(a[i], b[i]) {
			return false
		}
	}
	return true
}

func cloneNode(n ast.Node) ast.Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}

func cloneNodes(ns []ast.Node) []ast.Node {
	if ns == nil {
		return nil
	}
	res := make([]ast.Node, len(ns))
	for i, n := range ns {
		res[i] = cloneNode(n)
	}
	return res
}
{{range .Kinds}}
{{if .Doc}}// {{.Name}} {{.Doc}}{{else}}// {{.Name}} is a generated node kind.{{end}}
type {{.Name}} struct {
	node
{{- range .StructFields}}
	{{.}}
{{- end}}
}

// {{.Name}}Visitor is implemented by visitors that handle {{.Name}} nodes.
type {{.Name}}Visitor interface {
	Visit{{.Name}}(n *{{.Name}}) (any, error)
}

// New{{.Name}} constructs a {{.Name}} node.
func New{{.Name}}(sp span.Span{{if .CtorParams}}, {{.CtorParams}}{{end}}) *{{.Name}} {
	n := &{{.Name}}{node: node{span: sp}{{if .CtorAssigns}}, {{.CtorAssigns}}{{end}}}
{{- range .AdoptLines}}
	{{.}}
{{- end}}
	return n
}

func (n *{{.Name}}) Kind() ast.Kind { return Kind{{.Name}} }

{{if .Leaf -}}
func (n *{{.Name}}) Children() []ast.Node { return emptyNodes }

func (n *{{.Name}}) TerminalNode() {}
{{- else -}}
func (n *{{.Name}}) Children() []ast.Node {
	kids := make([]ast.Node, 0, {{.ChildrenCap}})
{{- range .ChildLines}}
	{{.}}
{{- end}}
	return kids
}
{{- end}}

func (n *{{.Name}}) Accept(v ast.Visitor) (any, error) {
	if kv, ok := v.({{.Name}}Visitor); ok {
		return kv.Visit{{.Name}}(n)
	}
	return v.VisitOther(n)
}

func (n *{{.Name}}) Equals(o ast.Node) bool {
	x, ok := ast.Unwrap(o).(*{{.Name}})
	if !ok {
		return false
	}
	return {{.EqualsExpr}}
}

{{if .Leaf -}}
func (n *{{.Name}}) Clone() ast.Node {
	c := *n
	c.parent = nil
	return &c
}
{{- else -}}
func (n *{{.Name}}) Clone() ast.Node {
	return New{{.Name}}(n.span{{if .CloneArgs}}, {{.CloneArgs}}{{end}})
}
{{- end}}
{{if .ScalarName}}
// ScalarField exposes the {{.ScalarName}} field for generic renderers.
func (n *{{.Name}}) ScalarField() (string, any) { return "{{.ScalarName}}", n.{{.ScalarField}} }
{{end -}}
{{end -}}
`))
