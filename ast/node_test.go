package ast

import (
	"testing"

	"github.com/arbor-ast/go-arbor/span"
)

// mulTree builds Mul(Add(IntLit(1), IntLit(2)), IntLit(3)).
func mulTree(p *Pool) *BinaryExpr {
	return NewBinaryExpr(span.Span{}, OpMul,
		NewBinaryExpr(span.Span{}, OpAdd,
			p.IntLit(span.Span{}, 1),
			p.IntLit(span.Span{}, 2)),
		p.IntLit(span.Span{}, 3))
}

func TestDepth(t *testing.T) {
	p := NewPool()
	tests := []struct {
		name     string
		node     Node
		expected int
	}{
		{"pooled leaf", p.IntLit(span.Span{}, 5), 0},
		{"terminal leaf", NewFloatLit(span.Span{}, 1.5), 0},
		{"childless composite", NewProgram(span.Span{}, nil), 0},
		{"let without type", NewLetDecl(span.Span{}, p.Ident(span.Span{}, "x"), nil, p.IntLit(span.Span{}, 1)), 1},
		{"mul tree", mulTree(p), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.node); got != tt.expected {
				t.Errorf("Depth = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDepthRecurrence(t *testing.T) {
	p := NewPool()
	n := mulTree(p)
	max := 0
	for _, c := range n.Children() {
		if d := Depth(c) + 1; d > max {
			max = d
		}
	}
	if Depth(n) != max {
		t.Errorf("Depth(n) = %d, want 1+max(child depths) = %d", Depth(n), max)
	}
}

func TestNodeCount(t *testing.T) {
	p := NewPool()
	n := mulTree(p)
	if got := NodeCount(n); got != 5 {
		t.Errorf("NodeCount = %d, want 5", got)
	}
	sum := 1
	for _, c := range n.Children() {
		sum += NodeCount(c)
	}
	if got := NodeCount(n); got != sum {
		t.Errorf("NodeCount = %d, want 1+sum(children) = %d", got, sum)
	}
	if got := NodeCount(p.BoolLit(span.Span{}, true)); got != 1 {
		t.Errorf("NodeCount(leaf) = %d, want 1", got)
	}
}

func TestIsLeaf(t *testing.T) {
	p := NewPool()
	if !IsLeaf(p.IntLit(span.Span{}, 1)) {
		t.Error("IntLit not a leaf")
	}
	if !IsLeaf(NewBadExpr(span.Span{}, "broken")) {
		t.Error("BadExpr not a leaf")
	}
	if IsLeaf(mulTree(p)) {
		t.Error("mul tree reported as leaf")
	}
	if !IsLeaf(NewCallExpr(span.Span{}, nil, nil)) {
		t.Error("childless call not a leaf")
	}
}

func TestChildrenOrderAndFiltering(t *testing.T) {
	p := NewPool()

	// Optional type annotation absent: children are [Name, Value].
	let := NewLetDecl(span.Span{}, p.Ident(span.Span{}, "x"), nil, p.IntLit(span.Span{}, 1))
	kids := let.Children()
	if len(kids) != 2 || kids[0].Kind() != KindIdent || kids[1].Kind() != KindIntLit {
		t.Errorf("children with absent optional field: %v", kinds(kids))
	}

	// Optional present: [Name, Type, Value].
	let = NewLetDecl(span.Span{}, p.Ident(span.Span{}, "x"), p.Ident(span.Span{}, "Int"), p.IntLit(span.Span{}, 1))
	kids = let.Children()
	if len(kids) != 3 {
		t.Errorf("children with optional field: %v", kinds(kids))
	}

	// Sequence fields contribute in order; the Op primitive never appears.
	call := NewCallExpr(span.Span{}, p.Ident(span.Span{}, "f"),
		[]Node{p.IntLit(span.Span{}, 1), p.IntLit(span.Span{}, 2)})
	kids = call.Children()
	if len(kids) != 3 || kids[0].Kind() != KindIdent {
		t.Errorf("call children: %v", kinds(kids))
	}
}

func kinds(nodes []Node) []Kind {
	res := make([]Kind, len(nodes))
	for i, n := range nodes {
		res[i] = n.Kind()
	}
	return res
}

func TestParentLinks(t *testing.T) {
	left := NewFloatLit(span.Span{}, 1)
	right := NewFloatLit(span.Span{}, 2)
	add := NewBinaryExpr(span.Span{}, OpAdd, left, right)
	root := NewUnaryExpr(span.Span{}, OpNeg, add)

	if left.Parent() != Node(add) {
		t.Error("constructor did not adopt left operand")
	}
	anc := Ancestors(left)
	if len(anc) != 2 || anc[0] != Node(add) || anc[1] != Node(root) {
		t.Errorf("Ancestors = %v", kinds(anc))
	}
	sibs := Siblings(left)
	if len(sibs) != 1 || sibs[0] != Node(right) {
		t.Errorf("Siblings = %v", kinds(sibs))
	}
}

func TestConnectRebuildsLinks(t *testing.T) {
	left := NewFloatLit(span.Span{}, 1)
	add := &BinaryExpr{Op: OpAdd, Left: left, Right: NewFloatLit(span.Span{}, 2)}
	if left.Parent() != nil {
		t.Fatal("unexpected parent before Connect")
	}
	Connect(add)
	if left.Parent() != Node(add) {
		t.Error("Connect did not set parent")
	}
}

func TestPooledLeavesHaveNoParentLink(t *testing.T) {
	p := NewPool()
	lit := p.IntLit(span.Span{}, 5)
	if _, ok := Node(lit).(ParentLinked); ok {
		t.Fatal("pooled leaf unexpectedly parent-linked")
	}
	if got := Ancestors(lit); got != nil {
		t.Errorf("Ancestors(pooled leaf) = %v", got)
	}

	// Boxing restores the link without changing observable behavior.
	box := Boxed(lit)
	add := NewBinaryExpr(span.Span{}, OpAdd, box, p.IntLit(span.Span{}, 1))
	if box.Parent() != Node(add) {
		t.Error("box not adopted")
	}
	if !box.Equals(lit) || !Node(lit).Equals(box) {
		t.Error("boxing changed equality")
	}
	if box.Kind() != KindIntLit {
		t.Errorf("box kind = %v", box.Kind())
	}
}

func TestScalarProbe(t *testing.T) {
	p := NewPool()
	tests := []struct {
		name      string
		node      Node
		fieldName string
		value     any
	}{
		{"int", p.IntLit(span.Span{}, 7), "value", int64(7)},
		{"ident", p.Ident(span.Span{}, "x"), "name", "x"},
		{"binary op", NewBinaryExpr(span.Span{}, OpMul, nil, nil), "op", "*"},
		{"bad expr", NewBadExpr(span.Span{}, "oops"), "reason", "oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, value, ok := ScalarOf(tt.node)
			if !ok || name != tt.fieldName || value != tt.value {
				t.Errorf("ScalarOf = %q, %v, %v; want %q, %v", name, value, ok, tt.fieldName, tt.value)
			}
		})
	}
	if _, _, ok := ScalarOf(NewProgram(span.Span{}, nil)); ok {
		t.Error("Program unexpectedly has a display field")
	}
}

func TestKindRegistry(t *testing.T) {
	if KindIntLit.String() != "IntLit" {
		t.Errorf("KindIntLit.String() = %q", KindIntLit.String())
	}
	if Kind(0).String() != "<unknown kind>" {
		t.Errorf("invalid kind String() = %q", Kind(0).String())
	}
	text, err := KindProgram.MarshalText()
	if err != nil || string(text) != "Program" {
		t.Errorf("MarshalText = %q, %v", text, err)
	}
	all := Kinds()
	if len(all) < 11 {
		t.Errorf("Kinds() returned %d kinds", len(all))
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	NewKind("IntLit")
}
