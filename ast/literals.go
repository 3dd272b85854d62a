package ast

import (
	"github.com/arbor-ast/go-arbor/span"
)

// Pooled literal kinds. Each is a single-field immutable leaf; instances
// built through a Pool are shared across equal values, so none of them
// carries a parent link and Clone returns the receiver. The NewX
// constructors always build a fresh instance; they are what the pool calls
// on a miss, and what callers use when pooling is not wanted.

// IntLit is an integer literal.
type IntLit struct {
	span  span.Span
	Value int64
}

// NewIntLit constructs a fresh, unpooled integer literal.
func NewIntLit(sp span.Span, v int64) *IntLit {
	return &IntLit{span: sp, Value: v}
}

func (n *IntLit) Kind() Kind                    { return KindIntLit }
func (n *IntLit) Span() span.Span               { return n.span }
func (n *IntLit) Children() []Node              { return emptyNodes }
func (n *IntLit) Accept(v Visitor) (any, error) { return v.VisitIntLit(n) }
func (n *IntLit) TerminalNode()                 {}

func (n *IntLit) Equals(o Node) bool {
	x, ok := Unwrap(o).(*IntLit)
	if !ok {
		return false
	}
	return n.span == x.span && n.Value == x.Value
}

// Clone returns the receiver: the value is immutable and may alias.
func (n *IntLit) Clone() Node { return n }

// ScalarField exposes the literal value for generic renderers.
func (n *IntLit) ScalarField() (string, any) { return "value", n.Value }

// BoolLit is a boolean literal.
type BoolLit struct {
	span  span.Span
	Value bool
}

// NewBoolLit constructs a fresh, unpooled boolean literal.
func NewBoolLit(sp span.Span, v bool) *BoolLit {
	return &BoolLit{span: sp, Value: v}
}

func (n *BoolLit) Kind() Kind                    { return KindBoolLit }
func (n *BoolLit) Span() span.Span               { return n.span }
func (n *BoolLit) Children() []Node              { return emptyNodes }
func (n *BoolLit) Accept(v Visitor) (any, error) { return v.VisitBoolLit(n) }
func (n *BoolLit) TerminalNode()                 {}

func (n *BoolLit) Equals(o Node) bool {
	x, ok := Unwrap(o).(*BoolLit)
	if !ok {
		return false
	}
	return n.span == x.span && n.Value == x.Value
}

func (n *BoolLit) Clone() Node { return n }

// ScalarField exposes the literal value for generic renderers.
func (n *BoolLit) ScalarField() (string, any) { return "value", n.Value }

// StringLit is a text literal.
type StringLit struct {
	span  span.Span
	Value string
}

// NewStringLit constructs a fresh, unpooled string literal.
func NewStringLit(sp span.Span, v string) *StringLit {
	return &StringLit{span: sp, Value: v}
}

func (n *StringLit) Kind() Kind                    { return KindStringLit }
func (n *StringLit) Span() span.Span               { return n.span }
func (n *StringLit) Children() []Node              { return emptyNodes }
func (n *StringLit) Accept(v Visitor) (any, error) { return v.VisitStringLit(n) }
func (n *StringLit) TerminalNode()                 {}

func (n *StringLit) Equals(o Node) bool {
	x, ok := Unwrap(o).(*StringLit)
	if !ok {
		return false
	}
	return n.span == x.span && n.Value == x.Value
}

func (n *StringLit) Clone() Node { return n }

// ScalarField exposes the literal value for generic renderers.
func (n *StringLit) ScalarField() (string, any) { return "value", n.Value }

// Ident is an identifier reference.
type Ident struct {
	span span.Span
	Name string
}

// NewIdent constructs a fresh, unpooled identifier.
func NewIdent(sp span.Span, name string) *Ident {
	return &Ident{span: sp, Name: name}
}

func (n *Ident) Kind() Kind                    { return KindIdent }
func (n *Ident) Span() span.Span               { return n.span }
func (n *Ident) Children() []Node              { return emptyNodes }
func (n *Ident) Accept(v Visitor) (any, error) { return v.VisitIdent(n) }
func (n *Ident) TerminalNode()                 {}

func (n *Ident) Equals(o Node) bool {
	x, ok := Unwrap(o).(*Ident)
	if !ok {
		return false
	}
	return n.span == x.span && n.Name == x.Name
}

func (n *Ident) Clone() Node { return n }

// ScalarField exposes the name for generic renderers.
func (n *Ident) ScalarField() (string, any) { return "name", n.Name }

// Box places a shared leaf into a parent-linked tree. It forwards every
// kernel operation to the wrapped node unchanged, so boxed and unboxed
// placements of the same value are indistinguishable to consumers; the box
// itself carries the parent link the shared instance cannot.
type Box struct {
	parent Node
	X      Node
}

// Boxed wraps n.
func Boxed(n Node) *Box {
	return &Box{X: n}
}

// Unwrap strips a Box, returning the wrapped node. Non-boxed nodes are
// returned unchanged.
func Unwrap(n Node) Node {
	if b, ok := n.(*Box); ok {
		return b.X
	}
	return n
}

func (b *Box) Kind() Kind                    { return b.X.Kind() }
func (b *Box) Span() span.Span               { return b.X.Span() }
func (b *Box) Children() []Node              { return b.X.Children() }
func (b *Box) Accept(v Visitor) (any, error) { return b.X.Accept(v) }
func (b *Box) Parent() Node                  { return b.parent }
func (b *Box) SetParent(p Node)              { b.parent = p }

func (b *Box) Equals(o Node) bool {
	if o == nil {
		return false
	}
	return b.X.Equals(Unwrap(o))
}

func (b *Box) Clone() Node {
	return &Box{X: b.X.Clone()}
}

// ScalarField forwards the wrapped node's display field, if any.
func (b *Box) ScalarField() (string, any) {
	if s, ok := b.X.(Scalar); ok {
		return s.ScalarField()
	}
	return "", nil
}
