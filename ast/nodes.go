package ast

import (
	"github.com/arbor-ast/go-arbor/span"
)

// Op names an operator of a BinaryExpr or UnaryExpr.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpNeg Op = "neg"
	OpNot Op = "not"
)

// Program is the root of a parsed unit: an ordered sequence of declarations
// and expressions.
type Program struct {
	base
	Body []Node
}

// NewProgram constructs a program node and adopts its body.
func NewProgram(sp span.Span, body []Node) *Program {
	n := &Program{base: base{span: sp}, Body: body}
	adopt(n, body...)
	return n
}

func (n *Program) Kind() Kind { return KindProgram }

func (n *Program) Children() []Node {
	kids := make([]Node, len(n.Body))
	copy(kids, n.Body)
	return kids
}

func (n *Program) Accept(v Visitor) (any, error) { return v.VisitProgram(n) }

func (n *Program) Equals(o Node) bool {
	x, ok := Unwrap(o).(*Program)
	if !ok {
		return false
	}
	return n.span == x.span && nodesEq(n.Body, x.Body)
}

func (n *Program) Clone() Node {
	return NewProgram(n.span, cloneNodes(n.Body))
}

// LetDecl binds a name to a value, with an optional type annotation.
type LetDecl struct {
	base
	Name  Node // Ident
	Type  Node // optional
	Value Node
}

// NewLetDecl constructs a let declaration. typ may be nil.
func NewLetDecl(sp span.Span, name, typ, value Node) *LetDecl {
	n := &LetDecl{base: base{span: sp}, Name: name, Type: typ, Value: value}
	adopt(n, name, typ, value)
	return n
}

func (n *LetDecl) Kind() Kind { return KindLetDecl }

func (n *LetDecl) Children() []Node {
	kids := make([]Node, 0, 3)
	if n.Name != nil {
		kids = append(kids, n.Name)
	}
	if n.Type != nil {
		kids = append(kids, n.Type)
	}
	if n.Value != nil {
		kids = append(kids, n.Value)
	}
	return kids
}

func (n *LetDecl) Accept(v Visitor) (any, error) { return v.VisitLetDecl(n) }

func (n *LetDecl) Equals(o Node) bool {
	x, ok := Unwrap(o).(*LetDecl)
	if !ok {
		return false
	}
	return n.span == x.span &&
		nodeEq(n.Name, x.Name) &&
		nodeEq(n.Type, x.Type) &&
		nodeEq(n.Value, x.Value)
}

func (n *LetDecl) Clone() Node {
	return NewLetDecl(n.span, cloneNode(n.Name), cloneNode(n.Type), cloneNode(n.Value))
}

// BinaryExpr applies an operator to two operands.
type BinaryExpr struct {
	base
	Op    Op
	Left  Node
	Right Node
}

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(sp span.Span, op Op, left, right Node) *BinaryExpr {
	n := &BinaryExpr{base: base{span: sp}, Op: op, Left: left, Right: right}
	adopt(n, left, right)
	return n
}

func (n *BinaryExpr) Kind() Kind { return KindBinaryExpr }

func (n *BinaryExpr) Children() []Node {
	kids := make([]Node, 0, 2)
	if n.Left != nil {
		kids = append(kids, n.Left)
	}
	if n.Right != nil {
		kids = append(kids, n.Right)
	}
	return kids
}

func (n *BinaryExpr) Accept(v Visitor) (any, error) { return v.VisitBinaryExpr(n) }

func (n *BinaryExpr) Equals(o Node) bool {
	x, ok := Unwrap(o).(*BinaryExpr)
	if !ok {
		return false
	}
	return n.span == x.span && n.Op == x.Op &&
		nodeEq(n.Left, x.Left) && nodeEq(n.Right, x.Right)
}

func (n *BinaryExpr) Clone() Node {
	return NewBinaryExpr(n.span, n.Op, cloneNode(n.Left), cloneNode(n.Right))
}

// ScalarField exposes the operator for generic renderers.
func (n *BinaryExpr) ScalarField() (string, any) { return "op", string(n.Op) }

// UnaryExpr applies an operator to a single operand.
type UnaryExpr struct {
	base
	Op      Op
	Operand Node
}

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(sp span.Span, op Op, operand Node) *UnaryExpr {
	n := &UnaryExpr{base: base{span: sp}, Op: op, Operand: operand}
	adopt(n, operand)
	return n
}

func (n *UnaryExpr) Kind() Kind { return KindUnaryExpr }

func (n *UnaryExpr) Children() []Node {
	if n.Operand == nil {
		return emptyNodes
	}
	return []Node{n.Operand}
}

func (n *UnaryExpr) Accept(v Visitor) (any, error) { return v.VisitUnaryExpr(n) }

func (n *UnaryExpr) Equals(o Node) bool {
	x, ok := Unwrap(o).(*UnaryExpr)
	if !ok {
		return false
	}
	return n.span == x.span && n.Op == x.Op && nodeEq(n.Operand, x.Operand)
}

func (n *UnaryExpr) Clone() Node {
	return NewUnaryExpr(n.span, n.Op, cloneNode(n.Operand))
}

// ScalarField exposes the operator for generic renderers.
func (n *UnaryExpr) ScalarField() (string, any) { return "op", string(n.Op) }

// CallExpr applies a callee to an argument sequence.
type CallExpr struct {
	base
	Callee Node
	Args   []Node
}

// NewCallExpr constructs a call expression node.
func NewCallExpr(sp span.Span, callee Node, args []Node) *CallExpr {
	n := &CallExpr{base: base{span: sp}, Callee: callee, Args: args}
	adopt(n, callee)
	adopt(n, args...)
	return n
}

func (n *CallExpr) Kind() Kind { return KindCallExpr }

func (n *CallExpr) Children() []Node {
	kids := make([]Node, 0, len(n.Args)+1)
	if n.Callee != nil {
		kids = append(kids, n.Callee)
	}
	kids = append(kids, n.Args...)
	return kids
}

func (n *CallExpr) Accept(v Visitor) (any, error) { return v.VisitCallExpr(n) }

func (n *CallExpr) Equals(o Node) bool {
	x, ok := Unwrap(o).(*CallExpr)
	if !ok {
		return false
	}
	return n.span == x.span && nodeEq(n.Callee, x.Callee) && nodesEq(n.Args, x.Args)
}

func (n *CallExpr) Clone() Node {
	return NewCallExpr(n.span, cloneNode(n.Callee), cloneNodes(n.Args))
}

// FloatLit is a floating point literal. All fields are primitive, so it is
// a Terminal kind with constant-time depth, count and search.
type FloatLit struct {
	base
	Value float64
}

// NewFloatLit constructs a float literal node.
func NewFloatLit(sp span.Span, v float64) *FloatLit {
	return &FloatLit{base: base{span: sp}, Value: v}
}

func (n *FloatLit) Kind() Kind                    { return KindFloatLit }
func (n *FloatLit) Children() []Node              { return emptyNodes }
func (n *FloatLit) Accept(v Visitor) (any, error) { return v.VisitFloatLit(n) }
func (n *FloatLit) TerminalNode()                 {}

func (n *FloatLit) Equals(o Node) bool {
	x, ok := Unwrap(o).(*FloatLit)
	if !ok {
		return false
	}
	return n.span == x.span && n.Value == x.Value
}

func (n *FloatLit) Clone() Node {
	c := *n
	c.parent = nil
	return &c
}

// ScalarField exposes the literal value for generic renderers.
func (n *FloatLit) ScalarField() (string, any) { return "value", n.Value }

// BadExpr is a placeholder for source the constructing pass could not make
// sense of. Terminal, like FloatLit.
type BadExpr struct {
	base
	Reason string
}

// NewBadExpr constructs a placeholder node.
func NewBadExpr(sp span.Span, reason string) *BadExpr {
	return &BadExpr{base: base{span: sp}, Reason: reason}
}

func (n *BadExpr) Kind() Kind                    { return KindBadExpr }
func (n *BadExpr) Children() []Node              { return emptyNodes }
func (n *BadExpr) Accept(v Visitor) (any, error) { return v.VisitBadExpr(n) }
func (n *BadExpr) TerminalNode()                 {}

func (n *BadExpr) Equals(o Node) bool {
	x, ok := Unwrap(o).(*BadExpr)
	if !ok {
		return false
	}
	return n.span == x.span && n.Reason == x.Reason
}

func (n *BadExpr) Clone() Node {
	c := *n
	c.parent = nil
	return &c
}

// ScalarField exposes the reason for generic renderers.
func (n *BadExpr) ScalarField() (string, any) { return "reason", n.Reason }
