package ast

import "fmt"

// A transformer is a Visitor whose results are nodes. Identity supplies the
// default behavior of returning every node unchanged; concrete transformers
// embed it and override only the kinds they rewrite, calling Rewrite on the
// children they want transformed and reconstructing nodes with the results.
//
//	type fold struct{ ast.Identity }
//
//	func (f *fold) VisitBinaryExpr(n *ast.BinaryExpr) (any, error) {
//		left, err := ast.Rewrite(f, n.Left)
//		...
//		return ast.NewBinaryExpr(n.Span(), n.Op, left, right), nil
//	}
type Identity struct{}

func (Identity) VisitProgram(n *Program) (any, error)       { return n, nil }
func (Identity) VisitLetDecl(n *LetDecl) (any, error)       { return n, nil }
func (Identity) VisitBinaryExpr(n *BinaryExpr) (any, error) { return n, nil }
func (Identity) VisitUnaryExpr(n *UnaryExpr) (any, error)   { return n, nil }
func (Identity) VisitCallExpr(n *CallExpr) (any, error)     { return n, nil }
func (Identity) VisitIntLit(n *IntLit) (any, error)         { return n, nil }
func (Identity) VisitFloatLit(n *FloatLit) (any, error)     { return n, nil }
func (Identity) VisitBoolLit(n *BoolLit) (any, error)       { return n, nil }
func (Identity) VisitStringLit(n *StringLit) (any, error)   { return n, nil }
func (Identity) VisitIdent(n *Ident) (any, error)           { return n, nil }
func (Identity) VisitBadExpr(n *BadExpr) (any, error)       { return n, nil }
func (Identity) VisitOther(n Node) (any, error)             { return n, nil }

// Rewrite dispatches n to a transforming visitor and asserts the result to
// Node. Transformers replace rather than mutate: a rewritten tree is built
// from fresh nodes, the input is left untouched.
func Rewrite(v Visitor, n Node) (Node, error) {
	res, err := n.Accept(v)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	out, ok := res.(Node)
	if !ok {
		return nil, fmt.Errorf("ast: transformer returned %T for %s node, want Node", res, n.Kind())
	}
	return out, nil
}
