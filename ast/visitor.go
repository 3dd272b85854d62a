package ast

import "fmt"

// Visitor computes a per-kind result over nodes. Node.Accept performs the
// double dispatch: it calls the VisitX method bound to the receiver's
// concrete kind. Errors returned by a visit method propagate to the Accept
// caller unchanged; nothing is suppressed.
//
// Kinds generated outside this package dispatch through their own
// single-method visitor interfaces and fall back to VisitOther when the
// visitor does not implement them.
type Visitor interface {
	VisitProgram(n *Program) (any, error)
	VisitLetDecl(n *LetDecl) (any, error)
	VisitBinaryExpr(n *BinaryExpr) (any, error)
	VisitUnaryExpr(n *UnaryExpr) (any, error)
	VisitCallExpr(n *CallExpr) (any, error)
	VisitIntLit(n *IntLit) (any, error)
	VisitFloatLit(n *FloatLit) (any, error)
	VisitBoolLit(n *BoolLit) (any, error)
	VisitStringLit(n *StringLit) (any, error)
	VisitIdent(n *Ident) (any, error)
	VisitBadExpr(n *BadExpr) (any, error)

	// VisitOther handles kinds the visitor has no method for, such as
	// kinds registered by generated packages.
	VisitOther(n Node) (any, error)
}

// Accept dispatches n to v and asserts the result to T. A result of the
// wrong dynamic type is a programmer error and is reported, not coerced.
func Accept[T any](n Node, v Visitor) (T, error) {
	var zero T
	res, err := n.Accept(v)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	out, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("ast: visitor returned %T for %s node, want %T", res, n.Kind(), zero)
	}
	return out, nil
}
