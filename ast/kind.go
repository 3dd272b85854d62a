package ast

import "fmt"

// Kind identifies a concrete node kind at runtime. Kinds are allocated with
// NewKind, normally from package-level var blocks; registration is not
// synchronized and must happen at init time.
type Kind int

var kindNames = []string{"Invalid"}

// NewKind registers a node kind under the given name and returns its Kind.
// Registering an empty or duplicate name is a programmer error and panics.
func NewKind(name string) Kind {
	if name == "" {
		panic("ast: NewKind with empty name")
	}
	for _, n := range kindNames {
		if n == name {
			panic(fmt.Sprintf("ast: kind %q registered twice", name))
		}
	}
	kindNames = append(kindNames, name)
	return Kind(len(kindNames) - 1)
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "<unknown kind>"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Kinds returns every registered kind, in registration order.
func Kinds() []Kind {
	res := make([]Kind, 0, len(kindNames)-1)
	for i := 1; i < len(kindNames); i++ {
		res = append(res, Kind(i))
	}
	return res
}

// Node kinds of the arbor expression grammar.
var (
	KindProgram    = NewKind("Program")
	KindLetDecl    = NewKind("LetDecl")
	KindBinaryExpr = NewKind("BinaryExpr")
	KindUnaryExpr  = NewKind("UnaryExpr")
	KindCallExpr   = NewKind("CallExpr")
	KindIntLit     = NewKind("IntLit")
	KindFloatLit   = NewKind("FloatLit")
	KindBoolLit    = NewKind("BoolLit")
	KindStringLit  = NewKind("StringLit")
	KindIdent      = NewKind("Ident")
	KindBadExpr    = NewKind("BadExpr")
)
