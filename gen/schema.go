// Package gen turns declarative node-kind schemas into Go source.
//
// A schema is a YAML document naming a target package and its node kinds:
//
//	package: toylang
//	kinds:
//	  - name: Pair
//	    fields:
//	      - {name: First, node: true}
//	      - {name: Second, node: true}
//	  - name: Atom
//	    strategy: leaf
//	    fields:
//	      - {name: Text, type: string}
//
// Generate emits one Go file implementing every kind against the ast
// kernel: kind registration, struct, constructor, children view, visitor
// dispatch (with a per-kind visitor interface and a VisitOther fallback),
// equality and cloning. Schema errors are generation-time and fatal; the
// emitted code has no runtime schema machinery.
//
// Pooled literal kinds are not generated: pooling is keyed by the four
// fixed value categories the ast.Pool serves, so pooled kinds ship with the
// ast package itself.
package gen

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
)

// ErrBadSchema tags every schema validation failure.
var ErrBadSchema = errors.New("gen: bad schema")

// Schema is a declarative description of a node-kind family.
type Schema struct {
	Package string      `yaml:"package"`
	Kinds   []*KindSpec `yaml:"kinds"`
}

// KindSpec declares one node kind.
type KindSpec struct {
	Name     string       `yaml:"name"`
	Strategy string       `yaml:"strategy"` // "standard" (default) or "leaf"
	Doc      string       `yaml:"doc"`
	Fields   []*FieldSpec `yaml:"fields"`
}

// FieldSpec declares one field. Primitive fields carry a Go type; node
// fields set Node (plus List or Optional) and carry no type.
type FieldSpec struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Node     bool   `yaml:"node"`
	List     bool   `yaml:"list"`
	Optional bool   `yaml:"optional"`
}

// reserved field names collide with the kernel plumbing of generated kinds.
var reservedFields = map[string]bool{
	"span":   true,
	"parent": true,
	"kind":   true,
}

var primitiveTypes = map[string]bool{
	"bool":    true,
	"string":  true,
	"int":     true,
	"int32":   true,
	"int64":   true,
	"uint32":  true,
	"uint64":  true,
	"float32": true,
	"float64": true,
	"rune":    true,
	"byte":    true,
}

// Load reads and validates a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates schema YAML.
func Parse(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSchema, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) validate() error {
	if !isIdent(s.Package) || exported(s.Package) {
		return fmt.Errorf("%w: invalid package name %q", ErrBadSchema, s.Package)
	}
	if len(s.Kinds) == 0 {
		return fmt.Errorf("%w: schema declares no kinds", ErrBadSchema)
	}
	seen := map[string]bool{}
	for _, k := range s.Kinds {
		if err := k.validate(); err != nil {
			return err
		}
		if seen[k.Name] {
			return fmt.Errorf("%w: kind %q declared twice", ErrBadSchema, k.Name)
		}
		seen[k.Name] = true
	}
	return nil
}

func (k *KindSpec) validate() error {
	if !isIdent(k.Name) || !exported(k.Name) {
		return fmt.Errorf("%w: kind name %q is not an exported identifier", ErrBadSchema, k.Name)
	}
	switch k.Strategy {
	case "", "standard", "leaf":
	default:
		return fmt.Errorf("%w: kind %q: unknown strategy %q", ErrBadSchema, k.Name, k.Strategy)
	}
	seen := map[string]bool{}
	for _, f := range k.Fields {
		if err := f.validate(k); err != nil {
			return err
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: kind %q: field %q declared twice", ErrBadSchema, k.Name, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

func (f *FieldSpec) validate(k *KindSpec) error {
	if !isIdent(f.Name) || !exported(f.Name) {
		return fmt.Errorf("%w: kind %q: field name %q is not an exported identifier", ErrBadSchema, k.Name, f.Name)
	}
	if reservedFields[strings.ToLower(f.Name)] {
		return fmt.Errorf("%w: kind %q: field name %q is reserved", ErrBadSchema, k.Name, f.Name)
	}
	if f.Node {
		if f.Type != "" {
			return fmt.Errorf("%w: kind %q: node field %q takes no type", ErrBadSchema, k.Name, f.Name)
		}
		if f.List && f.Optional {
			return fmt.Errorf("%w: kind %q: field %q cannot be both list and optional", ErrBadSchema, k.Name, f.Name)
		}
		if k.Strategy == "leaf" {
			return fmt.Errorf("%w: kind %q: leaf kinds cannot have node field %q", ErrBadSchema, k.Name, f.Name)
		}
		return nil
	}
	if f.List || f.Optional {
		return fmt.Errorf("%w: kind %q: field %q: list and optional apply to node fields only", ErrBadSchema, k.Name, f.Name)
	}
	if !primitiveTypes[f.Type] {
		return fmt.Errorf("%w: kind %q: field %q has unsupported type %q", ErrBadSchema, k.Name, f.Name, f.Type)
	}
	return nil
}

// IsLeafOnly reports whether every field of k is primitive.
func (k *KindSpec) IsLeafOnly() bool {
	if k.Strategy == "leaf" {
		return true
	}
	for _, f := range k.Fields {
		if f.Node {
			return false
		}
	}
	return false
}

// NodeFields returns the node-typed fields in declared order.
func (k *KindSpec) NodeFields() []*FieldSpec {
	var res []*FieldSpec
	for _, f := range k.Fields {
		if f.Node {
			res = append(res, f)
		}
	}
	return res
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func exported(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
