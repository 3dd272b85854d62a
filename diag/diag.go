// Package diag defines severity-tagged findings with labeled source spans.
//
// A Diagnostic carries a message, one primary labeled span, any number of
// secondary labeled spans, plus optional notes and help text. Diagnostics
// are values built with chainable WithX methods:
//
//	d := diag.New(diag.Error, "cycle detected").
//		WithPrimary(sp, "node revisited here").
//		WithNote("trees must be acyclic")
//
// Diagnostics never fail anything by themselves; callers collect them in a
// List and decide policy. By convention only Error-severity findings should
// fail a build.
package diag

import (
	"github.com/arbor-ast/go-arbor/span"
)

// Severity captures how impactful a diagnostic is.
type Severity int

const (
	Error Severity = iota
	Warning
	Hint
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Hint:
		return "hint"
	case Info:
		return "info"
	}
	return "<unknown severity>"
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Severities returns all severities, most severe first.
func Severities() []Severity {
	return []Severity{Error, Warning, Hint, Info}
}

// Label attaches a message to a span. A diagnostic has at most one primary
// label; it marks where the finding is, secondary labels add context.
type Label struct {
	Span    span.Span
	Message string
	Primary bool
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Severity Severity
	Message  string
	Labels   []Label
	Notes    []string
	Help     string
}

// New starts a diagnostic with the given severity and message.
func New(severity Severity, message string) Diagnostic {
	return Diagnostic{Severity: severity, Message: message}
}

// WithPrimary adds the primary labeled span.
func (d Diagnostic) WithPrimary(sp span.Span, label string) Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Message: label, Primary: true})
	return d
}

// WithSecondary adds a secondary labeled span.
func (d Diagnostic) WithSecondary(sp span.Span, label string) Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Message: label})
	return d
}

// WithNote appends a note.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp sets the help text.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// Primary returns the primary label, if any.
func (d Diagnostic) Primary() (Label, bool) {
	for _, l := range d.Labels {
		if l.Primary {
			return l, true
		}
	}
	return Label{}, false
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// HasErrors reports whether l contains any Error-severity diagnostic.
func (l List) HasErrors() bool {
	for i := range l {
		if l[i].Severity == Error {
			return true
		}
	}
	return false
}

// Filter returns the diagnostics with the given severity, in order.
func (l List) Filter(s Severity) List {
	var res List
	for i := range l {
		if l[i].Severity == s {
			res = append(res, l[i])
		}
	}
	return res
}

// BySeverity groups l by severity, preserving order within each group.
func (l List) BySeverity() map[Severity]List {
	res := map[Severity]List{}
	for i := range l {
		res[l[i].Severity] = append(res[l[i].Severity], l[i])
	}
	return res
}
