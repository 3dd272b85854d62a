package diag

import (
	"strings"
	"testing"

	"github.com/arbor-ast/go-arbor/span"
)

func TestBuilderChaining(t *testing.T) {
	sp := span.New(1, 3, 7)
	other := span.New(1, 10, 12)
	d := New(Error, "something went wrong").
		WithPrimary(sp, "here").
		WithSecondary(other, "related").
		WithNote("a note").
		WithHelp("try again")

	if d.Severity != Error || d.Message != "something went wrong" {
		t.Fatalf("unexpected head: %+v", d)
	}
	if len(d.Labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(d.Labels))
	}
	p, ok := d.Primary()
	if !ok || p.Span != sp || p.Message != "here" {
		t.Errorf("Primary() = %+v, %v", p, ok)
	}
	if !d.Labels[0].Primary || d.Labels[1].Primary {
		t.Error("label primary flags wrong")
	}
	if len(d.Notes) != 1 || d.Help != "try again" {
		t.Errorf("notes/help wrong: %+v", d)
	}
}

func TestBuilderDoesNotMutateOriginal(t *testing.T) {
	d := New(Warning, "w")
	_ = d.WithNote("added")
	if len(d.Notes) != 0 {
		t.Error("WithNote mutated the receiver")
	}
}

func TestListGrouping(t *testing.T) {
	l := List{
		New(Error, "e1"),
		New(Warning, "w1"),
		New(Error, "e2"),
		New(Info, "i1"),
	}
	if !l.HasErrors() {
		t.Error("HasErrors() = false")
	}
	groups := l.BySeverity()
	if len(groups[Error]) != 2 || len(groups[Warning]) != 1 || len(groups[Info]) != 1 {
		t.Errorf("BySeverity sizes wrong: %v", groups)
	}
	if got := l.Filter(Error); len(got) != 2 || got[0].Message != "e1" || got[1].Message != "e2" {
		t.Errorf("Filter(Error) = %v", got)
	}
	if (List{New(Hint, "h")}).HasErrors() {
		t.Error("hint-only list reports errors")
	}
}

func TestSeverityString(t *testing.T) {
	for s, want := range map[Severity]string{
		Error: "error", Warning: "warning", Hint: "hint", Info: "info",
	} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}

func TestFormatterPlain(t *testing.T) {
	f := &Formatter{Out: &strings.Builder{}}
	d := New(Error, "cycle detected").
		WithPrimary(span.New(1, 3, 7), "node revisited here").
		WithSecondary(span.New(1, 0, 2), "via this node").
		WithNote("trees must be acyclic").
		WithHelp("rebuild the shared region")
	out := f.Format(d)

	for _, want := range []string{
		"error: cycle detected",
		"--> 1:3..7: node revisited here",
		"- 1:0..2: via this node",
		"note: trees must be acyclic",
		"help: rebuild the shared region",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color escapes present with Color disabled")
	}
}

func TestWriteListOrdersBySeverity(t *testing.T) {
	var sb strings.Builder
	f := &Formatter{Out: &sb}
	l := List{New(Info, "last"), New(Error, "first"), New(Warning, "middle")}
	if err := f.WriteList(l); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	ei := strings.Index(out, "first")
	wi := strings.Index(out, "middle")
	ii := strings.Index(out, "last")
	if !(ei < wi && wi < ii) {
		t.Errorf("severity ordering wrong:\n%s", out)
	}
}
