package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Formatter renders diagnostics as human-readable text. Severity headers are
// colored when Color is set; NewFormatter enables color only when writing to
// a terminal.
type Formatter struct {
	Out   io.Writer
	Color bool
}

// NewFormatter returns a formatter writing to w, with color enabled when w
// is a terminal.
func NewFormatter(w io.Writer) *Formatter {
	f := &Formatter{Out: w}
	if file, ok := w.(*os.File); ok {
		f.Color = isatty.IsTerminal(file.Fd())
	}
	return f
}

var severityColors = map[Severity]func(format string, a ...any) string{
	Error:   color.RedString,
	Warning: color.YellowString,
	Hint:    color.CyanString,
	Info:    color.BlueString,
}

func (f *Formatter) paint(s Severity, text string) string {
	if !f.Color {
		return text
	}
	cf, ok := severityColors[s]
	if !ok {
		return text
	}
	return cf("%s", text)
}

// Write renders one diagnostic.
func (f *Formatter) Write(d Diagnostic) error {
	_, err := io.WriteString(f.Out, f.Format(d))
	return err
}

// WriteList renders every diagnostic in l, most severe first.
func (f *Formatter) WriteList(l List) error {
	for _, s := range Severities() {
		for _, d := range l.Filter(s) {
			if err := f.Write(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// Format renders one diagnostic to a string.
func (f *Formatter) Format(d Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", f.paint(d.Severity, d.Severity.String()), d.Message)
	for _, l := range d.Labels {
		marker := "-"
		if l.Primary {
			marker = "-->"
		}
		if l.Message == "" {
			fmt.Fprintf(&b, "  %s %s\n", marker, l.Span)
			continue
		}
		fmt.Fprintf(&b, "  %s %s: %s\n", marker, l.Span, l.Message)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(&b, "  note: %s\n", n)
	}
	if d.Help != "" {
		fmt.Fprintf(&b, "  help: %s\n", d.Help)
	}
	return b.String()
}
