// Package span defines the source-location value attached to tree nodes.
//
// A Span is a half-open byte range [Start, End) within a single source,
// identified by a SourceID handed out by whatever source-map component
// loaded the input. Spans are plain values: they are compared with ==,
// copied freely, and never shared.
package span

import "fmt"

// SourceID identifies a loaded source. The zero value means "no source".
type SourceID uint32

// Span is a byte range within one source.
type Span struct {
	Source SourceID
	Start  int
	End    int
}

// New returns the span [start, end) in the given source.
func New(source SourceID, start, end int) Span {
	return Span{Source: source, Start: start, End: end}
}

// IsZero reports whether s carries no location information.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the byte offset off falls inside s.
func (s Span) Contains(off int) bool {
	return off >= s.Start && off < s.End
}

// Union returns the smallest span covering both s and o. Zero spans are
// ignored; spans from different sources do not combine and s wins.
func (s Span) Union(o Span) Span {
	if s.IsZero() {
		return o
	}
	if o.IsZero() || o.Source != s.Source {
		return s
	}
	res := s
	if o.Start < res.Start {
		res.Start = o.Start
	}
	if o.End > res.End {
		res.End = o.End
	}
	return res
}

func (s Span) String() string {
	if s.IsZero() {
		return "-"
	}
	if s.Source == 0 {
		return fmt.Sprintf("%d..%d", s.Start, s.End)
	}
	return fmt.Sprintf("%d:%d..%d", s.Source, s.Start, s.End)
}
