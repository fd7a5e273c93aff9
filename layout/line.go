package layout

import "github.com/hdltools/svcore/partition"

// Line builds the LayoutFunction for a single concrete UnwrappedLine of
// rendered width span.
func Line(line partition.UnwrappedLine, span, spacesBefore int, brk partition.BreakDecision, style partition.FormatStyle) Function {
	tree := &Tree{
		Kind:         LineKind,
		Line:         &line,
		SpacesBefore: spacesBefore,
		Break:        brk,
	}
	overPenalty := style.OverColumnLimitPenalty
	gradient := int(overPenalty)

	if span < style.ColumnLimit {
		return Function{
			{Column: 0, Layout: tree, Span: span, Intercept: 0, Gradient: 0},
			{Column: style.ColumnLimit - span, Layout: tree, Span: span, Intercept: 0, Gradient: gradient},
		}
	}
	intercept := float32(span-style.ColumnLimit) * overPenalty
	return Function{
		{Column: 0, Layout: tree, Span: span, Intercept: intercept, Gradient: gradient},
	}
}
