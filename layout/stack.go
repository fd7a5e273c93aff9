package layout

import "github.com/hdltools/svcore/partition"

// Stack vertically concatenates fns, each child starting a new output
// line. It preserves the first child's
// SpacesBefore/Break decision on the merged tree, and its span at any
// column is the span of the last child at that column (only the last
// line is available for further horizontal composition).
func Stack(fns []Function, style partition.FormatStyle) Function {
	if len(fns) == 0 {
		panic("layout: Stack requires at least one function")
	}
	if len(fns) == 1 {
		return fns[0]
	}
	k := len(fns)
	lbp := style.LineBreakPenalty

	cols := knots(fns)
	out := make(Function, 0, len(cols))
	for _, c := range cols {
		var intercept float32
		var gradient int
		trees := make([]*Tree, k)
		for i, f := range fns {
			intercept += f.CostAt(c)
			gradient += f.GradientAt(c)
			trees[i] = f.segmentAt(c).Layout
		}
		intercept += float32(k-1) * lbp

		merged := &Tree{
			Kind:         StackKind,
			Children:     flattenChildren(StackKind, trees),
			SpacesBefore: trees[0].SpacesBefore,
			Break:        trees[0].Break,
		}
		out = append(out, Segment{
			Column:    c,
			Layout:    merged,
			Span:      fns[k-1].SpanAt(c),
			Intercept: intercept,
			Gradient:  gradient,
		})
	}
	return out
}
