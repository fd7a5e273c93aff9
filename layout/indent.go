package layout

import "sort"

// Indent shifts fn's cost function left by k columns and records the
// shift as indentation metadata on the chosen layout rather than as a
// distinct tree shape (see the Tree doc comment). Evaluating the result
// at outer column c is evaluating fn at c+k.
func Indent(fn Function, k int) Function {
	cols := indentBreakpoints(fn, k)

	out := make(Function, 0, len(cols))
	for _, c := range cols {
		inner := c + k
		seg := fn.segmentAt(inner)

		shifted := *seg.Layout
		shifted.IndentationSpaces += k

		out = append(out, Segment{
			Column:    c,
			Layout:    &shifted,
			Span:      fn.SpanAt(inner),
			Intercept: fn.CostAt(inner),
			Gradient:  fn.GradientAt(inner),
		})
	}
	return out
}

// indentBreakpoints returns, in outer-column space, 0 plus every
// s.Column-k for fn's own segment boundaries s that land at a positive
// outer column.
func indentBreakpoints(fn Function, k int) []int {
	set := map[int]bool{0: true}
	for _, s := range fn {
		c := s.Column - k
		if c > 0 {
			set[c] = true
		}
	}
	cols := make([]int, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}
