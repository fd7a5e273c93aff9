package layout

import (
	"sort"

	"github.com/hdltools/svcore/partition"
)

// Juxtapose places right immediately after left on the same output
// line, separated by spacesBefore spaces.
// The right layout's effective starting column, given left starts at
// c_l, is c_l + left.SpanAt(c_l) + spacesBefore.
func Juxtapose(left, right Function, spacesBefore int, style partition.FormatStyle) Function {
	overPenalty := style.OverColumnLimitPenalty
	overGradient := int(overPenalty)
	limit := style.ColumnLimit

	breakpoints := juxtaposeBreakpoints(left, right, spacesBefore, limit)

	out := make(Function, 0, len(breakpoints))
	for _, cl := range breakpoints {
		leftSeg := left.segmentAt(cl)
		cr := cl + leftSeg.Span + spacesBefore
		rightSeg := right.segmentAt(cr)

		span := leftSeg.Span + spacesBefore + rightSeg.Span
		intercept := left.CostAt(cl) + right.CostAt(cr)
		gradient := left.GradientAt(cl) + right.GradientAt(cr)

		// An instance of right starting past the column limit incurs
		// an overflow penalty counted once per unit of overhang; since
		// right.CostAt already folds in its own internal overflow, the
		// only correction needed here is for the juxtaposition point
		// itself crossing the limit.
		if cr >= limit {
			intercept -= overPenalty * float32(max(0, cr-limit))
			gradient -= overGradient
		}

		merged := &Tree{
			Kind:         JuxtapositionKind,
			Children:     flattenChildren(JuxtapositionKind, []*Tree{leftSeg.Layout, rightSeg.Layout}),
			SpacesBefore: leftSeg.Layout.SpacesBefore,
			Break:        leftSeg.Layout.Break,
		}
		out = append(out, Segment{
			Column:    cl,
			Layout:    merged,
			Span:      span,
			Intercept: intercept,
			Gradient:  gradient,
		})
	}
	return out
}

// juxtaposeBreakpoints computes, in left-starting-column space, every
// column at which the merged function's affine piece can change: every
// column where left itself breaks, plus every column where mapping
// right's own breakpoints back through the constant-span interval of
// the active left segment lands inside that interval, plus the column
// inside that interval at which right's start reaches limit (where
// Juxtapose's overflow correction sets in).
func juxtaposeBreakpoints(left, right Function, spacesBefore, limit int) []int {
	set := map[int]bool{0: true}
	for _, ls := range left {
		set[ls.Column] = true
	}
	for i, ls := range left {
		lo := ls.Column
		hi := sentinel
		if i+1 < len(left) {
			hi = left[i+1].Column
		}
		for _, rs := range right {
			cl := rs.Column - ls.Span - spacesBefore
			if cl >= lo && cl < hi {
				set[cl] = true
			}
		}
		if cl := limit - ls.Span - spacesBefore; cl >= lo && cl < hi {
			set[cl] = true
		}
	}
	cols := make([]int, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}

// JuxtaposeAll left-folds Juxtapose across fns, pairing fns[i] with the
// accumulator using spacesBefore[i] (spacesBefore[0] is unused).
func JuxtaposeAll(fns []Function, spacesBefore []int, style partition.FormatStyle) Function {
	if len(fns) == 0 {
		panic("layout: JuxtaposeAll requires at least one function")
	}
	acc := fns[0]
	for i := 1; i < len(fns); i++ {
		acc = Juxtapose(acc, fns[i], spacesBefore[i], style)
	}
	return acc
}
