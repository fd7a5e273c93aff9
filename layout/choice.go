package layout

import "math"

// Choice builds the pointwise minimum of fns: at every starting column, its cost is min_i
// fns[i].CostAt(c). Candidate functions are piecewise-linear, so the
// envelope changes winner only where two pieces' values cross.
func Choice(fns []Function) Function {
	if len(fns) == 0 {
		panic("layout: Choice requires at least one function")
	}
	if len(fns) == 1 {
		return fns[0]
	}

	outer := knots(fns)
	out := make(Function, 0, len(outer))

	for oi, lo := range outer {
		hi := sentinel
		if oi+1 < len(outer) {
			hi = outer[oi+1]
		}
		cur := lo
		for cur < hi {
			winnerIdx := argminAt(fns, cur)
			winner := fns[winnerIdx]
			wSeg := winner.segmentAt(cur)

			next := hi
			for i, f := range fns {
				if i == winnerIdx {
					continue
				}
				if cand := crossoverAfter(winner, f, cur); cand > cur && cand < next {
					next = cand
				}
			}

			out = append(out, Segment{
				Column:    cur,
				Layout:    wSeg.Layout,
				Span:      wSeg.Span,
				Intercept: winner.CostAt(cur),
				Gradient:  winner.GradientAt(cur),
			})
			cur = next
		}
	}
	return compactChoice(out)
}

// argminAt returns the index of the function with the lowest cost at
// c, breaking ties by lower gradient (prefer the branch that stays
// cheaper as the column grows) then by lowest index.
func argminAt(fns []Function, c int) int {
	best := 0
	bestCost := fns[0].CostAt(c)
	bestGrad := fns[0].GradientAt(c)
	for i := 1; i < len(fns); i++ {
		cost := fns[i].CostAt(c)
		grad := fns[i].GradientAt(c)
		if cost < bestCost || (cost == bestCost && grad < bestGrad) {
			best, bestCost, bestGrad = i, cost, grad
		}
	}
	return best
}

// crossoverAfter returns the smallest column strictly greater than cur
// at which other's cost no longer exceeds winner's, or sentinel if
// their gradients mean that never happens within this outer interval.
func crossoverAfter(winner, other Function, cur int) int {
	aw := winner.CostAt(cur)
	ai := other.CostAt(cur)
	gw := winner.GradientAt(cur)
	gi := other.GradientAt(cur)
	if gw == gi {
		return sentinel
	}
	// aw + gw*x == ai + gi*x  =>  x == (ai-aw)/(gw-gi), counted from cur.
	d := (ai - aw) / float32(gw-gi)
	if d <= 0 {
		return sentinel
	}
	return cur + int(math.Ceil(float64(d)))
}

// compactChoice merges adjacent segments that ended up pointing at the
// same layout with the same gradient, which the per-outer-interval
// sweep can otherwise emit redundantly at shared knot boundaries.
func compactChoice(f Function) Function {
	if len(f) == 0 {
		return f
	}
	out := Function{f[0]}
	for _, s := range f[1:] {
		last := out[len(out)-1]
		if s.Layout == last.Layout && s.Gradient == last.Gradient && s.Span == last.Span {
			continue
		}
		out = append(out, s)
	}
	return out
}
