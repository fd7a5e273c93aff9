package layout

import (
	"fmt"
	"sort"
)

// Segment is one piece of a LayoutFunction: the cost over starting
// columns in [Column, next segment's Column) is the affine function
// Intercept + Gradient*(x-Column).
type Segment struct {
	Column    int
	Layout    *Tree
	Span      int
	Intercept float32
	Gradient  int
}

// Function is a non-empty, strictly column-ordered sequence of
// Segments forming a piecewise-linear, continuous, monotonically
// non-decreasing function of starting column. Segments[0].Column is always 0: a starting column is never
// negative.
type Function []Segment

// sentinel stands in for "no upper bound" when reasoning about the
// last segment's valid interval.
const sentinel = 1 << 30

// segmentAt returns the segment whose interval contains column c: the
// last segment whose Column is <= c.
func (f Function) segmentAt(c int) Segment {
	i := sort.Search(len(f), func(i int) bool { return f[i].Column > c })
	if i == 0 {
		return f[0]
	}
	return f[i-1]
}

// AtOrToTheLeftOf returns the segment whose interval contains c.
func (f Function) AtOrToTheLeftOf(c int) Segment { return f.segmentAt(c) }

// CostAt evaluates f's cost at starting column c.
func (f Function) CostAt(c int) float32 {
	s := f.segmentAt(c)
	return s.Intercept + float32(s.Gradient)*float32(c-s.Column)
}

// GradientAt returns f's slope at starting column c.
func (f Function) GradientAt(c int) int { return f.segmentAt(c).Gradient }

// SpanAt returns the span of the layout active at starting column c.
func (f Function) SpanAt(c int) int { return f.segmentAt(c).Span }

// Validate checks the structural invariants every LayoutFunction must
// satisfy.
func (f Function) Validate() error {
	if len(f) == 0 {
		return fmt.Errorf("layout: function has no segments")
	}
	if f[0].Column != 0 {
		return fmt.Errorf("layout: first segment must start at column 0, got %d", f[0].Column)
	}
	for i := 1; i < len(f); i++ {
		if f[i].Column <= f[i-1].Column {
			return fmt.Errorf("layout: segments must be strictly increasing in column")
		}
	}
	return nil
}

// knots returns the sorted, deduplicated union of every Column boundary
// across fns, always including 0.
func knots(fns []Function) []int {
	set := map[int]bool{0: true}
	for _, f := range fns {
		for _, s := range f {
			set[s.Column] = true
		}
	}
	cols := make([]int, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}
