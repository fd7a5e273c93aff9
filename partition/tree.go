package partition

import (
	"fmt"

	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/token"
)

// BreakDecision records whether a token's line-break placement is still
// open for the layout optimiser to decide, or already fixed by the
// unwrapper.
type BreakDecision int

const (
	Undecided BreakDecision = iota
	MustWrap
	MustAppend
	Preserve
)

func (b BreakDecision) String() string {
	switch b {
	case MustWrap:
		return "MustWrap"
	case MustAppend:
		return "MustAppend"
	case Preserve:
		return "Preserve"
	default:
		return "Undecided"
	}
}

// PreFormatToken annotates a token with the spacing and wrap metadata
// the layout optimiser needs but the tokenizer doesn't produce.
type PreFormatToken struct {
	Tok            token.Token
	SpacesRequired int
	Break          BreakDecision
}

// Policy selects which algebraic layout combinator a partition node is
// formatted with.
type Policy int

const (
	AlwaysExpand Policy = iota
	FitOnLineElseExpand
	OptimalLayout
	TabularAlignment
	Inline
	PreservePolicy
)

func (p Policy) String() string {
	switch p {
	case AlwaysExpand:
		return "AlwaysExpand"
	case FitOnLineElseExpand:
		return "FitOnLineElseExpand"
	case OptimalLayout:
		return "OptimalLayout"
	case TabularAlignment:
		return "TabularAlignment"
	case Inline:
		return "Inline"
	case PreservePolicy:
		return "Preserve"
	default:
		return "Unknown"
	}
}

// TokenRange is a half-open range of indices into a flat
// []PreFormatToken array shared by an entire file's partition tree.
type TokenRange struct {
	Begin int
	End   int
}

// Len reports the number of tokens the range covers.
func (r TokenRange) Len() int { return r.End - r.Begin }

// Union returns the smallest range covering both r and o.
func (r TokenRange) Union(o TokenRange) TokenRange {
	u := r
	if o.Begin < u.Begin {
		u.Begin = o.Begin
	}
	if o.End > u.End {
		u.End = o.End
	}
	return u
}

// UnwrappedLine is one candidate visual line: an indentation, the token
// range it spans, the policy governing how the optimiser may wrap it,
// and the CST symbol it was unwrapped from.
type UnwrappedLine struct {
	IndentationSpaces int
	Tokens            TokenRange
	PartitionPolicy   Policy
	Origin            cst.Symbol
}

// Tree is a node of the token-partition tree: either a leaf
// UnwrappedLine or an interior node whose children's token ranges
// concatenate to its own.
type Tree struct {
	Line     *UnwrappedLine // non-nil for a leaf
	Children []*Tree        // non-empty for an interior node
}

// NewLeaf returns a leaf Tree wrapping line.
func NewLeaf(line UnwrappedLine) *Tree {
	return &Tree{Line: &line}
}

// NewInterior returns an interior Tree over children, validating that
// the children's token ranges are contiguous and non-overlapping.
func NewInterior(children ...*Tree) (*Tree, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("partition: interior node requires at least one child")
	}
	prev := children[0].Range()
	for _, c := range children[1:] {
		r := c.Range()
		if r.Begin != prev.End {
			return nil, fmt.Errorf("partition: non-contiguous children: [%d,%d) then [%d,%d)",
				prev.Begin, prev.End, r.Begin, r.End)
		}
		prev = r
	}
	return &Tree{Children: children}, nil
}

// IsLeaf reports whether t wraps a single UnwrappedLine.
func (t *Tree) IsLeaf() bool { return t.Line != nil }

// Range returns the token range t spans: its own for a leaf, or the
// union of its children's for an interior node.
func (t *Tree) Range() TokenRange {
	if t.IsLeaf() {
		return t.Line.Tokens
	}
	r := t.Children[0].Range()
	for _, c := range t.Children[1:] {
		r = r.Union(c.Range())
	}
	return r
}

// Policy returns the governing partition policy: the leaf's own, or
// (by convention) the first child's for an interior node, since interior
// nodes don't carry a policy of their own in this model — they are
// combined according to whatever combinator the caller selects for them.
func (t *Tree) Policy() Policy {
	if t.IsLeaf() {
		return t.Line.PartitionPolicy
	}
	if len(t.Children) == 0 {
		return AlwaysExpand
	}
	return t.Children[0].Policy()
}

// Walk visits t and every descendant in preorder.
func (t *Tree) Walk(visit func(*Tree)) {
	visit(t)
	for _, c := range t.Children {
		c.Walk(visit)
	}
}
