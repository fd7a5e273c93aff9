package cst

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/hdltools/svcore/token"
)

func leaf(kind token.Kind, begin, end int) *Leaf {
	return NewLeaf(token.Token{Kind: kind, Span: token.Span{Begin: begin, End: end}})
}

func TestNodeChildAbsentSlotsStableIndices(t *testing.T) {
	n := NewNode(1, leaf(token.Identifier, 0, 1), nil, leaf(token.Identifier, 2, 3))
	qt.Assert(t, qt.Equals(n.Arity(), 3))
	qt.Assert(t, qt.IsNil(n.Child(1)))
	qt.Assert(t, qt.Equals(n.Child(2).(*Leaf).Tok.Span.Begin, 2))
}

func TestSymbolTagEquality(t *testing.T) {
	a := leaf(token.Identifier, 0, 1)
	b := leaf(token.Identifier, 5, 6)
	qt.Assert(t, qt.Equals(a.Tag(), b.Tag()))

	n1 := NewNode(NodeTag(5))
	n2 := NewNode(NodeTag(5))
	qt.Assert(t, qt.Equals(n1.Tag(), n2.Tag()))
	qt.Assert(t, qt.Not(qt.Equals(n1.Tag(), a.Tag())))
}

func TestIsErrorRecovery(t *testing.T) {
	good := leaf(token.Identifier, 0, 1)
	bad := leaf(token.ErrorRecovery, 0, 1)
	qt.Assert(t, qt.IsFalse(IsErrorRecovery(good)))
	qt.Assert(t, qt.IsTrue(IsErrorRecovery(bad)))
}
