package token

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNoPos(t *testing.T) {
	qt.Assert(t, qt.IsFalse(NoPos.IsValid()))
	qt.Assert(t, qt.Equals(NoPos.Position(), Position{}))
}

func TestFilePosition(t *testing.T) {
	src := []byte("wire a;\nwire b;\nwire c;\n")
	f := NewFile("x.sv", src)

	qt.Assert(t, qt.Equals(f.LineCount(), 3))

	cases := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 1, 1},
		{7, 1, 8},
		{8, 2, 1},
		{16, 3, 1},
		{23, 3, 8},
	}
	for _, c := range cases {
		got := f.Position(c.offset)
		qt.Assert(t, qt.Equals(got.Line, c.line), qt.Commentf("offset %d", c.offset))
		qt.Assert(t, qt.Equals(got.Column, c.col), qt.Commentf("offset %d", c.offset))
	}
}

func TestPosCompareAcrossFiles(t *testing.T) {
	a := NewFile("a.sv", []byte("x"))
	b := NewFile("b.sv", []byte("x"))
	pa := NewPos(a, 0)
	pb := NewPos(b, 0)
	qt.Assert(t, qt.IsTrue(pa.Before(pb)))
}

func TestSpanText(t *testing.T) {
	src := []byte("wire [31:0] x;")
	sp := Span{Begin: 6, End: 11}
	qt.Assert(t, qt.Equals(sp.Text(src), "31:0]"))
	qt.Assert(t, qt.Equals(sp.Len(), 5))
}

func TestSpanUnion(t *testing.T) {
	a := Span{Begin: 2, End: 5}
	b := Span{Begin: 4, End: 9}
	qt.Assert(t, qt.Equals(a.Union(b), Span{Begin: 2, End: 9}))
}
