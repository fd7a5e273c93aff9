package partition

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdltools/svcore/token"
)

func TestNewInteriorValidatesContiguity(t *testing.T) {
	a := NewLeaf(UnwrappedLine{Tokens: TokenRange{0, 2}})
	b := NewLeaf(UnwrappedLine{Tokens: TokenRange{2, 5}})
	tree, err := NewInterior(a, b)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tree.Range(), TokenRange{0, 5}))
}

func TestNewInteriorRejectsGap(t *testing.T) {
	a := NewLeaf(UnwrappedLine{Tokens: TokenRange{0, 2}})
	b := NewLeaf(UnwrappedLine{Tokens: TokenRange{3, 5}})
	_, err := NewInterior(a, b)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestRenderWidth(t *testing.T) {
	toks := []PreFormatToken{
		{Tok: token.Token{Span: token.Span{Begin: 0, End: 4}}, SpacesRequired: 0}, // "wire"
		{Tok: token.Token{Span: token.Span{Begin: 5, End: 6}}, SpacesRequired: 1}, // "x"
	}
	qt.Assert(t, qt.Equals(RenderWidth(toks, TokenRange{0, 2}, nil), 6))
}

func TestLoadFormatStyleOverridesDefaults(t *testing.T) {
	style, err := LoadFormatStyle([]byte("column_limit: 80\n"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(style.ColumnLimit, 80))
	qt.Assert(t, qt.Equals(style.IndentationSpaces, DefaultFormatStyle().IndentationSpaces))
}

func TestWalkVisitsEveryNode(t *testing.T) {
	a := NewLeaf(UnwrappedLine{Tokens: TokenRange{0, 1}})
	b := NewLeaf(UnwrappedLine{Tokens: TokenRange{1, 2}})
	tree, err := NewInterior(a, b)
	qt.Assert(t, qt.IsNil(err))
	count := 0
	tree.Walk(func(*Tree) { count++ })
	qt.Assert(t, qt.Equals(count, 3))
}
