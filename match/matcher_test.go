package match

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/token"
)

func leaf(kind token.Kind) *cst.Leaf {
	return cst.NewLeaf(token.Token{Kind: kind})
}

// TestScenarioBind checks Node(5, Node(3, Node(4, Leaf(10)))) matched by
// Node5(PathMatcher(Node3, Node4, Leaf10).bind("inner")).bind("outer").
func TestScenarioBind(t *testing.T) {
	l := leaf(10)
	n4 := cst.NewNode(4, l)
	n3 := cst.NewNode(3, n4)
	n5 := cst.NewNode(5, n3)

	path := PathMatcher(
		cst.SymbolTag{Kind: cst.KindNode, Value: 3},
		cst.SymbolTag{Kind: cst.KindNode, Value: 4},
		cst.SymbolTag{Kind: cst.KindLeaf, Value: 10},
	).Bind("inner")

	m := NodeMatcher(5, path).Bind("outer")

	mgr := NewBoundSymbolManager()
	ok := m.Matches(n5, mgr)
	qt.Assert(t, qt.IsTrue(ok))

	outer, found := mgr.Lookup("outer")
	qt.Assert(t, qt.IsTrue(found))
	qt.Assert(t, qt.Equals(outer.Tag(), cst.SymbolTag{Kind: cst.KindNode, Value: 5}))

	inner, found := mgr.Lookup("inner")
	qt.Assert(t, qt.IsTrue(found))
	qt.Assert(t, qt.Equals(inner.Tag(), cst.SymbolTag{Kind: cst.KindLeaf, Value: 10}))
}

func TestBindPanicsOnComposite(t *testing.T) {
	defer func() {
		r := recover()
		qt.Assert(t, qt.IsNotNil(r))
	}()
	AllOf(NodeMatcher(1)).Bind("x")
}

func TestEmptyAllOfPanics(t *testing.T) {
	defer func() {
		r := recover()
		qt.Assert(t, qt.IsNotNil(r))
	}()
	AllOf()
}

// Property 2: a failing match leaves the manager bitwise equal to its
// pre-call state.
func TestManagerRollbackOnFailure(t *testing.T) {
	n := cst.NewNode(1, leaf(10))
	m := AllOf(NodeMatcher(1, LeafMatcher(10).Bind("a")), NodeMatcher(999).Bind("never"))

	mgr := NewBoundSymbolManager()
	mgr.Bind("preexisting", n)
	before := mgr.clone()

	ok := m.Matches(n, mgr)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsTrue(mgr.Equal(before)))
}

// Property 1: match outcome and bindings are invariant under permutation
// of inner matchers, for All/Any/Each.
func TestCommutativityAllAnyEach(t *testing.T) {
	n := cst.NewNode(1, leaf(10))
	a := NodeMatcher(1, LeafMatcher(10).Bind("a"))
	b := NodeMatcher(1) // matches same node trivially

	for _, build := range []func(...*Matcher) *Matcher{AllOf, AnyOf, EachOf} {
		m1 := build(a, b)
		m2 := build(b, a)

		mgr1, mgr2 := NewBoundSymbolManager(), NewBoundSymbolManager()
		ok1 := m1.Matches(n, mgr1)
		ok2 := m2.Matches(n, mgr2)
		qt.Assert(t, qt.Equals(ok1, ok2))
		qt.Assert(t, qt.IsTrue(mgr1.Equal(mgr2)))
	}
}

func TestUnlessNeverBinds(t *testing.T) {
	n := cst.NewNode(1, leaf(10))
	inner := NodeMatcher(1, LeafMatcher(10).Bind("a"))
	u := UnlessMatcher(inner)

	mgr := NewBoundSymbolManager()
	ok := u.Matches(n, mgr)
	qt.Assert(t, qt.IsFalse(ok)) // inner matches, so Unless fails
	qt.Assert(t, qt.Equals(mgr.Len(), 0))
}

func TestPathMatcherBranches(t *testing.T) {
	a := cst.NewNode(2, leaf(10))
	b := cst.NewNode(2, leaf(10))
	root := cst.NewNode(1, a, b)

	p := PathMatcher(cst.SymbolTag{Kind: cst.KindNode, Value: 2}).Bind("x")
	mgr := NewBoundSymbolManager()
	ok := p.Matches(root, mgr)
	qt.Assert(t, qt.IsTrue(ok))
	// both branches match; the bound value is whichever target was bound
	// last (insertion order is preserved, value is overwritten).
	x, found := mgr.Lookup("x")
	qt.Assert(t, qt.IsTrue(found))
	qt.Assert(t, qt.Equals(x, cst.Symbol(b)))
}
