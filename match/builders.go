package match

import "github.com/hdltools/svcore/cst"

func alwaysTrue(cst.Symbol) bool { return true }

// TagMatcher returns a bindable matcher whose predicate checks that a
// symbol's SymbolTag equals tag. Any inner matchers are required to also
// match the same symbol (conjunction); bare tag matchers (no inner
// matchers) accept any symbol carrying tag.
func TagMatcher(tag cst.SymbolTag, inner ...*Matcher) *Matcher {
	return &Matcher{
		predicate: func(s cst.Symbol) bool { return s.Tag() == tag },
		handler:   All,
		inner:     inner,
		bindable:  true,
	}
}

// LeafMatcher is TagMatcher specialized to leaf tags.
func LeafMatcher(value int, inner ...*Matcher) *Matcher {
	return TagMatcher(cst.SymbolTag{Kind: cst.KindLeaf, Value: value}, inner...)
}

// NodeMatcher is TagMatcher specialized to node tags.
func NodeMatcher(tag cst.NodeTag, inner ...*Matcher) *Matcher {
	return TagMatcher(cst.SymbolTag{Kind: cst.KindNode, Value: int(tag)}, inner...)
}

// PathMatcher returns a bindable matcher whose predicate always succeeds
// and whose transformer is cst.DescendantsAlongPath, forwarding every
// discovered descendant as a match target. path must have
// at least one element, per cst.DescendantsAlongPath's own contract.
func PathMatcher(path ...cst.SymbolTag) *Matcher {
	if len(path) == 0 {
		panic("match: PathMatcher requires at least one path element")
	}
	return &Matcher{
		predicate: alwaysTrue,
		transform: func(s cst.Symbol) []cst.Symbol { return cst.DescendantsAlongPath(s, path...) },
		handler:   All,
		bindable:  true,
	}
}

// requireNonEmpty panics with the given combinator name if ms is empty:
// an empty combinator is a programming error, caught at construction
// rather than left as a silent vacuous match.
func requireNonEmpty(name string, ms []*Matcher) {
	if len(ms) == 0 {
		panic("match: " + name + " requires at least one matcher")
	}
}

// AllOf builds a non-bindable composite matcher requiring every one of
// ms to match (conjunction). It panics if ms is empty.
func AllOf(ms ...*Matcher) *Matcher {
	requireNonEmpty("AllOf", ms)
	return &Matcher{predicate: alwaysTrue, handler: All, inner: ms}
}

// AnyOf builds a non-bindable composite matcher requiring at least one
// of ms to match (disjunction, with lookahead rollback of the rest). It
// panics if ms is empty.
func AnyOf(ms ...*Matcher) *Matcher {
	requireNonEmpty("AnyOf", ms)
	return &Matcher{predicate: alwaysTrue, handler: Any, inner: ms}
}

// EachOf builds a non-bindable composite matcher that runs every one of
// ms, accumulating bindings from whichever match, succeeding iff at
// least one did. It panics if ms is empty.
func EachOf(ms ...*Matcher) *Matcher {
	requireNonEmpty("EachOf", ms)
	return &Matcher{predicate: alwaysTrue, handler: Each, inner: ms}
}

// UnlessMatcher builds a non-bindable matcher that succeeds iff m does
// not match; it never binds anything, even if m itself would have bound
// captures.
func UnlessMatcher(m *Matcher) *Matcher {
	if m == nil {
		panic("match: UnlessMatcher requires a matcher")
	}
	return &Matcher{predicate: alwaysTrue, handler: Unless, inner: []*Matcher{m}}
}
