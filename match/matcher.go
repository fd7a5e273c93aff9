package match

import "github.com/hdltools/svcore/cst"

// Handler selects which combinator semantics (§4.3) a Matcher's inner
// matchers are evaluated with.
type Handler int

const (
	// All requires every inner matcher to match (conjunction).
	All Handler = iota
	// Any requires at least one inner matcher to match, with lookahead
	// rollback of the others (disjunction).
	Any
	// Each runs every inner matcher, accumulating bindings from whichever
	// ones succeed, and is satisfied if at least one did.
	Each
	// Unless negates its single inner matcher and never binds.
	Unless
)

// Predicate gates whether a Matcher attempts to match a given symbol.
type Predicate func(cst.Symbol) bool

// Transformer produces the descendants (possibly just the symbol itself)
// that a Matcher's inner matchers are evaluated against.
type Transformer func(cst.Symbol) []cst.Symbol

// Matcher is a tree-pattern combinator: a predicate gating the match at
// the current symbol, a transformer projecting to the symbols the inner
// matchers run against, an inner-match handler combining the results of
// those inner matchers, and an optional capture id.
type Matcher struct {
	predicate Predicate
	transform Transformer
	handler   Handler
	inner     []*Matcher
	bindID    string
	bindable  bool
}

func identity(s cst.Symbol) []cst.Symbol { return []cst.Symbol{s} }

// Bind returns a copy of m with capture id set to id. It panics if m is
// not bindable — only tag and path matchers expose binding, because a
// composite combinator (AllOf/AnyOf/EachOf/Unless) can correspond to
// more than one underlying symbol and so has no single thing to bind.
func (m *Matcher) Bind(id string) *Matcher {
	if !m.bindable {
		panic("match: Bind called on a non-bindable (composite) matcher")
	}
	clone := *m
	clone.bindID = id
	return &clone
}

// Matches attempts to match m against s, threading mgr for capture
// bookkeeping. A false result leaves mgr exactly as it was before the
// call; callers relying on that guarantee should
// not assume anything was bound on failure.
func (m *Matcher) Matches(s cst.Symbol, mgr *BoundSymbolManager) bool {
	if s == nil {
		return false
	}
	if m.predicate != nil && !m.predicate(s) {
		return false
	}
	transform := m.transform
	if transform == nil {
		transform = identity
	}
	targets := transform(s)
	if len(targets) == 0 {
		return false
	}

	saved := mgr.clone()
	matchedAny := false
	for _, target := range targets {
		if target == nil {
			continue
		}
		if m.runInner(target, mgr) {
			matchedAny = true
			if m.bindID != "" {
				mgr.Bind(m.bindID, target)
			}
		}
	}
	if !matchedAny {
		mgr.restore(saved)
		return false
	}
	return true
}

// runInner evaluates m's inner matchers against target per m.handler. An
// empty inner list is vacuously true for All (the common case of a bare
// tag/path matcher with no further constraints); the public combinator
// constructors reject an empty matcher list at construction time instead.
func (m *Matcher) runInner(target cst.Symbol, mgr *BoundSymbolManager) bool {
	switch m.handler {
	case All:
		return matchAll(m.inner, target, mgr)
	case Any:
		return matchAny(m.inner, target, mgr)
	case Each:
		return matchEach(m.inner, target, mgr)
	case Unless:
		return matchUnless(m.inner, target)
	default:
		panic("match: unknown Handler")
	}
}
