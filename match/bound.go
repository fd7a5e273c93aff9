// Package match implements the tree-matcher combinator library: pattern
// objects (Matcher) built from AllOf/AnyOf/EachOf/Unless, path matchers,
// and tag matchers with capture bindings, all operating over cst.Symbol.
package match

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/hdltools/svcore/cst"
)

// BoundSymbolManager is an insertion-order-preserving map from capture id
// to the bound cst.Symbol, used to collect bindings during a match
// attempt and to roll back on failure. It is backed by
// gods' linkedhashmap, the same ordered-container dependency the example
// pack's scala-gazelle module pulls in for the same shape of problem.
type BoundSymbolManager struct {
	m *linkedhashmap.Map
}

// NewBoundSymbolManager returns an empty manager.
func NewBoundSymbolManager() *BoundSymbolManager {
	return &BoundSymbolManager{m: linkedhashmap.New()}
}

// Bind records that id captured s. Binding the same id again overwrites
// the previous value without changing its position in iteration order.
func (b *BoundSymbolManager) Bind(id string, s cst.Symbol) {
	b.m.Put(id, s)
}

// Lookup returns the symbol bound to id, if any.
func (b *BoundSymbolManager) Lookup(id string) (cst.Symbol, bool) {
	v, found := b.m.Get(id)
	if !found {
		return nil, false
	}
	return v.(cst.Symbol), true
}

// Ids returns the bound capture ids in insertion order.
func (b *BoundSymbolManager) Ids() []string {
	keys := b.m.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}
	return out
}

// Len reports the number of bound captures.
func (b *BoundSymbolManager) Len() int { return b.m.Size() }

// clone returns an independent copy of b, used to implement the
// save-on-entry / restore-on-failure rollback contract each combinator
// must honor.
func (b *BoundSymbolManager) clone() *BoundSymbolManager {
	c := NewBoundSymbolManager()
	it := b.m.Iterator()
	for it.Next() {
		c.m.Put(it.Key(), it.Value())
	}
	return c
}

// restore replaces b's contents with saved's, in place, so that the
// caller's *BoundSymbolManager pointer continues to refer to the live
// manager even though the saved snapshot was a separate clone.
func (b *BoundSymbolManager) restore(saved *BoundSymbolManager) {
	b.m.Clear()
	it := saved.m.Iterator()
	for it.Next() {
		b.m.Put(it.Key(), it.Value())
	}
}

// Equal reports whether b and other bind the same ids, in the same
// order, to identical symbols. Used by tests asserting Property 2
// (rollback leaves the manager bitwise equal to its pre-call state).
func (b *BoundSymbolManager) Equal(other *BoundSymbolManager) bool {
	if b.m.Size() != other.m.Size() {
		return false
	}
	ai, bi := b.m.Iterator(), other.m.Iterator()
	for ai.Next() && bi.Next() {
		if ai.Key() != bi.Key() || ai.Value() != bi.Value() {
			return false
		}
	}
	return true
}
