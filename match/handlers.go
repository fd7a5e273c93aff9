package match

import "github.com/hdltools/svcore/cst"

// matchAll attempts every inner matcher against target in order. Any
// failure restores mgr to its pre-call state and returns false; if all
// succeed, their bindings remain.
func matchAll(ms []*Matcher, target cst.Symbol, mgr *BoundSymbolManager) bool {
	saved := mgr.clone()
	for _, m := range ms {
		if !m.Matches(target, mgr) {
			mgr.restore(saved)
			return false
		}
	}
	return true
}

// matchAny tries each inner matcher with a lookahead copy of mgr; on the
// first success that copy is committed and true is returned. If none
// succeed, mgr is unchanged.
func matchAny(ms []*Matcher, target cst.Symbol, mgr *BoundSymbolManager) bool {
	for _, m := range ms {
		trial := mgr.clone()
		if m.Matches(target, trial) {
			mgr.restore(trial)
			return true
		}
	}
	return false
}

// matchEach accumulates bindings from every inner matcher that matches
// target; it succeeds iff at least one did. Each inner matcher already
// guarantees it leaves mgr untouched on its own failure, so no
// save/restore is needed here beyond what the inner calls provide.
func matchEach(ms []*Matcher, target cst.Symbol, mgr *BoundSymbolManager) bool {
	matchedAny := false
	for _, m := range ms {
		if m.Matches(target, mgr) {
			matchedAny = true
		}
	}
	return matchedAny
}

// matchUnless runs ms[0] against target with a throwaway manager and
// returns the negation; it never binds anything into mgr.
func matchUnless(ms []*Matcher, target cst.Symbol) bool {
	throwaway := NewBoundSymbolManager()
	return !ms[0].Matches(target, throwaway)
}
