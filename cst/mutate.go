package cst

import "github.com/hdltools/svcore/token"

// Slot is the owning storage location of a Symbol: a pointer to the
// interface value that holds it, whether that's a caller-owned root
// variable or an element of a parent Node's Children slice. Replacing
// *slot or setting it to nil mutates the tree in place, which is why the
// spec requires mutating visitors to receive the owning slot rather than
// the Symbol itself.
type Slot = *Symbol

// MutatingVisitor is invoked once per non-nil symbol during
// AcceptMutating. It may replace *slot or set it to nil; returning false
// skips descending into whatever symbol now occupies the slot.
type MutatingVisitor func(slot Slot) (recurse bool)

// AcceptMutating walks the tree rooted at *slot, depth-first, giving the
// visitor the owning slot of every symbol so it may rewrite or delete
// subtrees (typedef pruning, error-recovery trimming). If the visitor
// nils out *slot, the subtree is dropped and traversal does not descend
// into it.
func AcceptMutating(slot Slot, visit MutatingVisitor) {
	if slot == nil || *slot == nil {
		return
	}
	if !visit(slot) {
		return
	}
	if *slot == nil {
		return
	}
	if n, ok := AsNode(*slot); ok {
		for i := range n.Children {
			AcceptMutating(&n.Children[i], visit)
		}
	}
}

// TrimTo replaces *slot with a subtree fully contained in span, or nils
// it out if no such subtree exists. If *slot itself is not contained,
// its children are searched depth-first, left to right, and the first
// contained subtree found is taken; that is not always the shallowest
// one. A contained node with exactly one contained child is replaced by
// that child, repeatedly.
func TrimTo(slot Slot, span token.Span) {
	if slot == nil || *slot == nil {
		return
	}
	best := shallowestContaining(*slot, span)
	*slot = best
}

func shallowestContaining(s Symbol, span token.Span) Symbol {
	full := StringSpanOf(s)
	if full.Begin < span.Begin || full.End > span.End {
		// s isn't fully contained; search its children, depth-first.
		if n, ok := AsNode(s); ok {
			for _, c := range n.Children {
				if c == nil {
					continue
				}
				if found := shallowestContaining(c, span); found != nil {
					return found
				}
			}
		}
		return nil
	}
	return shallowestContainingDescend(s, span)
}

// shallowestContainingDescend assumes s is already fully contained in
// span and looks for a strictly smaller contained subtree.
func shallowestContainingDescend(s Symbol, span token.Span) Symbol {
	n, ok := AsNode(s)
	if !ok {
		return s
	}
	var containedChild Symbol
	count := 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		cs := StringSpanOf(c)
		if cs.Begin >= span.Begin && cs.End <= span.End {
			containedChild = c
			count++
		}
	}
	if count == 1 {
		return shallowestContainingDescend(containedChild, span)
	}
	return s
}

// PruneAfter drops every leaf whose text begins strictly after offset,
// then bubbles up (nils out) any parent left with no remaining non-nil
// children. Used to trim a partial tree after a syntax error.
func PruneAfter(slot Slot, offset int) {
	if slot == nil || *slot == nil {
		return
	}
	pruneAfter(slot, offset)
}

func pruneAfter(slot Slot, offset int) (empty bool) {
	s := *slot
	if l, ok := AsLeaf(s); ok {
		if l.Tok.Span.Begin > offset {
			*slot = nil
			return true
		}
		return false
	}
	n, _ := AsNode(s)
	allEmpty := true
	for i := range n.Children {
		if n.Children[i] == nil {
			continue
		}
		if pruneAfter(&n.Children[i], offset) {
			// child slot was nilled
		} else {
			allEmpty = false
		}
	}
	if allEmpty {
		*slot = nil
		return true
	}
	return false
}
