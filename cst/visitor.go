package cst

// Visitor is invoked by Accept for every non-null symbol encountered in a
// preorder/postorder traversal. Before returns the Visitor to use for the
// symbol's children; returning nil skips the subtree. After is called once
// the subtree has been fully visited. This mirrors the corpus's own
// before/after walker (cue/ast.Walk) rather than a single-method visitor,
// so callers that only care about one phase can ignore the other.
type Visitor interface {
	Before(s Symbol) (next Visitor)
	After(s Symbol)
}

// Accept walks s in depth-first, left-to-right order, skipping nil child
// slots silently. It is the read-only traversal
// entry point; see AcceptMutating for the rewrite-capable variant.
func Accept(s Symbol, v Visitor) {
	if s == nil || v == nil {
		return
	}
	next := v.Before(s)
	if next == nil {
		return
	}
	if n, ok := AsNode(s); ok {
		for _, c := range n.Children {
			if c != nil {
				Accept(c, next)
			}
		}
	}
	next.After(s)
}

// funcVisitor adapts a pair of plain functions to the Visitor interface,
// matching the ergonomics of cue/ast.Walk's functional entry point.
type funcVisitor struct {
	before func(Symbol) bool
	after  func(Symbol)
}

func (f *funcVisitor) Before(s Symbol) Visitor {
	if f.before != nil && !f.before(s) {
		return nil
	}
	return f
}

func (f *funcVisitor) After(s Symbol) {
	if f.after != nil {
		f.after(s)
	}
}

// Walk is a functional shorthand for Accept: before is invoked for each
// symbol and controls recursion into its children; after is invoked once
// the subtree is done. Either may be nil.
func Walk(s Symbol, before func(Symbol) bool, after func(Symbol)) {
	Accept(s, &funcVisitor{before: before, after: after})
}
