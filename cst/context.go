package cst

// Context is the ordered list of ancestor nodes from the root down to
// (but not including) the symbol currently being visited, maintained by
// TreeContextVisitor. It is the substrate every path-dependent rule and
// column-layout decision relies on.
//
// Ancestors are stored innermost-first: Ancestors()[0] is the direct
// parent. This is modeled as an explicit stack held by the visitor,
// never as a back-pointer on the node itself, to keep Node free of
// parent pointers.
type Context struct {
	ancestors []*Node // innermost first
}

// Ancestors returns the ancestor chain, innermost first. Callers must not
// mutate the returned slice.
func (c *Context) Ancestors() []*Node { return c.ancestors }

// DirectParentIs reports whether the immediate parent has the given tag.
func (c *Context) DirectParentIs(tag NodeTag) bool {
	return len(c.ancestors) > 0 && c.ancestors[0].Tag_ == tag
}

// DirectParentsAre reports whether the chain of ancestors, most-recent
// first, begins with exactly the given tags in order.
func (c *Context) DirectParentsAre(tags ...NodeTag) bool {
	if len(tags) > len(c.ancestors) {
		return false
	}
	for i, tag := range tags {
		if c.ancestors[i].Tag_ != tag {
			return false
		}
	}
	return true
}

// IsInside reports whether any ancestor carries the given tag.
func (c *Context) IsInside(tag NodeTag) bool {
	for _, a := range c.ancestors {
		if a.Tag_ == tag {
			return true
		}
	}
	return false
}

// IsInsideFirst reports whether the nearest ancestor whose tag is in
// either stopSet or triggerSet is in triggerSet. It is used to ask
// "am I inside an X, without having left through a Y first" — e.g. inside
// a `generate` block without having exited through an intervening module
// boundary.
func (c *Context) IsInsideFirst(stopSet, triggerSet []NodeTag) bool {
	in := func(set []NodeTag, tag NodeTag) bool {
		for _, t := range set {
			if t == tag {
				return true
			}
		}
		return false
	}
	for _, a := range c.ancestors {
		if in(triggerSet, a.Tag_) {
			return true
		}
		if in(stopSet, a.Tag_) {
			return false
		}
	}
	return false
}

// NearestParentMatching returns the nearest ancestor satisfying predicate,
// or nil if none does.
func (c *Context) NearestParentMatching(predicate func(*Node) bool) *Node {
	for _, a := range c.ancestors {
		if predicate(a) {
			return a
		}
	}
	return nil
}

func (c *Context) push(n *Node) {
	c.ancestors = append([]*Node{n}, c.ancestors...)
}

func (c *Context) pop() {
	c.ancestors = c.ancestors[1:]
}

// TreeContextVisitor drives a context-aware preorder traversal, calling
// visit for every symbol with the Context reflecting that symbol's
// ancestors at the time of the call. It is the traversal the lint
// driver feeds every syntax-tree rule from, and docsymbol builds its
// outline with.
func TreeContextVisitor(root Symbol, visit func(s Symbol, ctx *Context)) {
	ctx := &Context{}
	walkContext(root, ctx, visit)
}

func walkContext(s Symbol, ctx *Context, visit func(Symbol, *Context)) {
	if s == nil {
		return
	}
	visit(s, ctx)
	if n, ok := AsNode(s); ok {
		ctx.push(n)
		for _, c := range n.Children {
			if c != nil {
				walkContext(c, ctx, visit)
			}
		}
		ctx.pop()
	}
}
