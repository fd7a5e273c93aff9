package cst

import "github.com/hdltools/svcore/token"

// Path is an ordered sequence of child indices locating a symbol from a
// given root.
type Path []int

// LeftmostLeaf returns the first leaf in depth-first order, skipping nil
// slots, or nil if s contains no leaves.
func LeftmostLeaf(s Symbol) *Leaf {
	switch v := s.(type) {
	case nil:
		return nil
	case *Leaf:
		return v
	case *Node:
		for _, c := range v.Children {
			if c == nil {
				continue
			}
			if l := LeftmostLeaf(c); l != nil {
				return l
			}
		}
		return nil
	default:
		return nil
	}
}

// RightmostLeaf returns the last leaf in depth-first order, skipping nil
// slots, or nil if s contains no leaves.
func RightmostLeaf(s Symbol) *Leaf {
	switch v := s.(type) {
	case nil:
		return nil
	case *Leaf:
		return v
	case *Node:
		for i := len(v.Children) - 1; i >= 0; i-- {
			c := v.Children[i]
			if c == nil {
				continue
			}
			if l := RightmostLeaf(c); l != nil {
				return l
			}
		}
		return nil
	default:
		return nil
	}
}

// StringSpanOf returns the half-open source byte range spanned by s's
// leftmost and rightmost leaves. It returns the zero Span if s contains
// no leaves.
func StringSpanOf(s Symbol) token.Span {
	l, r := LeftmostLeaf(s), RightmostLeaf(s)
	if l == nil || r == nil {
		return token.Span{}
	}
	return l.Tok.Span.Union(r.Tok.Span)
}

// FindFirst returns the first symbol in preorder depth-first traversal
// for which predicate returns true, or nil if none matches. The root
// itself is considered.
func FindFirst(root Symbol, predicate func(Symbol) bool) Symbol {
	if root == nil {
		return nil
	}
	if predicate(root) {
		return root
	}
	if n, ok := AsNode(root); ok {
		for _, c := range n.Children {
			if c == nil {
				continue
			}
			if found := FindFirst(c, predicate); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindLast returns the last symbol in preorder depth-first traversal for
// which predicate returns true, or nil if none matches.
func FindLast(root Symbol, predicate func(Symbol) bool) Symbol {
	var last Symbol
	Walk(root, func(s Symbol) bool {
		if predicate(s) {
			last = s
		}
		return true
	}, nil)
	return last
}

// DescendantsAlongPath returns every subtree reachable from root's
// children by following the sequence of tags in path, branching at every
// level where more than one child matches the current tag. path must have
// at least one element; every returned symbol's Tag equals the last
// element of path. A Leaf reached before path is exhausted simply yields
// no descendants on that branch — this is how the traversal tolerates
// ErrorRecovery leaves and other unexpectedly-shallow subtrees.
func DescendantsAlongPath(root Symbol, path ...SymbolTag) []Symbol {
	if len(path) == 0 {
		panic("cst: DescendantsAlongPath requires at least one path element")
	}
	return descendAlong(root, path)
}

func descendAlong(root Symbol, path []SymbolTag) []Symbol {
	n, ok := AsNode(root)
	if !ok {
		return nil
	}
	var out []Symbol
	for _, c := range n.Children {
		if c == nil || c.Tag() != path[0] {
			continue
		}
		if len(path) == 1 {
			out = append(out, c)
			continue
		}
		out = append(out, descendAlong(c, path[1:])...)
	}
	return out
}

// PathTo returns the child-index path from root to target (identity
// comparison), or nil if target is not reachable from root.
func PathTo(root, target Symbol) Path {
	if root == target {
		return Path{}
	}
	n, ok := AsNode(root)
	if !ok {
		return nil
	}
	for i, c := range n.Children {
		if c == nil {
			continue
		}
		if p := PathTo(c, target); p != nil {
			return append(Path{i}, p...)
		}
	}
	return nil
}

// SymbolAt navigates path from root, returning the located symbol or nil
// if any index is out of range or a nil slot is encountered along the way.
func SymbolAt(root Symbol, path Path) Symbol {
	cur := root
	for _, i := range path {
		n, ok := AsNode(cur)
		if !ok {
			return nil
		}
		cur = n.Child(i)
		if cur == nil {
			return nil
		}
	}
	return cur
}
