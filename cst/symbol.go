// Package cst implements the concrete syntax tree abstraction shared by
// every downstream analysis: lint rules, the formatter's token-partition
// builder, and the symbol-table front end. The tree is built once by an
// external parser and is read-only thereafter except through
// the explicit mutating visitor in mutate.go.
package cst

import (
	"strconv"

	"github.com/hdltools/svcore/token"
)

// SymbolKind distinguishes the two concrete Symbol implementations. It is
// half of a SymbolTag; the other half (Value) disambiguates within a kind.
type SymbolKind uint8

const (
	KindLeaf SymbolKind = iota
	KindNode
)

func (k SymbolKind) String() string {
	if k == KindLeaf {
		return "Leaf"
	}
	return "Node"
}

// NodeTag is the grammar non-terminal enumeration. Values are stable
// within a build and are compared only for equality.
type NodeTag int

// SymbolTag classifies a Symbol for matching: whether it is a Leaf or
// Node, and which token kind / node tag it carries.
type SymbolTag struct {
	Kind  SymbolKind
	Value int
}

func (t SymbolTag) String() string {
	return t.Kind.String() + "#" + strconv.Itoa(t.Value)
}

// Symbol is the tagged union at the root of the tree: every Leaf and Node
// implements it. Go has no native sum type, so, as the corpus does for its
// own AST (cue/ast.Node), we model the union as an interface with two
// concrete implementations rather than a single struct with a discriminant
// field — that keeps Leaf and Node from carrying fields that don't apply
// to them.
type Symbol interface {
	// Tag reports this symbol's SymbolTag.
	Tag() SymbolTag
	// SymbolKind reports whether this is a Leaf or a Node.
	SymbolKind() SymbolKind
}

// Leaf wraps a single Token. Leaves carry no children.
type Leaf struct {
	Tok token.Token
}

// NewLeaf returns a Leaf wrapping t.
func NewLeaf(t token.Token) *Leaf { return &Leaf{Tok: t} }

func (l *Leaf) Tag() SymbolTag        { return SymbolTag{Kind: KindLeaf, Value: int(l.Tok.Kind)} }
func (l *Leaf) SymbolKind() SymbolKind { return KindLeaf }

// Token returns the wrapped token.
func (l *Leaf) Token() *token.Token { return &l.Tok }

// Node is an interior symbol: a grammar production with an ordered,
// fixed-arity sequence of child slots. A nil entry in Children is an
// absent optional construct — semantically distinct from an empty node —
// and keeps every sibling's positional index stable.
//
// Children are owned exclusively by their parent: the CST is a tree, not
// a DAG, and no Symbol value is ever shared between two Node.Children
// slices.
type Node struct {
	Tag_     NodeTag
	Children []Symbol
}

// NewNode returns a Node tagged tag with the given children (which may
// include nil entries for absent optional slots).
func NewNode(tag NodeTag, children ...Symbol) *Node {
	return &Node{Tag_: tag, Children: children}
}

func (n *Node) Tag() SymbolTag        { return SymbolTag{Kind: KindNode, Value: int(n.Tag_)} }
func (n *Node) SymbolKind() SymbolKind { return KindNode }

// Child returns the i'th child, or nil if i is out of range or the slot
// is absent.
func (n *Node) Child(i int) Symbol {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Arity returns the number of child slots (including absent ones).
func (n *Node) Arity() int { return len(n.Children) }

// AsLeaf type-asserts s to *Leaf, returning (nil, false) for a Node or a
// nil Symbol.
func AsLeaf(s Symbol) (*Leaf, bool) {
	l, ok := s.(*Leaf)
	return l, ok
}

// AsNode type-asserts s to *Node, returning (nil, false) for a Leaf or a
// nil Symbol.
func AsNode(s Symbol) (*Node, bool) {
	n, ok := s.(*Node)
	return n, ok
}

// IsErrorRecovery reports whether s is a leaf synthesized by parser error
// recovery rather than scanned from source.
// Visitors and search primitives must tolerate such leaves rather than
// assume every leaf carries a meaningful grammar kind.
func IsErrorRecovery(s Symbol) bool {
	l, ok := AsLeaf(s)
	return ok && l.Tok.Kind == token.ErrorRecovery
}
