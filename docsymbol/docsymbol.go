// Package docsymbol builds the language-server document-symbol payload:
// a hierarchical tree derived from the CST, covering
// module/package/class/function/task declarations and (optionally)
// variables, each anchored to a source range and a selection range on
// its defining identifier.
package docsymbol

import (
	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/token"
)

// Kind is the SystemVerilog-level classification of a collected symbol,
// independent of how it is eventually rendered to an editor.
type Kind int

const (
	KindModule Kind = iota
	KindPackage
	KindClass
	KindFunction
	KindTask
	KindVariable
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "Module"
	case KindPackage:
		return "Package"
	case KindClass:
		return "Class"
	case KindFunction:
		return "Function"
	case KindTask:
		return "Task"
	case KindVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// LSPKind is the integer SymbolKind enumeration the Language Server
// Protocol defines (a small, fixed subset of it — only the values this
// package ever emits).
type LSPKind int

const (
	LSPModule   LSPKind = 2
	LSPPackage  LSPKind = 4
	LSPClass    LSPKind = 5
	LSPMethod   LSPKind = 6
	LSPFunction LSPKind = 12
	LSPVariable LSPKind = 13
)

// Mapping selects between two LSP SymbolKind mappings: Plain maps each
// Kind to its natural LSP kind; ClassMethod
// maps Class to Method and Function/Task to Class, working around editors that
// otherwise group a SystemVerilog module's functions and tasks away
// from its outline entry.
type Mapping int

const (
	Plain Mapping = iota
	ClassMethod
)

// LSPKind maps k to an LSP SymbolKind under mode.
func (k Kind) LSPKind(mode Mapping) LSPKind {
	switch k {
	case KindModule:
		return LSPModule
	case KindPackage:
		return LSPPackage
	case KindClass:
		if mode == ClassMethod {
			return LSPMethod
		}
		return LSPClass
	case KindFunction, KindTask:
		if mode == ClassMethod {
			return LSPClass
		}
		return LSPFunction
	case KindVariable:
		return LSPVariable
	default:
		return LSPVariable
	}
}

// Symbol is one node of the document-symbol outline.
type Symbol struct {
	Name           string
	Kind           Kind
	Range          token.Span
	SelectionRange token.Span
	Children       []*Symbol
}

// Classifier recognizes a CST node as a symbol this package should
// collect, and locates its defining identifier leaf (for the selection
// range) when it has one. Node-kind enumeration is owned by the
// external grammar, so callers supply their own.
type Classifier func(n *cst.Node) (kind Kind, ident *cst.Leaf, ok bool)

// Build walks root's CST collecting every node classify recognizes into
// a forest of Symbols nested the way their source nodes are nested: a
// recognized node's Symbol is attached as a child of the nearest
// recognized ancestor's Symbol, or returned at the top level if none of
// its ancestors matched.
func Build(root cst.Symbol, src []byte, classify Classifier) []*Symbol {
	bySourceNode := map[*cst.Node]*Symbol{}
	var top []*Symbol

	cst.TreeContextVisitor(root, func(s cst.Symbol, ctx *cst.Context) {
		n, ok := cst.AsNode(s)
		if !ok {
			return
		}
		kind, ident, matched := classify(n)
		if !matched {
			return
		}

		sym := &Symbol{Kind: kind, Range: cst.StringSpanOf(n)}
		if ident != nil {
			sym.Name = ident.Tok.Text(src)
			sym.SelectionRange = ident.Tok.Span
		}
		bySourceNode[n] = sym

		for _, anc := range ctx.Ancestors() {
			if parent, ok := bySourceNode[anc]; ok {
				parent.Children = append(parent.Children, sym)
				return
			}
		}
		top = append(top, sym)
	})
	return top
}
