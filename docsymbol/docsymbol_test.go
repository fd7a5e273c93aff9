package docsymbol

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/internal/svlex"
	"github.com/hdltools/svcore/token"
)

func moduleClassifier() Classifier {
	return func(n *cst.Node) (Kind, *cst.Leaf, bool) {
		if n.Tag_ != svlex.ModuleNode {
			return 0, nil, false
		}
		ident, _ := cst.AsLeaf(n.Child(0))
		return KindModule, ident, true
	}
}

func TestBuildCollectsTopLevelModule(t *testing.T) {
	module, src := svlex.BuildModuleDecl("counter", 0)
	symbols := Build(module, []byte(src), moduleClassifier())
	qt.Assert(t, qt.HasLen(symbols, 1))
	qt.Assert(t, qt.Equals(symbols[0].Name, "counter"))
	qt.Assert(t, qt.Equals(symbols[0].Kind, KindModule))
}

func TestBuildNestsUnderNearestRecognizedAncestor(t *testing.T) {
	src := "outer     inner"
	outerName := cst.NewLeaf(token.Token{Kind: token.Identifier, Span: token.Span{Begin: 0, End: 5}})
	inner, _ := svlex.BuildModuleDecl("inner", 10)
	outer := cst.NewNode(svlex.ModuleNode, outerName, inner)

	symbols := Build(outer, []byte(src), moduleClassifier())
	qt.Assert(t, qt.HasLen(symbols, 1))
	qt.Assert(t, qt.HasLen(symbols[0].Children, 1))
	qt.Assert(t, qt.Equals(symbols[0].Children[0].Name, "inner"))
}

func TestLSPKindPlainVersusClassMethodSwap(t *testing.T) {
	qt.Assert(t, qt.Equals(KindClass.LSPKind(Plain), LSPClass))
	qt.Assert(t, qt.Equals(KindClass.LSPKind(ClassMethod), LSPMethod))
	qt.Assert(t, qt.Equals(KindFunction.LSPKind(Plain), LSPFunction))
	qt.Assert(t, qt.Equals(KindFunction.LSPKind(ClassMethod), LSPClass))
}
