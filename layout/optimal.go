package layout

import (
	"github.com/hdltools/svcore/diagnostics"
	"github.com/hdltools/svcore/partition"
	"github.com/hdltools/svcore/token"
)

// Args bundles a partition node's children (already reduced to
// LayoutFunctions, one per child) plus the metadata the policy
// dispatcher needs to build the governing combinator: the spacing
// between children, whether a wrap is forced (e.g. a preprocessor
// directive requiring its own line), and the wrap-indentation to apply
// if the children end up stacked.
type Args struct {
	Children     []Function
	SpacesBefore []int
	MustWrap     bool
	WrapSpaces   int
}

// Optimize builds the LayoutFunction for a partition tree node governed
// by policy, dispatching to the appropriate combinator. A node with no children governed by AlwaysExpand,
// FitOnLineElseExpand, or OptimalLayout is expected to have already
// been reduced to a Line function by the caller before reaching here.
func Optimize(policy partition.Policy, header Function, args Args, style partition.FormatStyle) (Function, error) {
	switch policy {
	case partition.AlwaysExpand:
		return alwaysExpand(header, args, style), nil
	case partition.FitOnLineElseExpand:
		return Wrap(prepend(header, args.Children), prepend0(args.SpacesBefore), style), nil
	case partition.OptimalLayout:
		return optimalLayout(header, args, style), nil
	default:
		return nil, diagnostics.Newf(diagnostics.Fatal, token.Pos{},
			"layout: unsupported partition policy %s for an optimised node", policy)
	}
}

// alwaysExpand stacks header followed by an indented stack of args.
func alwaysExpand(header Function, args Args, style partition.FormatStyle) Function {
	if len(args.Children) == 0 {
		return header
	}
	body := Indent(Stack(args.Children, style), args.WrapSpaces)
	return Stack([]Function{header, body}, style)
}

// optimalLayout picks the cheaper of laying header and its args out on
// one line versus stacking the args (indented) beneath header. A node
// whose args must wrap skips straight to the stacked form.
func optimalLayout(header Function, args Args, style partition.FormatStyle) Function {
	if len(args.Children) == 0 {
		return header
	}
	stacked := Stack([]Function{header, Indent(Stack(args.Children, style), args.WrapSpaces)}, style)
	if args.MustWrap {
		return stacked
	}
	oneLine := JuxtaposeAll(prepend(header, args.Children), prepend0(args.SpacesBefore), style)
	return Choice([]Function{oneLine, stacked})
}

func prepend(head Function, rest []Function) []Function {
	out := make([]Function, 0, len(rest)+1)
	out = append(out, head)
	out = append(out, rest...)
	return out
}

func prepend0(rest []int) []int {
	out := make([]int, 0, len(rest)+1)
	out = append(out, 0)
	out = append(out, rest...)
	return out
}
