// Package layout implements the layout function algebra: piecewise-linear
// cost functions over a starting column,
// combined with Line/Stack/Juxtaposition/Indent/Choice/Wrap. It consumes
// the partition package's UnwrappedLine/FormatStyle and produces, for
// each LayoutFunction, the chosen LayoutTree the reconstructor (package
// reconstruct) materializes back into a flat sequence of UnwrappedLines.
package layout

import "github.com/hdltools/svcore/partition"

// Kind distinguishes the three concrete LayoutItem shapes.
type Kind int

const (
	LineKind Kind = iota
	JuxtapositionKind
	StackKind
)

func (k Kind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case JuxtapositionKind:
		return "Juxtaposition"
	case StackKind:
		return "Stack"
	default:
		return "Unknown"
	}
}

// Tree is a node of the layout tree chosen for a given starting column
//. Indent is modelled as metadata on the node it applies
// to — IndentationSpaces — rather than as its own Kind: the original
// tool's legacy kLayoutIndent variant was explicitly superseded by this
// collapsed model, and REDESIGN FLAGS calls for adopting it rather than
// reintroducing a fourth node kind.
type Tree struct {
	Kind              Kind
	Line              *partition.UnwrappedLine // non-nil only for LineKind
	Children          []*Tree                  // non-empty for Juxtaposition/Stack
	SpacesBefore      int
	Break             partition.BreakDecision
	IndentationSpaces int
}
