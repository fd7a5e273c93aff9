package layout

import "github.com/hdltools/svcore/partition"

// Wrap builds the cheapest of: every fn on one line, every fn stacked
// one per line, or the first fn juxtaposed with the rest stacked. This
// is the combinator behind list-like constructs (port lists, enum
// members) that may fit on one line, need one item per line, or read
// best as "head, then one item per subsequent line" (e.g. a keyword
// followed by a stacked argument list).
//
// The third alternative is only loosely specified as a
// "left-most-juxtaposed-first prefix-stack combination"; this package
// resolves it as juxtaposing fns[0] against Stack(fns[1:]) (see
// DESIGN.md).
func Wrap(fns []Function, spacesBefore []int, style partition.FormatStyle) Function {
	if len(fns) == 0 {
		panic("layout: Wrap requires at least one function")
	}
	if len(fns) == 1 {
		return fns[0]
	}

	allOnOneLine := JuxtaposeAll(fns, spacesBefore, style)
	allStacked := Stack(fns, style)
	headThenStack := Juxtapose(fns[0], Stack(fns[1:], style), spacesBefore[1], style)

	return Choice([]Function{allOnOneLine, allStacked, headThenStack})
}
