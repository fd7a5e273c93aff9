package layout

// Select picks the LayoutTree a root LayoutFunction resolves to once the
// root's own indentation is known — the last step of the optimiser
// driver before handing off to the tree reconstructor.
func Select(fn Function, indentationSpaces int) *Tree {
	return fn.AtOrToTheLeftOf(indentationSpaces).Layout
}
