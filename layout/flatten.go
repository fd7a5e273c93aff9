package layout

// flattenChildren splices any child whose Kind matches the parent it is
// being adopted into, and which carries no indentation of its own,
// directly into children rather than nesting it. Relies on
// Stack/Juxtapose always deriving their own
// SpacesBefore/Break from the first resulting child, which keeps the
// invariant ("adopter's break_decision and spaces_before match the
// first spliced child") true by construction.
func flattenChildren(kind Kind, children []*Tree) []*Tree {
	out := make([]*Tree, 0, len(children))
	for _, c := range children {
		if c.Kind == kind && c.IndentationSpaces == 0 {
			out = append(out, c.Children...)
		} else {
			out = append(out, c)
		}
	}
	return out
}
