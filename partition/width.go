package partition

// RenderWidth computes the rendered column width of the tokens in r:
// each token's text length plus its required leading spaces, except the
// first token in the range (which starts flush at the line's own
// indentation and contributes no leading space of its own).
func RenderWidth(tokens []PreFormatToken, r TokenRange, src []byte) int {
	width := 0
	for i := r.Begin; i < r.End; i++ {
		pft := tokens[i]
		if i > r.Begin {
			width += pft.SpacesRequired
		}
		width += pft.Tok.Span.Len()
	}
	return width
}
