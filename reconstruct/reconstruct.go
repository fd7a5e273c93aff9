// Package reconstruct turns a chosen layout.Tree back into the flat
// sequence of UnwrappedLines the formatter emits, and splices that
// sequence back into the token-partition tree it came from.
package reconstruct

import (
	"fmt"

	"github.com/hdltools/svcore/layout"
	"github.com/hdltools/svcore/partition"
)

// builder walks a layout.Tree accumulating output lines. At most one
// line is "active" (still open to further extension) at a time.
type builder struct {
	lines  []partition.UnwrappedLine
	active *partition.UnwrappedLine
	tokens []partition.PreFormatToken
	src    []byte
}

func (b *builder) closeActive() {
	if b.active != nil {
		b.lines = append(b.lines, *b.active)
		b.active = nil
	}
}

// visit renders t starting at the given indentation and returns the
// column at which the active line now ends, which a Stack parent needs
// to compute its next sibling's indentation.
func (b *builder) visit(t *layout.Tree, indent int) int {
	indent += t.IndentationSpaces
	switch t.Kind {
	case layout.LineKind:
		if b.active == nil {
			line := *t.Line
			line.IndentationSpaces = indent
			b.active = &line
		} else {
			b.active.Tokens = b.active.Tokens.Union(t.Line.Tokens)
		}
		if b.tokens == nil {
			return indent
		}
		return indent + partition.RenderWidth(b.tokens, b.active.Tokens, b.src)

	case layout.JuxtapositionKind:
		col := indent
		for _, c := range t.Children {
			col = b.visit(c, indent)
		}
		return col

	case layout.StackKind:
		if len(t.Children) == 0 {
			return indent
		}
		col := b.visit(t.Children[0], indent)
		for _, c := range t.Children[1:] {
			b.closeActive()
			col = b.visit(c, col+c.SpacesBefore)
		}
		return col

	default:
		return indent
	}
}

// Reconstruct renders tree into a flat sequence of UnwrappedLines at
// baseIndent. tokens and src are the file's shared
// token array and source buffer, needed only to measure how far an
// extended line's rendered width reaches for Stack's indentation rule.
// With nil tokens no line is measured: widths count as zero, so a Stack
// indents each later child by its SpacesBefore from the column at which
// the previous child started.
func Reconstruct(tree *layout.Tree, baseIndent int, tokens []partition.PreFormatToken, src []byte) []partition.UnwrappedLine {
	b := &builder{tokens: tokens, src: src}
	b.visit(tree, baseIndent)
	b.closeActive()
	return b.lines
}

// ReplaceTokenPartitionTreeNode overwrites target in place so that it
// spans the first-to-last token of lines and its children are exactly
// those lines, as leaves.
func ReplaceTokenPartitionTreeNode(target *partition.Tree, lines []partition.UnwrappedLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("reconstruct: cannot replace a partition node with zero lines")
	}
	children := make([]*partition.Tree, len(lines))
	for i := range lines {
		children[i] = partition.NewLeaf(lines[i])
	}
	built, err := partition.NewInterior(children...)
	if err != nil {
		return err
	}
	*target = *built
	return nil
}
