// Package fmtcli implements the svfmt command-line tool:
// read a file, run the layout optimiser and tree reconstructor over its
// token-partition tree, and emit formatted text, with an optional
// in-place rewrite.
package fmtcli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hdltools/svcore/layout"
	"github.com/hdltools/svcore/partition"
	"github.com/hdltools/svcore/reconstruct"
)

// Unwrap turns one file's bytes into a token-partition tree and its flat
// PreFormatToken array. Producing a TokenPartitionTree from a CST is an
// external collaborator's job; this package ships a stub
// that says so, so the binary links and its layout/reconstruct pipeline
// is exercisable against any unwrapper a caller wires in by reassigning
// Unwrap before calling NewCommand.
var Unwrap = func(name string, src []byte) (*partition.Tree, []partition.PreFormatToken, error) {
	return nil, nil, fmt.Errorf("fmtcli: no token-partition-tree unwrapper wired in for %s", name)
}

// NewCommand builds the svfmt cobra command.
func NewCommand() *cobra.Command {
	var inplace bool
	var styleFile string

	cmd := &cobra.Command{
		Use:   "svfmt <file>",
		Short: "formats a SystemVerilog source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.OutOrStdout(), args[0], inplace, styleFile)
		},
	}
	cmd.Flags().BoolVar(&inplace, "inplace", false, "rewrite the file in place instead of printing to stdout")
	cmd.Flags().StringVar(&styleFile, "style", "", "path to a YAML format-style override file")
	return cmd
}

// Run formats file and either prints the result to stdout or rewrites
// the file in place.
func Run(stdout io.Writer, file string, inplace bool, styleFile string) error {
	style := partition.DefaultFormatStyle()
	if styleFile != "" {
		doc, err := os.ReadFile(styleFile)
		if err != nil {
			return fmt.Errorf("fmtcli: %w", err)
		}
		style, err = partition.LoadFormatStyle(doc)
		if err != nil {
			return fmt.Errorf("fmtcli: %w", err)
		}
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("fmtcli: %w", err)
	}

	tree, tokens, err := Unwrap(file, src)
	if err != nil {
		return err
	}

	fn, err := buildFunction(tree, tokens, src, style)
	if err != nil {
		return err
	}
	// An interior root carries no indentation of its own and is laid out
	// from column 0.
	indent := 0
	if tree.IsLeaf() {
		indent = tree.Line.IndentationSpaces
	}
	chosen := layout.Select(fn, indent)
	lines := reconstruct.Reconstruct(chosen, 0, tokens, src)
	out := render(lines, tokens, src)

	if inplace {
		return os.WriteFile(file, []byte(out+"\n"), 0o644)
	}
	fmt.Fprintln(stdout, out)
	return nil
}

// buildFunction recursively reduces a token-partition tree to a single
// LayoutFunction: a leaf becomes a Line, and an interior node combines
// its children's already-reduced functions via the policy dispatcher,
// treating the first child as the "header" the rest are laid out
// against.
func buildFunction(t *partition.Tree, tokens []partition.PreFormatToken, src []byte, style partition.FormatStyle) (layout.Function, error) {
	if t.IsLeaf() {
		span := partition.RenderWidth(tokens, t.Line.Tokens, src)
		brk := partition.Undecided
		if b := t.Line.Tokens.Begin; b >= 0 && b < len(tokens) {
			brk = tokens[b].Break
		}
		return layout.Line(*t.Line, span, spacingBefore(t, tokens), brk, style), nil
	}

	children := make([]layout.Function, len(t.Children))
	spacesBefore := make([]int, len(t.Children))
	for i, c := range t.Children {
		fn, err := buildFunction(c, tokens, src, style)
		if err != nil {
			return nil, err
		}
		children[i] = fn
		spacesBefore[i] = spacingBefore(c, tokens)
	}

	args := layout.Args{
		Children:     children[1:],
		SpacesBefore: spacesBefore[1:],
		WrapSpaces:   style.WrapSpaces,
	}
	return layout.Optimize(t.Policy(), children[0], args, style)
}

// spacingBefore returns the spacing already recorded for a subtree's
// first token, the join point a combinator needs between it and
// whatever precedes it.
func spacingBefore(t *partition.Tree, tokens []partition.PreFormatToken) int {
	begin := t.Range().Begin
	if begin < 0 || begin >= len(tokens) {
		return 0
	}
	return tokens[begin].SpacesRequired
}

// render serializes a flat sequence of UnwrappedLines into text,
// joining each line's tokens by their recorded spacing and separating
// lines with a newline plus the line's indentation.
func render(lines []partition.UnwrappedLine, tokens []partition.PreFormatToken, src []byte) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(" ", line.IndentationSpaces))
		for j := line.Tokens.Begin; j < line.Tokens.End; j++ {
			if j > line.Tokens.Begin {
				b.WriteString(strings.Repeat(" ", tokens[j].SpacesRequired))
			}
			b.WriteString(tokens[j].Tok.Text(src))
		}
	}
	return b.String()
}
