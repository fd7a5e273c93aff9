// Package align implements the tabular-alignment engine that pads
// columns of related rows so their cells line up
// visually, independent of the layout optimiser.
package align

import (
	"fmt"
	"sort"

	"github.com/hdltools/svcore/partition"
)

// Flush says whether a column's content hugs its left or right edge
// within the column's width.
type Flush int

const (
	FlushLeft Flush = iota
	FlushRight
)

// Cell is one row's contribution to one column: the index into the
// file's flat token array of the cell's token, how it flushes within
// the column, and the spacing required before the column's delimiter
// (if any).
type Cell struct {
	TokenIndex    int
	Flush         Flush
	BorderSpacing int
}

// ColumnPositionTree maps a dotted column path (e.g. "port.direction")
// to that row's Cell for the path. A row need not populate every path
// every other row in its group does; paths are unioned before widths
// are computed.
type ColumnPositionTree map[string]Cell

// ColumnSchemaScanner splits one row into its ColumnPositionTree. Each
// alignable list kind (port list, parameter list, ...) gets its own
// scanner.
type ColumnSchemaScanner func(row partition.UnwrappedLine, tokens []partition.PreFormatToken, src []byte) (ColumnPositionTree, error)

// RowIgnorePredicate reports whether a row should be excluded from
// scanning and left exactly as formatted (comments, preprocessor
// directives, forced-break rows).
type RowIgnorePredicate func(row partition.UnwrappedLine, tokens []partition.PreFormatToken, src []byte) bool

// Policy selects how a group of rows is aligned.
type Policy int

const (
	Align Policy = iota
	FlushLeftOnly
	Preserve
	Infer
)

func (p Policy) String() string {
	switch p {
	case Align:
		return "Align"
	case FlushLeftOnly:
		return "FlushLeft"
	case Preserve:
		return "Preserve"
	case Infer:
		return "Infer"
	default:
		return "Unknown"
	}
}

// raggedBadnessThreshold is the minimum spread, as a fraction of the
// widest cell in a column, before Infer decides a group is ragged
// enough to be worth aligning.
const raggedBadnessThreshold = 0.25

// Group runs the full alignment pipeline over rows, mutating tokens'
// SpacesRequired in place to pad cells into columns.
// It leaves tokens untouched, returning nil, whenever alignment would
// push any row past style.ColumnLimit, or when policy is Preserve, or
// (under Infer) the group isn't ragged enough to bother.
func Group(rows []partition.UnwrappedLine, scanner ColumnSchemaScanner, ignore RowIgnorePredicate, tokens []partition.PreFormatToken, src []byte, style partition.FormatStyle, policy Policy) error {
	if policy == Preserve {
		return nil
	}
	for _, sub := range splitOnBlankLines(rows) {
		if err := alignSubgroup(sub, scanner, ignore, tokens, src, style, policy); err != nil {
			return err
		}
	}
	return nil
}

// splitOnBlankLines partitions contiguous rows into subgroups at any
// gap between one row's last token and the next row's first — a blank
// source line leaves such a gap in the flat token array.
func splitOnBlankLines(rows []partition.UnwrappedLine) [][]partition.UnwrappedLine {
	var groups [][]partition.UnwrappedLine
	var cur []partition.UnwrappedLine
	prevEnd := -1
	for _, r := range rows {
		if prevEnd >= 0 && r.Tokens.Begin > prevEnd && len(cur) > 0 {
			groups = append(groups, cur)
			cur = nil
		}
		cur = append(cur, r)
		prevEnd = r.Tokens.End
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

type scannedRow struct {
	row  partition.UnwrappedLine
	cols ColumnPositionTree
}

func alignSubgroup(rows []partition.UnwrappedLine, scanner ColumnSchemaScanner, ignore RowIgnorePredicate, tokens []partition.PreFormatToken, src []byte, style partition.FormatStyle, policy Policy) error {
	var participants []scannedRow
	for _, r := range rows {
		if ignore != nil && ignore(r, tokens, src) {
			continue
		}
		cols, err := scanner(r, tokens, src)
		if err != nil {
			return fmt.Errorf("align: scanning row [%d,%d): %w", r.Tokens.Begin, r.Tokens.End, err)
		}
		participants = append(participants, scannedRow{row: r, cols: cols})
	}
	if len(participants) < 2 {
		return nil
	}

	paths := unionPaths(participants)
	widths := columnWidths(participants, paths, tokens, src)

	if policy == Infer && !isRagged(participants, paths, widths, tokens) {
		return nil
	}

	flushLeft := policy == FlushLeftOnly
	edits := map[int]int{}
	for _, p := range participants {
		rowWidth := 0
		carry := 0 // unconsumed right-padding from the previous flush-left column
		for i, path := range paths {
			cell, ok := p.cols[path]
			if !ok {
				continue
			}
			contentWidth := tokens[cell.TokenIndex].Tok.Span.Len()
			pad := widths[path] - contentWidth
			flush := cell.Flush
			if flushLeft {
				flush = FlushLeft
			}
			spaces := carry
			carry = 0
			if i > 0 {
				spaces += cell.BorderSpacing
			}
			if flush == FlushRight {
				spaces += pad
			} else {
				carry = pad
			}
			if i > 0 {
				edits[cell.TokenIndex] = spaces
			}
			rowWidth += spaces + contentWidth
		}
		rowWidth += carry
		if style.ColumnLimit > 0 && p.row.IndentationSpaces+rowWidth > style.ColumnLimit {
			return nil // revert: discard every pending edit in this subgroup
		}
	}

	for idx, spaces := range edits {
		tokens[idx].SpacesRequired = spaces
	}
	return nil
}

func unionPaths(rows []scannedRow) []string {
	seen := map[string]bool{}
	var paths []string
	for _, r := range rows {
		for path := range r.cols {
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}
	sort.Strings(paths)
	return paths
}

func columnWidths(rows []scannedRow, paths []string, tokens []partition.PreFormatToken, src []byte) map[string]int {
	widths := make(map[string]int, len(paths))
	for _, path := range paths {
		max := 0
		for _, r := range rows {
			cell, ok := r.cols[path]
			if !ok {
				continue
			}
			if w := tokens[cell.TokenIndex].Tok.Span.Len(); w > max {
				max = w
			}
		}
		widths[path] = max
	}
	return widths
}

// isRagged estimates whether a group's natural (unaligned) cell widths
// are uneven enough to be worth aligning: for each column, the gap
// between its narrowest and widest participating cell, relative to its
// widest, must clear raggedBadnessThreshold for at least one column.
func isRagged(rows []scannedRow, paths []string, widths map[string]int, tokens []partition.PreFormatToken) bool {
	for _, path := range paths {
		max := widths[path]
		if max == 0 {
			continue
		}
		min := max
		for _, r := range rows {
			cell, ok := r.cols[path]
			if !ok {
				continue
			}
			if w := tokens[cell.TokenIndex].Tok.Span.Len(); w < min {
				min = w
			}
		}
		if float64(max-min)/float64(max) >= raggedBadnessThreshold {
			return true
		}
	}
	return false
}
