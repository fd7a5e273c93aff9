package align

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdltools/svcore/partition"
	"github.com/hdltools/svcore/token"
)

// twoColumnScanner treats every row as a (name, value) pair spanning
// two tokens, used to exercise the pipeline without a real
// SystemVerilog list kind.
func twoColumnScanner(row partition.UnwrappedLine, tokens []partition.PreFormatToken, src []byte) (ColumnPositionTree, error) {
	return ColumnPositionTree{
		"name":  {TokenIndex: row.Tokens.Begin, Flush: FlushLeft, BorderSpacing: 1},
		"value": {TokenIndex: row.Tokens.Begin + 1, Flush: FlushLeft, BorderSpacing: 1},
	}, nil
}

func buildTokens(spans ...[2]int) []partition.PreFormatToken {
	toks := make([]partition.PreFormatToken, len(spans))
	for i, s := range spans {
		toks[i] = partition.PreFormatToken{Tok: token.Token{Span: token.Span{Begin: s[0], End: s[1]}}}
	}
	return toks
}

func TestGroupAlignsRaggedColumn(t *testing.T) {
	// row 0: "a" (1) then "longvalue" (9)
	// row 1: "ab" (2) then "v" (1)
	tokens := buildTokens([2]int{0, 1}, [2]int{2, 11}, [2]int{12, 14}, [2]int{15, 16})
	rows := []partition.UnwrappedLine{
		{Tokens: partition.TokenRange{Begin: 0, End: 2}},
		{Tokens: partition.TokenRange{Begin: 2, End: 4}},
	}
	style := partition.FormatStyle{ColumnLimit: 100}
	err := Group(rows, twoColumnScanner, nil, tokens, nil, style, Align)
	qt.Assert(t, qt.IsNil(err))
	// the second row's "value" column token should be padded to line up
	// with the widest ("name") column's content.
	qt.Assert(t, qt.IsTrue(tokens[3].SpacesRequired >= 1))
}

func TestGroupSkipsWhenOverLimit(t *testing.T) {
	// Same rows as TestGroupAlignsRaggedColumn; aligned, they would not
	// fit in 10 columns, so the group is left unaligned.
	tokens := buildTokens([2]int{0, 1}, [2]int{2, 11}, [2]int{12, 14}, [2]int{15, 16})
	rows := []partition.UnwrappedLine{
		{Tokens: partition.TokenRange{Begin: 0, End: 2}},
		{Tokens: partition.TokenRange{Begin: 2, End: 4}},
	}
	style := partition.FormatStyle{ColumnLimit: 10}
	err := Group(rows, twoColumnScanner, nil, tokens, nil, style, Align)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tokens[1].SpacesRequired, 0))
	qt.Assert(t, qt.Equals(tokens[3].SpacesRequired, 0))
}

func TestGroupHonoursPreservePolicy(t *testing.T) {
	tokens := buildTokens([2]int{0, 1}, [2]int{2, 11})
	rows := []partition.UnwrappedLine{{Tokens: partition.TokenRange{Begin: 0, End: 2}}}
	before := tokens[1].SpacesRequired
	style := partition.FormatStyle{ColumnLimit: 100}
	err := Group(rows, twoColumnScanner, nil, tokens, nil, style, Preserve)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tokens[1].SpacesRequired, before))
}

func TestSplitOnBlankLines(t *testing.T) {
	rows := []partition.UnwrappedLine{
		{Tokens: partition.TokenRange{Begin: 0, End: 2}},
		{Tokens: partition.TokenRange{Begin: 2, End: 4}},
		{Tokens: partition.TokenRange{Begin: 10, End: 12}},
	}
	groups := splitOnBlankLines(rows)
	qt.Assert(t, qt.HasLen(groups, 2))
	qt.Assert(t, qt.HasLen(groups[0], 2))
	qt.Assert(t, qt.HasLen(groups[1], 1))
}
