// Package svlex is a minimal, hand-written lexer for the handful of
// SystemVerilog constructs the exemplar lint rules need to build test
// fixtures against: sized number literals and generate-block labels. It
// is deliberately not a general SystemVerilog tokenizer — a real
// front end is out of scope for this module — and exists purely so this
// module's tests can construct realistic cst.Symbol trees without one.
package svlex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/token"
)

// Node tags used by the fixtures and exemplar rules in this module.
// A real grammar's enumeration would be far larger; these are scoped to
// exactly what lint/rules exercises.
const (
	NumberNode cst.NodeTag = iota + 1
	GenerateBlockNode
	GenerateRegionNode
	ModuleNode
	NetDeclNode
)

// Token kinds specific to number literals, layered on top of the generic
// kinds in package token.
const (
	WidthLiteral token.Kind = iota + 100
	BasedLiteralTok
)

// BasedNumber is the decoded form of a based-literal token: base
// character, signedness, and the literal digits with underscores
// removed.
type BasedNumber struct {
	Base       byte // one of 'b', 'o', 'h', 'd'
	Signedness bool
	Literal    string
	OK         bool
}

// ParseBasedNumber parses "baseSign" (e.g. "'sh", "'B") and "digits" (the
// raw digit text, possibly underscore-separated) the way
// verilog/CST/numbers.h's BasedNumber constructor does.
func ParseBasedNumber(baseSign, digits string) BasedNumber {
	if len(baseSign) < 2 || baseSign[0] != '\'' {
		return BasedNumber{}
	}
	rest := baseSign[1:]
	signed := false
	if len(rest) > 0 && (rest[0] == 's' || rest[0] == 'S') {
		signed = true
		rest = rest[1:]
	}
	if len(rest) != 1 {
		return BasedNumber{}
	}
	base := strings.ToLower(rest)[0]
	switch base {
	case 'b', 'o', 'h', 'd':
	default:
		return BasedNumber{}
	}
	lit := strings.ReplaceAll(digits, "_", "")
	if lit == "" {
		return BasedNumber{}
	}
	return BasedNumber{Base: base, Signedness: signed, Literal: lit, OK: true}
}

// BitsPerDigit returns how many bits one digit of base b represents,
// or 0 for decimal (where there is no fixed per-digit width) or an
// unrecognized base.
func BitsPerDigit(base byte) int {
	switch base {
	case 'b':
		return 1
	case 'o':
		return 3
	case 'h':
		return 4
	default:
		return 0
	}
}

// BuildNumberLiteral constructs the small CST fragment the exemplar rule
// expects for an expression like "32'hAB": a NumberNode carrying a width
// leaf (decimal text, or nil when the literal has no explicit width) and
// a based-literal leaf whose text is "'h" (or similar) concatenated with
// the raw digit text. offset is the byte offset of the literal's first
// character within the eventual source buffer, used to compute spans.
func BuildNumberLiteral(widthText string, baseSign string, digits string, offset int) (*cst.Node, string) {
	var widthLeaf cst.Symbol
	pos := offset
	var src strings.Builder
	if widthText != "" {
		widthLeaf = cst.NewLeaf(token.Token{Kind: WidthLiteral, Span: token.Span{Begin: pos, End: pos + len(widthText)}})
		src.WriteString(widthText)
		pos += len(widthText)
	}
	basedText := baseSign + digits
	basedLeaf := cst.NewLeaf(token.Token{Kind: BasedLiteralTok, Span: token.Span{Begin: pos, End: pos + len(basedText)}})
	src.WriteString(basedText)
	return cst.NewNode(NumberNode, widthLeaf, basedLeaf), src.String()
}

// BuildGenerateBlock constructs a GenerateBlockNode fixture: an optional
// begin label (an Identifier leaf) followed by a body leaf standing in
// for the block's statements. Pass label "" to build an unlabeled block.
func BuildGenerateBlock(label string, offset int) (*cst.Node, string) {
	var labelLeaf cst.Symbol
	pos := offset
	var src strings.Builder
	if label != "" {
		labelLeaf = cst.NewLeaf(token.Token{Kind: token.Identifier, Span: token.Span{Begin: pos, End: pos + len(label)}})
		src.WriteString(label)
		pos += len(label)
	}
	const body = ";"
	bodyLeaf := cst.NewLeaf(token.Token{Kind: token.Invalid, Span: token.Span{Begin: pos, End: pos + len(body)}})
	src.WriteString(body)
	return cst.NewNode(GenerateBlockNode, labelLeaf, bodyLeaf), src.String()
}

// BuildModuleDecl constructs a ModuleNode fixture wrapping a single
// Identifier leaf standing in for the module's name.
func BuildModuleDecl(name string, offset int) (*cst.Node, string) {
	nameLeaf := cst.NewLeaf(token.Token{Kind: token.Identifier, Span: token.Span{Begin: offset, End: offset + len(name)}})
	return cst.NewNode(ModuleNode, nameLeaf), name
}

// ParseWidth extracts the integer width from a WidthLiteral leaf's text,
// returning ok=false if the leaf is nil or its text is not a valid
// non-negative decimal integer.
func ParseWidth(widthLeaf cst.Symbol, src []byte) (int, bool) {
	l, ok := cst.AsLeaf(widthLeaf)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(l.Tok.Text(src))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// SplitBasedLiteralText splits a based-literal leaf's text ("'shFF")
// into its base-sign prefix ("'sh") and digit suffix ("FF").
func SplitBasedLiteralText(text string) (baseSign, digits string, err error) {
	i := strings.IndexByte(text, '\'')
	if i != 0 {
		return "", "", fmt.Errorf("svlex: based literal %q does not start with '", text)
	}
	j := 1
	if j < len(text) && (text[j] == 's' || text[j] == 'S') {
		j++
	}
	if j >= len(text) {
		return "", "", fmt.Errorf("svlex: based literal %q missing base character", text)
	}
	j++
	return text[:j], text[j:], nil
}
