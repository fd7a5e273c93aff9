// Package undersizedbinary implements the "undersized-binary-literal"
// rule: it flags a based literal whose digit count implies fewer bits
// than its declared constant width.
package undersizedbinary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/internal/svlex"
	"github.com/hdltools/svcore/lint"
	"github.com/hdltools/svcore/token"
)

// Name is the rule's registry name.
const Name = "undersized-binary-literal"

var descriptor = &lint.Descriptor{
	Name:  Name,
	Topic: "numbers",
	Desc:  "Checks that a based literal's digit count is not smaller than its declared width.",
	Params: []lint.ParamDescriptor{
		{Key: "bin", Default: "true", Desc: "flag undersized binary ('b) literals"},
		{Key: "oct", Default: "false", Desc: "flag undersized octal ('o) literals"},
		{Key: "hex", Default: "false", Desc: "flag undersized hex ('h) literals"},
		{Key: "lint_zero", Default: "false", Desc: "also flag all-zero digit strings"},
		{Key: "autofix", Default: "true", Desc: "offer autofixes"},
	},
}

// Rule implements lint.SyntaxRule.
type Rule struct {
	lint.Base

	bin, oct, hex, lintZero, autofix bool
	src                              []byte
	file                             *token.File
}

// New constructs a fresh Rule; it is registered under Name in
// lint.Default by this package's init function.
func New() lint.Rule { return &Rule{} }

func init() { lint.Default.Register(Name, New) }

// Descriptor returns the rule's static metadata.
func (r *Rule) Descriptor() *lint.Descriptor { return descriptor }

// Report returns the rule's deduplicated, sorted violations.
func (r *Rule) Report() lint.Status { return r.Base.Report(descriptor) }

// SetSource stores the source buffer and position file used to read
// literal text and render violation positions.
func (r *Rule) SetSource(src []byte, file *token.File) {
	r.src = src
	r.file = file
}

// Configure parses "key=value,…"; an empty string selects the defaults
// in descriptor.Params.
func (r *Rule) Configure(config string) error {
	r.bin, r.oct, r.hex, r.lintZero, r.autofix = true, false, false, false, true
	if strings.TrimSpace(config) == "" {
		return nil
	}
	for _, kv := range strings.Split(config, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("%s: malformed config entry %q", Name, kv)
		}
		key, val := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%s: invalid bool for %q: %w", Name, key, err)
		}
		switch key {
		case "bin":
			r.bin = b
		case "oct":
			r.oct = b
		case "hex":
			r.hex = b
		case "lint_zero":
			r.lintZero = b
		case "autofix":
			r.autofix = b
		default:
			return fmt.Errorf("%s: unknown config key %q", Name, key)
		}
	}
	return nil
}

// HandleSymbol inspects every Number node for an undersized based
// literal.
func (r *Rule) HandleSymbol(s cst.Symbol, _ *cst.Context) {
	n, ok := cst.AsNode(s)
	if !ok || n.Tag_ != svlex.NumberNode {
		return
	}
	width, haveWidth := svlex.ParseWidth(n.Child(0), r.src)
	basedLeaf, ok := cst.AsLeaf(n.Child(1))
	if !haveWidth || !ok {
		return
	}
	text := basedLeaf.Tok.Text(r.src)
	baseSign, digits, err := svlex.SplitBasedLiteralText(text)
	if err != nil {
		return
	}
	bn := svlex.ParseBasedNumber(baseSign, digits)
	if !bn.OK || bn.Base == 'd' {
		return
	}
	if !r.baseEnabled(bn.Base) {
		return
	}
	if bn.Literal == "?" {
		return
	}
	bitsPerDigit := svlex.BitsPerDigit(bn.Base)
	inferred := len(bn.Literal) * bitsPerDigit
	if inferred >= width {
		return
	}
	if bn.Literal == "0" && !r.lintZero {
		return
	}

	widthLeaf, _ := cst.AsLeaf(n.Child(0))
	span := widthLeaf.Tok.Span.Union(basedLeaf.Tok.Span)
	msg := fmt.Sprintf("literal has %d inferred bits but is declared %d bits wide", inferred, width)
	v := lint.NewViolation(token.NewPos(r.file, span.Begin), span, msg, bn)

	if r.autofix {
		v = v.WithAutofixes(r.buildAutofixes(widthLeaf, basedLeaf, bn, inferred)...)
	}
	r.Add(v)
}

func (r *Rule) baseEnabled(base byte) bool {
	switch base {
	case 'b':
		return r.bin
	case 'o':
		return r.oct
	case 'h':
		return r.hex
	default:
		return false
	}
}

func (r *Rule) buildAutofixes(widthLeaf, basedLeaf *cst.Leaf, bn svlex.BasedNumber, inferred int) []lint.AutoFix {
	var fixes []lint.AutoFix

	// Pad with leading zeroes so the literal's digit count matches W.
	if padded, ok := padLeadingZeroes(bn, widthLeaf, basedLeaf, r.src); ok {
		fixes = append(fixes, padded)
	}

	// Replace with unsized '0 when the literal is "0" and unsigned.
	if bn.Literal == "0" && !bn.Signedness {
		full := widthLeaf.Tok.Span.Union(basedLeaf.Tok.Span)
		if fix, err := lint.NewAutoFix("replace with unsized '0",
			lint.Edit{Range: full, Replacement: "'0"}); err == nil {
			fixes = append(fixes, fix)
		}
	}

	// Replace with an equivalent decimal literal when digits is a single
	// decimal digit.
	if len(bn.Literal) == 1 && bn.Literal[0] >= '0' && bn.Literal[0] <= '9' {
		prefix := "'d"
		if bn.Signedness {
			prefix = "'sd"
		}
		full := widthLeaf.Tok.Span.Union(basedLeaf.Tok.Span)
		widthText := widthLeaf.Tok.Text(r.src)
		if fix, err := lint.NewAutoFix("replace with decimal literal",
			lint.Edit{Range: full, Replacement: widthText + prefix + bn.Literal}); err == nil {
			fixes = append(fixes, fix)
		}
	}

	// Rewrite the declared width to the inferred size.
	if fix, err := lint.NewAutoFix("rewrite width to inferred size",
		lint.Edit{Range: widthLeaf.Tok.Span, Replacement: strconv.Itoa(inferred)}); err == nil {
		fixes = append(fixes, fix)
	}

	return fixes
}

func padLeadingZeroes(bn svlex.BasedNumber, widthLeaf, basedLeaf *cst.Leaf, src []byte) (lint.AutoFix, bool) {
	width, ok := svlex.ParseWidth(widthLeaf, src)
	if !ok {
		return lint.AutoFix{}, false
	}
	bitsPerDigit := svlex.BitsPerDigit(bn.Base)
	if bitsPerDigit == 0 {
		return lint.AutoFix{}, false
	}
	wantDigits := (width + bitsPerDigit - 1) / bitsPerDigit
	if wantDigits <= len(bn.Literal) {
		return lint.AutoFix{}, false
	}
	padded := strings.Repeat("0", wantDigits-len(bn.Literal)) + bn.Literal
	baseSign, _, err := svlex.SplitBasedLiteralText(basedLeaf.Tok.Text(src))
	if err != nil {
		return lint.AutoFix{}, false
	}
	fix, err := lint.NewAutoFix("left-expand leading zeroes",
		lint.Edit{Range: basedLeaf.Tok.Span, Replacement: baseSign + padded})
	if err != nil {
		return lint.AutoFix{}, false
	}
	return fix, true
}
