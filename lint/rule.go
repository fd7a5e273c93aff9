package lint

import (
	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/token"
)

// Rule is implemented by every lint rule, regardless of flavour
//. Configure parses a "key=value,…" string (empty means
// defaults); an unknown key is a ConfigError.
type Rule interface {
	Descriptor() *Descriptor
	Configure(config string) error
	Report() Status
}

// TokenRule is a rule flavour driven token-by-token, in source order,
// independent of the CST.
type TokenRule interface {
	Rule
	HandleToken(tok token.Token)
}

// SyntaxRule is a rule flavour invoked for every symbol in a
// context-aware preorder traversal of the CST.
type SyntaxRule interface {
	Rule
	HandleSymbol(s cst.Symbol, ctx *cst.Context)
}

// LineRule is a rule flavour driven line-by-line over the rendered
// source text.
type LineRule interface {
	Rule
	HandleLine(lineText string, lineIndex int)
}

// SourceAware is implemented by rules that need the immutable source
// buffer (and its line/offset table) to render violation text or compute
// autofix replacement text. The driver calls SetSource once per file,
// before Configure and before any Handle* call.
type SourceAware interface {
	SetSource(src []byte, file *token.File)
}

// Base provides the Violation-accumulation boilerplate common to every
// rule: Report(d) dedups and sorts, and Add() records a finding. Rules
// embed Base and implement the flavour-specific Handle* method plus
// Descriptor/Configure, and a Report() that passes their descriptor to
// Base.Report.
type Base struct {
	violations []Violation
}

// Add records v as a finding.
func (b *Base) Add(v Violation) { b.violations = append(b.violations, v) }

// Report returns the accumulated violations, deduplicated by (token,
// message) and sorted by position.
func (b *Base) Report(d *Descriptor) Status {
	return Status{Descriptor: d, Violations: dedupAndSort(b.violations)}
}

// Reset clears accumulated violations, for rules reused across files.
func (b *Base) Reset() { b.violations = nil }
