// Package generatelabel implements the "generate-label" rule: every generate block must carry a begin label.
package generatelabel

import (
	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/internal/svlex"
	"github.com/hdltools/svcore/lint"
	"github.com/hdltools/svcore/match"
	"github.com/hdltools/svcore/token"
)

// Name is the rule's registry name.
const Name = "generate-label"

const message = "All generate block statements must have a label"

var descriptor = &lint.Descriptor{
	Name:  Name,
	Topic: "generate-statements",
	Desc:  "Checks that every generate block statement is labeled.",
}

// hasBeginLabel matches a generate block carrying an Identifier leaf as
// a direct child, the position svlex.BuildGenerateBlock reserves for a
// block's begin label.
func hasBeginLabel() *match.Matcher {
	return match.PathMatcher(cst.SymbolTag{Kind: cst.KindLeaf, Value: int(token.Identifier)})
}

// blockMatcher matches an unlabeled generate block.
func blockMatcher() *match.Matcher {
	return match.NodeMatcher(svlex.GenerateBlockNode, match.UnlessMatcher(hasBeginLabel()))
}

// Rule implements lint.SyntaxRule. It carries no configuration.
type Rule struct {
	lint.Base
}

// New constructs a fresh Rule.
func New() lint.Rule { return &Rule{} }

func init() { lint.Default.Register(Name, New) }

// Descriptor returns the rule's static metadata.
func (r *Rule) Descriptor() *lint.Descriptor { return descriptor }

// Report returns the rule's deduplicated, sorted violations.
func (r *Rule) Report() lint.Status { return r.Base.Report(descriptor) }

// Configure accepts only the empty (defaults) configuration.
func (r *Rule) Configure(config string) error {
	return lint.RejectNonEmptyConfig(Name, config)
}

// HandleSymbol flags every generate block lacking a begin label.
func (r *Rule) HandleSymbol(s cst.Symbol, ctx *cst.Context) {
	mgr := match.NewBoundSymbolManager()
	if !blockMatcher().Matches(s, mgr) {
		return
	}
	span := cst.StringSpanOf(s)
	r.Add(lint.NewViolation(token.NoPos, span, message, ctx))
}
