// Package namingstyle implements the "module-filename"-adjacent naming
// convention rule: module names must follow a configurable case style,
// checked via the predicates in internal/namingutils, and proposes
// autofixes via github.com/iancoleman/strcase.
package namingstyle

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/internal/namingutils"
	"github.com/hdltools/svcore/internal/svlex"
	"github.com/hdltools/svcore/lint"
	"github.com/hdltools/svcore/token"
)

// Name is the rule's registry name.
const Name = "module-naming-style"

// Style names accepted by the "style" configuration key.
const (
	StyleLowerSnake = "lower_snake"
	StyleUpperCamel = "upper_camel"
)

var descriptor = &lint.Descriptor{
	Name:  Name,
	Topic: "naming",
	Desc:  "Checks that module names follow a configured case style.",
	Params: []lint.ParamDescriptor{
		{Key: "style", Default: StyleLowerSnake, Desc: "one of lower_snake, upper_camel"},
	},
}

// Rule implements lint.SyntaxRule and lint.SourceAware.
type Rule struct {
	lint.Base
	style string
	src   []byte
	file  *token.File
}

// New constructs a fresh Rule.
func New() lint.Rule { return &Rule{} }

func init() { lint.Default.Register(Name, New) }

// Descriptor returns the rule's static metadata.
func (r *Rule) Descriptor() *lint.Descriptor { return descriptor }

// Report returns the rule's deduplicated, sorted violations.
func (r *Rule) Report() lint.Status { return r.Base.Report(descriptor) }

// SetSource stores the source buffer and position file.
func (r *Rule) SetSource(src []byte, file *token.File) {
	r.src = src
	r.file = file
}

// Configure parses "style=<name>".
func (r *Rule) Configure(config string) error {
	r.style = StyleLowerSnake
	config = strings.TrimSpace(config)
	if config == "" {
		return nil
	}
	for _, kv := range strings.Split(config, ",") {
		parts := strings.SplitN(strings.TrimSpace(kv), "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "style" {
			return fmt.Errorf("%s: malformed config entry %q", Name, kv)
		}
		style := strings.TrimSpace(parts[1])
		switch style {
		case StyleLowerSnake, StyleUpperCamel:
			r.style = style
		default:
			return fmt.Errorf("%s: unknown style %q", Name, style)
		}
	}
	return nil
}

// HandleSymbol flags a module declaration whose name violates the
// configured style.
func (r *Rule) HandleSymbol(s cst.Symbol, _ *cst.Context) {
	n, ok := cst.AsNode(s)
	if !ok || n.Tag_ != svlex.ModuleNode {
		return
	}
	nameLeaf, ok := cst.AsLeaf(n.Child(0))
	if !ok {
		return
	}
	name := nameLeaf.Tok.Text(r.src)
	if r.conforms(name) {
		return
	}

	msg := fmt.Sprintf("module name %q does not follow the %s naming style", name, r.style)
	v := lint.NewViolation(token.NewPos(r.file, nameLeaf.Tok.Span.Begin), nameLeaf.Tok.Span, msg, name)

	suggestion := r.suggest(name)
	if fix, err := lint.NewAutoFix("rename to match configured style",
		lint.Edit{Range: nameLeaf.Tok.Span, Replacement: suggestion}); err == nil {
		v = v.WithAutofixes(fix)
	}
	r.Add(v)
}

func (r *Rule) conforms(name string) bool {
	switch r.style {
	case StyleUpperCamel:
		return namingutils.IsUpperCamelCaseWithDigits(name)
	default:
		return namingutils.IsLowerSnakeCaseWithDigits(name)
	}
}

func (r *Rule) suggest(name string) string {
	switch r.style {
	case StyleUpperCamel:
		return strcase.ToCamel(name)
	default:
		return strcase.ToSnake(name)
	}
}
