package lint

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	digest "github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"

	"github.com/hdltools/svcore/cst"
	"github.com/hdltools/svcore/token"
)

// FileInput is everything a Driver needs for one file: its name, the
// immutable source buffer, the flat token array, and the parsed CST root.
type FileInput struct {
	Name   string
	Source []byte
	File   *token.File
	Tokens []token.Token
	Root   cst.Symbol
}

// Driver walks a single file's CST once, feeding every selected rule,
// and fans out across files at file granularity: one worker per file,
// no shared mutable state beyond the read-only, already-built registry.
type Driver struct {
	Registry *Registry
	Logger   *slog.Logger
}

// NewDriver returns a Driver over reg, logging through the default slog
// logger unless overridden.
func NewDriver(reg *Registry) *Driver {
	if reg == nil {
		reg = Default
	}
	return &Driver{Registry: reg, Logger: slog.Default()}
}

// RunFile instantiates ruleNames from the driver's registry, configures
// each from configs (by rule name; a missing entry means defaults), and
// runs a single context-aware pass over file, dispatching to whichever
// Handle* method each rule flavour implements. A rule configuration
// error skips only that rule. A panic from a rule's HandleSymbol is
// recovered and logged for that one symbol; the walk goes on, the rule
// keeps receiving later symbols, and the violations it recorded are
// still reported, as are the file's other rules' results.
func (d *Driver) RunFile(ctx context.Context, file FileInput, ruleNames []string, configs map[string]string) ([]Status, error) {
	rules, err := d.Registry.NewAll(ruleNames)
	if err != nil {
		return nil, err
	}

	var tokenRules []TokenRule
	var syntaxRules []SyntaxRule
	var lineRules []LineRule
	var statuses []Status
	live := make(map[Rule]bool, len(rules))

	posFile := file.File
	if posFile == nil {
		posFile = token.NewFile(file.Name, file.Source)
	}

	for _, r := range rules {
		if sa, ok := r.(SourceAware); ok {
			sa.SetSource(file.Source, posFile)
		}
		cfg := configs[r.Descriptor().Name] // zero value "" (defaults) if absent
		if err := r.Configure(cfg); err != nil {
			d.Logger.Warn("rule configuration failed, skipping",
				slog.String("rule", r.Descriptor().Name), slog.String("error", err.Error()))
			continue
		}
		live[r] = true
		if tr, ok := r.(TokenRule); ok {
			tokenRules = append(tokenRules, tr)
		}
		if sr, ok := r.(SyntaxRule); ok {
			syntaxRules = append(syntaxRules, sr)
		}
		if lr, ok := r.(LineRule); ok {
			lineRules = append(lineRules, lr)
		}
	}

	if len(syntaxRules) > 0 && file.Root != nil {
		d.walkSyntaxRules(ctx, file, syntaxRules)
	}

	for _, tr := range tokenRules {
		for _, tok := range file.Tokens {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			tr.HandleToken(tok)
		}
	}

	if len(lineRules) > 0 {
		for i, line := range strings.Split(string(file.Source), "\n") {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			for _, lr := range lineRules {
				lr.HandleLine(line, i)
			}
		}
	}

	for _, r := range rules {
		if !live[r] {
			continue
		}
		statuses = append(statuses, r.Report())
	}
	sortStatusesByRuleName(statuses)
	return statuses, nil
}

func (d *Driver) walkSyntaxRules(ctx context.Context, file FileInput, rules []SyntaxRule) {
	cst.TreeContextVisitor(file.Root, func(s cst.Symbol, tctx *cst.Context) {
		if ctx.Err() != nil {
			return
		}
		for _, r := range rules {
			d.safeHandleSymbol(file.Name, r, s, tctx)
		}
	})
}

// safeHandleSymbol recovers a panicking rule handler and logs it, so one
// rule's internal error on one symbol stops neither the walk nor the
// other rules.
func (d *Driver) safeHandleSymbol(fileName string, r SyntaxRule, s cst.Symbol, tctx *cst.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			d.Logger.Error("rule handler panicked, skipping this symbol for the rule",
				slog.String("file", fileName), slog.String("rule", r.Descriptor().Name),
				slog.Any("panic", rec))
		}
	}()
	r.HandleSymbol(s, tctx)
}

func sortStatusesByRuleName(statuses []Status) {
	for i := 1; i < len(statuses); i++ {
		for j := i; j > 0 && statuses[j].Descriptor.Name < statuses[j-1].Descriptor.Name; j-- {
			statuses[j], statuses[j-1] = statuses[j-1], statuses[j]
		}
	}
}

// RunFiles runs RunFile across files concurrently, one goroutine per
// file. Each goroutine only writes to its own slot in the
// pre-sized results slice, so no additional synchronization is needed
// beyond errgroup's own.
func (d *Driver) RunFiles(ctx context.Context, files []FileInput, ruleNames []string, configs map[string]string) ([][]Status, error) {
	results := make([][]Status, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			statuses, err := d.RunFile(gctx, f, ruleNames, configs)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
			results[i] = statuses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Fingerprint content-addresses a batch of statuses so two runs over the
// same input can be compared for equality without a deep structural
// diff — the determinism check of Property 8.
func Fingerprint(statuses []Status) digest.Digest {
	var b strings.Builder
	for _, s := range statuses {
		fmt.Fprintf(&b, "%s\n", s.Descriptor.Name)
		for _, v := range s.Violations {
			fmt.Fprintf(&b, "  %s %s\n", v.Pos, v.Message)
		}
	}
	return digest.FromString(b.String())
}
