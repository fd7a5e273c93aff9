package diagnostics

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hdltools/svcore/token"
)

// List is an accumulating, sortable, de-duplicating collection of Error
// that itself implements error. It is how a per-file driver gathers
// every recoverable diagnostic before deciding whether the run as a
// whole succeeded.
type List []Error

// Add appends err, unless err is nil.
func (p *List) Add(err Error) {
	if err == nil {
		return
	}
	*p = append(*p, err)
}

// AddNewf is shorthand for Add(Newf(...)).
func (p *List) AddNewf(kind Kind, format string, args ...any) {
	p.Add(Newf(kind, token.NoPos, format, args...))
}

// Err returns p as an error, or nil if p is empty.
func (p List) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// Error renders every contained diagnostic, one per line.
func (p List) Error() string {
	var b strings.Builder
	for i, e := range p {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", e.Position(), e.Error())
	}
	return b.String()
}

// Sort orders the list by position only; diagnostics at the same
// position are left in no particular order. Callers that need a
// tiebreak such as the rule name used for lint reports should pre-sort
// by it and use SortStable.
func (p List) Sort() {
	sort.Slice(p, func(i, j int) bool {
		return p[i].Position().Compare(p[j].Position()) < 0
	})
}

// SortStable is Sort but using a stable sort, so a prior ordering (e.g.
// by rule name) is preserved among diagnostics at the same position.
func (p List) SortStable() {
	sort.SliceStable(p, func(i, j int) bool {
		return p[i].Position().Compare(p[j].Position()) < 0
	})
}

// RemoveMultiples drops diagnostics that are duplicates — same position
// and same rendered message — of one already kept, preserving order.
// This is the generic form of the per-rule (token, message) de-dup
// every lint rule applies to its own violations.
func (p *List) RemoveMultiples() {
	p.Sort()
	seen := make(map[string]bool, len(*p))
	out := (*p)[:0]
	for _, e := range *p {
		key := e.Position().String() + "\x00" + e.Error()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	*p = out
}

// Config controls how a List is rendered by Print.
type Config struct {
	// Cwd, if set, is stripped as a prefix from filenames.
	Cwd string
	// ToSlash rewrites filename separators to '/' for stable output
	// across platforms.
	ToSlash bool
}

// Print renders every diagnostic in p to w, one per line, honoring cfg.
func Print(w io.Writer, p List, cfg Config) {
	if cfg.Cwd == "" && !cfg.ToSlash {
		for _, e := range p {
			fmt.Fprintf(w, "%s: %s\n", e.Position(), e.Error())
		}
		return
	}
	for _, e := range p {
		pos := e.Position()
		rendered := pos.String()
		if cfg.Cwd != "" {
			rendered = strings.TrimPrefix(rendered, cfg.Cwd+"/")
		}
		if cfg.ToSlash {
			rendered = filepath.ToSlash(rendered)
		}
		fmt.Fprintf(w, "%s: %s\n", rendered, e.Error())
	}
}
