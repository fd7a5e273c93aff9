package lint

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/hdltools/svcore/token"
)

// Edit is a single source replacement: replace the bytes in Range with
// Replacement. Edits within one AutoFix must be non-overlapping.
type Edit struct {
	Range       token.Span
	Replacement string
}

// AutoFix is one machine-applicable remediation alternative for a
// LintViolation. Multiple AutoFixes on the same violation are
// alternatives, not a composition — a consumer applies at most one.
type AutoFix struct {
	// ID uniquely identifies this fix within a run, stable across
	// serialization to a wire format (e.g. so an editor can ask to apply
	// "fix 3 of violation X" without re-sending the edit set).
	ID          string
	Description string
	Edits       []Edit
}

// NewAutoFix builds an AutoFix after validating that edits are
// non-overlapping, sorted by source position. A failure here means the
// fix is inapplicable: the caller should drop the fix and keep
// reporting the violation without it.
func NewAutoFix(description string, edits ...Edit) (AutoFix, error) {
	sorted := append([]Edit(nil), edits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Range.Begin < sorted[j].Range.Begin })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Range.Begin < sorted[i-1].Range.End {
			return AutoFix{}, fmt.Errorf("lint: overlapping edits in autofix %q: [%d,%d) and [%d,%d)",
				description, sorted[i-1].Range.Begin, sorted[i-1].Range.End, sorted[i].Range.Begin, sorted[i].Range.End)
		}
	}
	return AutoFix{ID: uuid.NewString(), Description: description, Edits: sorted}, nil
}

// Apply returns src with every edit applied. It assumes Edits have
// already been validated non-overlapping and sorted (as NewAutoFix
// guarantees).
func (f AutoFix) Apply(src []byte) []byte {
	out := make([]byte, 0, len(src))
	last := 0
	for _, e := range f.Edits {
		out = append(out, src[last:e.Range.Begin]...)
		out = append(out, e.Replacement...)
		last = e.Range.End
	}
	out = append(out, src[last:]...)
	return out
}
