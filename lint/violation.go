package lint

import (
	"sort"
	"strconv"

	"github.com/hdltools/svcore/token"
	"github.com/kr/pretty"
)

// Violation records one instance of a rule's condition firing: the
// offending span, a message, a debug snapshot of the matching context,
// and zero or more alternative autofixes.
type Violation struct {
	Span            token.Span
	Pos             token.Pos
	Message         string
	ContextSnapshot string
	Autofixes       []AutoFix
}

// NewViolation builds a Violation, rendering snapshot via kr/pretty —
// this is what a rule passes for "whatever bound symbols or state
// explain the finding" so a human reviewing a report (or a failing
// test) can see why the rule fired without re-running it.
func NewViolation(pos token.Pos, span token.Span, message string, snapshot any) Violation {
	return Violation{
		Span:            span,
		Pos:             pos,
		Message:         message,
		ContextSnapshot: pretty.Sprint(snapshot),
	}
}

// WithAutofixes returns a copy of v with the given autofixes attached.
func (v Violation) WithAutofixes(fixes ...AutoFix) Violation {
	v.Autofixes = append(append([]AutoFix(nil), v.Autofixes...), fixes...)
	return v
}

// dedupKey is the (token, message) pair used to deduplicate violations
// within a single rule's report. The span identifies the token even
// when Pos is NoPos.
func (v Violation) dedupKey() string {
	return v.Pos.String() + "\x00" + strconv.Itoa(v.Span.Begin) + ":" + strconv.Itoa(v.Span.End) + "\x00" + v.Message
}

// Status is a rule's end-of-analysis result: its descriptor plus the
// deduplicated set of violations it found.
type Status struct {
	Descriptor  *Descriptor
	Violations  []Violation
}

// dedupAndSort removes (token, message) duplicates and sorts the
// remaining violations by source position, so repeated runs over the
// same input produce byte-identical reports.
func dedupAndSort(vs []Violation) []Violation {
	seen := make(map[string]bool, len(vs))
	out := make([]Violation, 0, len(vs))
	for _, v := range vs {
		k := v.dedupKey()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos.Compare(out[j].Pos) < 0 })
	return out
}
