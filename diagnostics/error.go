// Package diagnostics implements the structured error model shared by the
// parser-tolerance path, the lint driver, and the layout optimiser: a
// small Error interface, a position-aware constructor set, and a list
// type that accumulates, sorts, and de-duplicates.
package diagnostics

import (
	"fmt"

	"github.com/hdltools/svcore/token"
)

// Kind classifies a diagnostic by its error-handling policy. Most kinds
// are recoverable — the pipeline continues past
// them — except Fatal, which aborts only the current file.
type Kind int

const (
	// SyntaxError is a parser diagnostic on a partial tree; analysis
	// continues on what the parser produced.
	SyntaxError Kind = iota
	// ConfigError is a rule configuration failure; the offending rule is
	// skipped, others run.
	ConfigError
	// IOError is a failure to open an include file; analysis continues
	// without that scope.
	IOError
	// AutofixDropped records an autofix that could not be safely applied
	// (overlapping edits, a preprocessor boundary); the violation itself
	// still reports.
	AutofixDropped
	// Fatal covers matcher internal errors and layout optimiser
	// invariant violations: programming errors that abort processing of
	// the current file but must not take down other files in a batch.
	Fatal
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "syntax"
	case ConfigError:
		return "config"
	case IOError:
		return "io"
	case AutofixDropped:
		return "autofix-dropped"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Message is a delayed-formatted error message: the format string and its
// arguments are kept apart so callers can inspect them (for structured
// logging or de-duplication) without forcing a render.
type Message struct {
	format string
	args   []any
}

// NewMessagef builds a Message from a format string and arguments.
func NewMessagef(format string, args ...any) Message {
	return Message{format: format, args: args}
}

// Msg returns the message's format string and arguments.
func (m *Message) Msg() (string, []any) { return m.format, m.args }

// Error renders the formatted message.
func (m *Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

// Error is the interface every diagnostic in this module implements:
// a position-aware, path-aware error that can report the input positions
// that contributed to it (for errors synthesized from more than one
// source location, like a merged autofix conflict).
type Error interface {
	error
	Kind() Kind
	Position() token.Pos
	InputPositions() []token.Pos
	Path() []string
	Msg() (format string, args []any)
}

type baseError struct {
	Message
	kind  Kind
	pos   token.Pos
	path  []string
	inputs []token.Pos
}

func (e *baseError) Kind() Kind                   { return e.kind }
func (e *baseError) Position() token.Pos          { return e.pos }
func (e *baseError) Path() []string               { return e.path }
func (e *baseError) InputPositions() []token.Pos {
	if e.inputs != nil {
		return e.inputs
	}
	if e.pos.IsValid() {
		return []token.Pos{e.pos}
	}
	return nil
}

// Newf builds an Error of the given kind at position p.
func Newf(kind Kind, p token.Pos, format string, args ...any) Error {
	return &baseError{Message: NewMessagef(format, args...), kind: kind, pos: p}
}

// Wrapf builds an Error of the given kind at position p, keeping a
// reference to the causing error for Unwrap.
func Wrapf(kind Kind, cause error, p token.Pos, format string, args ...any) Error {
	return &wrapped{baseError: baseError{Message: NewMessagef(format, args...), kind: kind, pos: p}, cause: cause}
}

type wrapped struct {
	baseError
	cause error
}

func (e *wrapped) Unwrap() error { return e.cause }

// WithPath returns a copy of err with its Path set, used to annotate an
// error with e.g. the rule name or the CST path that produced it.
func WithPath(err Error, path ...string) Error {
	switch v := err.(type) {
	case *baseError:
		c := *v
		c.path = path
		return &c
	case *wrapped:
		c := *v
		c.path = path
		return &c
	default:
		return err
	}
}
