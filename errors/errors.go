package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred.
type Phase string

const (
	PhaseAssemble Phase = "assemble" // building the module context from sections
	PhaseLower    Phase = "lower"    // stack-to-tree reconstruction
	PhaseEmit     Phase = "emit"     // source text generation
)

// Kind categorizes the error.
type Kind string

const (
	// KindInvalid marks a malformed or stack-inconsistent function body:
	// operand underflow, a trailing value count other than 0 or 1, an
	// unresolved branch depth, or a data segment with a non-constant
	// offset expression.
	KindInvalid Kind = "invalid"
	// KindUnimplemented marks an operator or module feature this tool
	// does not lower, such as SIMD, tables, globals, or the component
	// model.
	KindUnimplemented Kind = "unimplemented"
)

// Error is the structured error type produced by the assemble, lower,
// and emit phases.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location path (e.g. function index, then block depth).
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value, typically a raw opcode byte.
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Invalid builds a stack-discipline error for the named function, e.g.
// operand underflow or an unresolved branch target.
func Invalid(path []string, detail string, args ...any) *Error {
	return New(PhaseLower, KindInvalid).Path(path...).Detail(detail, args...).Build()
}

// Unimplemented builds an error for an operator or module feature this
// tool does not lower, naming the opcode that triggered it.
func Unimplemented(phase Phase, path []string, op string, opcode any) *Error {
	return New(phase, KindUnimplemented).Path(path...).Value(opcode).Detail("unsupported operator %s", op).Build()
}
