package errors

import (
	"fmt"
	"strings"

	"github.com/GregorR/wabt-gepix/trap"
)

// Phase indicates where in the runtime the error occurred
type Phase string

const (
	PhaseAlloc Phase = "alloc" // memory and table creation
	PhaseInit  Phase = "init"  // instance and segment initialisation
	PhaseExec  Phase = "exec"  // translated code execution
	PhaseTool  Phase = "tool"  // embedder tooling
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds       Kind = "out_of_bounds"
	KindIntOverflow       Kind = "integer_overflow"
	KindDivByZero         Kind = "division_by_zero"
	KindInvalidConversion Kind = "invalid_conversion"
	KindUnreachable       Kind = "unreachable"
	KindCallIndirect      Kind = "call_indirect"
	KindExhaustion        Kind = "exhaustion"
	KindInvalidInput      Kind = "invalid_input"
	KindUnsupported       Kind = "unsupported"
)

// Error is the structured error type used at the embedder boundary.
// Traps never allocate one on the hot path; FromTrap converts a caught
// trap when the embedder wants the structured form.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
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

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
	}
}

// trapKinds maps each trap kind to its embedder identifier. The kind is
// guaranteed stable; the textual form is this package's choice.
var trapKinds = map[trap.Kind]Kind{
	trap.OOB:               KindOutOfBounds,
	trap.IntOverflow:       KindIntOverflow,
	trap.DivByZero:         KindDivByZero,
	trap.InvalidConversion: KindInvalidConversion,
	trap.Unreachable:       KindUnreachable,
	trap.CallIndirect:      KindCallIndirect,
	trap.Exhaustion:        KindExhaustion,
}

// FromTrap converts a caught trap into the structured form.
func FromTrap(t *trap.Error) *Error {
	return &Error{
		Phase: PhaseExec,
		Kind:  trapKinds[t.Kind],
		Cause: t.Cause,
	}
}
