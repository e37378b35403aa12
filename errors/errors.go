package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // bytecode to instruction tree
	PhaseStack  Phase = "stack"  // operand stack access
	PhaseEngine Phase = "engine" // executor stepping
	PhaseConfig Phase = "config" // configuration loading
	PhaseLoad   Phase = "load"   // reading input files
)

// Kind categorizes the error
type Kind string

const (
	KindIncomplete           Kind = "incomplete"
	KindInvalidOpcode        Kind = "invalid_opcode"
	KindInvalidType          Kind = "invalid_type"
	KindInvalidData          Kind = "invalid_data"
	KindOverflow             Kind = "overflow"
	KindUnexpectedTerminator Kind = "unexpected_terminator"
	KindNestingTooDeep       Kind = "nesting_too_deep"
	KindUnderflow            Kind = "underflow"
	KindTypeMismatch         Kind = "type_mismatch"
	KindTooLarge             Kind = "too_large"
)

// NoOffset marks an error that is not tied to a position in the input.
const NoOffset = -1

// Sentinels for errors.Is checks. They match on Kind alone.
var (
	ErrIncomplete   = &Error{Kind: KindIncomplete}
	ErrInvalidOp    = &Error{Kind: KindInvalidOpcode}
	ErrOverflow     = &Error{Kind: KindOverflow}
	ErrUnderflow    = &Error{Kind: KindUnderflow}
	ErrTypeMismatch = &Error{Kind: KindTypeMismatch}
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 && e.Phase != "" {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
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

// Is reports whether target matches this error.
// Kind must be equal; Phase is compared only when the target sets it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Offset sets the byte offset of the failure
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// Incomplete creates an error for input that ended while reading what.
func Incomplete(offset int, what string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindIncomplete,
		Offset: offset,
		Detail: fmt.Sprintf("unexpected end of input reading %s", what),
	}
}

// InvalidOpcode creates an error for an unassigned opcode in the given code space.
func InvalidOpcode(offset int, space string, code uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidOpcode,
		Offset: offset,
		Value:  code,
		Detail: fmt.Sprintf("unassigned %s opcode 0x%02x", space, code),
	}
}

// InvalidType creates an error for a byte or integer that names no type.
func InvalidType(offset int, what string, value any) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidType,
		Offset: offset,
		Value:  value,
		Detail: fmt.Sprintf("invalid %s 0x%02x", what, value),
	}
}

// InvalidData creates an invalid data error
func InvalidData(offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: detail,
	}
}

// Overflow creates an error for an integer encoding longer than its width allows.
func Overflow(offset int, bits uint, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverflow,
		Offset: offset,
		Detail: fmt.Sprintf("integer representation exceeds %d bits", bits),
		Cause:  cause,
	}
}

// UnexpectedTerminator creates an error for an end or else outside of a block body.
func UnexpectedTerminator(offset int, name string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnexpectedTerminator,
		Offset: offset,
		Detail: fmt.Sprintf("unexpected %s", name),
	}
}

// NestingTooDeep creates an error for block nesting beyond the configured limit.
func NestingTooDeep(offset, limit int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindNestingTooDeep,
		Offset: offset,
		Value:  limit,
		Detail: fmt.Sprintf("block nesting exceeds %d levels", limit),
	}
}

// Underflow creates an operand stack underflow error.
func Underflow(need, have int) *Error {
	return &Error{
		Phase:  PhaseStack,
		Kind:   KindUnderflow,
		Offset: NoOffset,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// TypeMismatch creates a tagged stack type mismatch error.
func TypeMismatch(want, got string) *Error {
	return &Error{
		Phase:  PhaseStack,
		Kind:   KindTypeMismatch,
		Offset: NoOffset,
		Detail: fmt.Sprintf("want %s, top of stack is %s", want, got),
	}
}

// TooLarge creates an error for input exceeding a configured size limit.
func TooLarge(phase Phase, size, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTooLarge,
		Offset: NoOffset,
		Value:  size,
		Detail: fmt.Sprintf("input of %d bytes exceeds limit of %d", size, limit),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}

// WithOffset returns a copy of a decode error shifted by base bytes.
// Errors that are not *Error, or carry no offset, are returned unchanged.
func WithOffset(err error, base int) error {
	var e *Error
	if base == 0 || !stderrors.As(err, &e) || e.Offset < 0 {
		return err
	}
	shifted := *e
	shifted.Offset += base
	return &shifted
}

// IsIncomplete reports whether err is a decode failure caused by running out of input.
func IsIncomplete(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Phase == PhaseDecode && e.Kind == KindIncomplete
}

// IsInvalid reports whether err is a decode failure other than running out of input.
func IsInvalid(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Phase == PhaseDecode && e.Kind != KindIncomplete
}
