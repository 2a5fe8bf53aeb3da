package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the binding the error occurred
type Phase string

const (
	PhaseAcquire Phase = "acquire" // taking ownership of a foreign handle
	PhaseRelease Phase = "release" // giving a count back
	PhaseBorrow  Phase = "borrow"  // using a borrowed view
	PhaseCall    Phase = "call"    // forwarding to a foreign entry point
	PhaseConvert Phase = "convert" // foreign integer to enum/flags
	PhaseLoad    Phase = "load"    // loading the foreign library
	PhaseBind    Phase = "bind"    // resolving entry points by symbol
)

// Kind categorizes the error
type Kind string

const (
	KindNullHandle    Kind = "null_handle"
	KindWrongMode     Kind = "wrong_mode"
	KindWrongType     Kind = "wrong_type"
	KindReleased      Kind = "released"
	KindExpired       Kind = "expired"
	KindUnsupported   Kind = "unsupported"
	KindMissingSymbol Kind = "missing_symbol"
	KindTrap          Kind = "trap"
	KindInvalidEnum   Kind = "invalid_enum"
	KindAllocation    Kind = "allocation"
	KindInvalidData   Kind = "invalid_data"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindInstantiation Kind = "instantiation"
)

// Error is the structured error type used throughout the binding.
// Precondition violations are raised as panics carrying an *Error.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // foreign type name, e.g. PangoCoverage
	Symbol string // foreign entry point, e.g. pango_coverage_ref
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(" at ")
		b.WriteString(e.Symbol)
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Precondition reports whether the error describes a programming error
// at the boundary rather than a recoverable condition.
func (e *Error) Precondition() bool {
	switch e.Kind {
	case KindNullHandle, KindWrongMode, KindWrongType, KindReleased, KindExpired, KindUnsupported:
		return true
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

// Type sets the foreign type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Symbol sets the foreign entry point name
func (b *Builder) Symbol(s string) *Builder {
	b.err.Symbol = s
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

// NullHandle creates an error for a null handle where non-null is required
func NullHandle(phase Phase, typeName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullHandle,
		Type:   typeName,
		Detail: "null handle",
	}
}

// WrongMode creates an error for an operation on a handle in the wrong ownership mode
func WrongMode(phase Phase, typeName, want, got string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWrongMode,
		Type:   typeName,
		Detail: fmt.Sprintf("requires %s ownership, handle is %s", want, got),
	}
}

// WrongType creates an error for a view of one foreign type handed to
// another type's wrapper
func WrongType(phase Phase, want, got string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWrongType,
		Type:   want,
		Detail: fmt.Sprintf("view of %s", got),
		Value:  got,
	}
}

// Released creates a use-after-release error
func Released(phase Phase, typeName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindReleased,
		Type:   typeName,
		Detail: "handle used after release",
	}
}

// Expired creates an error for a borrowed view used past its lifetime
func Expired(typeName string) *Error {
	return &Error{
		Phase:  PhaseBorrow,
		Kind:   KindExpired,
		Type:   typeName,
		Detail: "borrowed view outlived its lifetime",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, typeName, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Type:   typeName,
		Detail: what,
	}
}

// Trap creates an error for a fault raised inside a foreign entry point
func Trap(symbol string, cause error) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindTrap,
		Symbol: symbol,
		Cause:  cause,
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(value any, enumType string) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindInvalidEnum,
		Type:   enumType,
		Detail: fmt.Sprintf("invalid value %v for %s", value, enumType),
		Value:  value,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(symbol string, size uint32) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindAllocation,
		Symbol: symbol,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
	}
}

// OutOfBounds creates an error for a foreign memory access outside the arena
func OutOfBounds(symbol string, addr, n uint32) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindOutOfBounds,
		Symbol: symbol,
		Detail: fmt.Sprintf("access of %d bytes at 0x%x out of bounds", n, addr),
		Value:  addr,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Instantiation creates an instantiation error
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInstantiation,
		Detail: "instantiate module",
		Cause:  cause,
	}
}

// Load creates a library loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingSymbolsError is returned when a library does not export
// every entry point the binding needs
type MissingSymbolsError struct {
	Module  string
	Symbols []string
}

func (e *MissingSymbolsError) Error() string {
	if len(e.Symbols) == 0 {
		return "[bind] missing_symbol: no symbols specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("module %q is missing %d symbol(s):\n", e.Module, len(e.Symbols)))

	// Group by prefix for cleaner output
	byPrefix := make(map[string][]string)
	var order []string
	for _, sym := range e.Symbols {
		p := symbolPrefix(sym)
		if _, exists := byPrefix[p]; !exists {
			order = append(order, p)
		}
		byPrefix[p] = append(byPrefix[p], sym)
	}

	for _, p := range order {
		b.WriteString("\n  ")
		b.WriteString(p)
		b.WriteString(":\n")
		for _, sym := range byPrefix[p] {
			b.WriteString("    - ")
			b.WriteString(sym)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *MissingSymbolsError) Is(target error) bool {
	_, ok := target.(*MissingSymbolsError)
	return ok
}

// symbolPrefix returns the namespace part of a C symbol: "pango_coverage"
// for "pango_coverage_ref", "g" for "g_free".
func symbolPrefix(sym string) string {
	parts := strings.Split(sym, "_")
	switch {
	case len(parts) <= 2:
		return parts[0]
	case parts[0] == "pango" && len(parts) > 3 && (parts[1] == "font" || parts[1] == "cairo"):
		return strings.Join(parts[:3], "_")
	default:
		return strings.Join(parts[:2], "_")
	}
}
