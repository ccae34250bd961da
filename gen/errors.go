package gen

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrUnsupportedType matches every UnsupportedTypeError via errors.Is.
	ErrUnsupportedType = errors.New("gen: unsupported type")

	// ErrUnsupportedConstruction matches every UnsupportedConstructionError via errors.Is.
	ErrUnsupportedConstruction = errors.New("gen: unsupported construction")

	// ErrBlockedType matches every BlockedTypeError via errors.Is.
	ErrBlockedType = errors.New("gen: blocked type")

	// ErrNoSupports is returned when a registry is built without any declared support.
	ErrNoSupports = errors.New("gen: registry has no declared supports")

	// ErrNoImplementations is returned when a declared support has no implementation.
	ErrNoImplementations = errors.New("gen: support has no implementations")

	// ErrNilConstructor is returned when an implementation is declared with a nil constructor.
	ErrNilConstructor = errors.New("gen: nil implementation constructor")

	// ErrInertInvocation is the panic value raised when behaviour is invoked on an Inert value.
	ErrInertInvocation = errors.New("gen: inert value does not support invocation")
)

// TypeName renders t for error messages, including nil.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// UnsupportedTypeError is returned when no strategy can produce the requested type.
//
// It is always recoverable by the caller: try another generator or report the
// type as a configuration gap.
type UnsupportedTypeError struct {
	// Type is the type that could not be produced.
	Type reflect.Type

	// Reason optionally narrows down why (e.g. "dependency depth exhausted").
	Reason string
}

// Error implements the error interface.
func (e UnsupportedTypeError) Error() string {
	// Example: gen: unsupported type "*pkg.Node": no usable constructor
	msg := "gen: unsupported type " + strconv.Quote(TypeName(e.Type))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target is ErrUnsupportedType.
func (e UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

// UnsupportedConstructionError is returned when a construction path was found but
// invoking it failed (panic, returned error, argument mismatch, inaccessible or
// abstract target).
type UnsupportedConstructionError struct {
	Type  reflect.Type
	Cause error
}

// Error implements the error interface.
func (e UnsupportedConstructionError) Error() string {
	msg := "gen: unsupported construction of " + strconv.Quote(TypeName(e.Type))
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying failure.
func (e UnsupportedConstructionError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrUnsupportedConstruction.
func (e UnsupportedConstructionError) Is(target error) bool {
	return target == ErrUnsupportedConstruction
}

// BlockedTypeError is returned when a type was deliberately disallowed by configuration.
type BlockedTypeError struct{ Type reflect.Type }

// Error implements the error interface.
func (e BlockedTypeError) Error() string {
	return "gen: type " + strconv.Quote(TypeName(e.Type)) + " is blocked"
}

// Is reports whether target is ErrBlockedType.
func (e BlockedTypeError) Is(target error) bool { return target == ErrBlockedType }
