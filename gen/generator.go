package gen

import (
	"fmt"
	"reflect"
)

// Generator is the unit of pluggability: it declares support for a type and
// produces a Value for it.
//
// Supports and Generate may be called in any order. Generate must fail with an
// UnsupportedTypeError whenever Supports would return false for the same type.
type Generator interface {
	Supports(t reflect.Type) bool
	Generate(t reflect.Type) (Value, error)
}

// Priority breaks ties among generators matching the same type.
// Lower values are tried first.
type Priority int

const (
	First   Priority = -100
	Default Priority = 0
	Last    Priority = 100
)

// String implements fmt.Stringer.
func (p Priority) String() string {
	switch p {
	case First:
		return "first"
	case Default:
		return "default"
	case Last:
		return "last"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Prioritized is implemented by generators that want a non-default Priority.
type Prioritized interface {
	Priority() Priority
}

// PriorityOf returns g's Priority, or Default if g does not declare one.
func PriorityOf(g Generator) Priority {
	if p, ok := g.(Prioritized); ok {
		return p.Priority()
	}
	return Default
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Generate produces a value for T with g and returns it typed.
func Generate[T any](g Generator) (T, error) {
	var zero T
	t := TypeOf[T]()
	v, err := g.Generate(t)
	if err != nil {
		return zero, err
	}
	raw := v.Get()
	if raw == nil {
		return zero, nil
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, UnsupportedConstructionError{
			Type:  t,
			Cause: fmt.Errorf("produced %T", raw),
		}
	}
	return typed, nil
}

// Convert returns raw as a reflect.Value of type t.
//
// nil becomes the zero value of t; values of a different but convertible type
// (e.g. int for a named int type) are converted.
func Convert(raw any, t reflect.Type) reflect.Value {
	if raw == nil {
		return reflect.Zero(t)
	}
	rv := reflect.ValueOf(raw)
	if rv.Type() != t && !rv.Type().AssignableTo(t) && rv.Type().ConvertibleTo(t) {
		return rv.Convert(t)
	}
	return rv
}

func unsupported(t reflect.Type) (Value, error) {
	return nil, UnsupportedTypeError{Type: t}
}
