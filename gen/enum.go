package gen

import "reflect"

// Enums looks up enumeration constants registered per named type.
//
// Go has no enum types, so the set of constants of a type is declared
// explicitly at build time:
//
//	enums := gen.NewEnums().Register(Red, Green, Blue)
//
// Get returns the first registered constant that differs from the type's zero
// value (the first constant if all are zero); AsEmpty returns the zero value.
type Enums struct {
	constants map[reflect.Type][]any
}

// NewEnums returns an empty enumeration table.
func NewEnums() *Enums {
	return &Enums{constants: map[reflect.Type][]any{}}
}

// Register adds constants to the table, grouped by their dynamic type, and
// returns the table for chaining. nil constants are ignored.
//
// Register is not safe for concurrent use with Generate; register constants
// before handing the table to a pipeline.
func (e *Enums) Register(constants ...any) *Enums {
	if e.constants == nil {
		e.constants = map[reflect.Type][]any{}
	}
	for _, c := range constants {
		if c == nil {
			continue
		}
		t := reflect.TypeOf(c)
		e.constants[t] = append(e.constants[t], c)
	}
	return e
}

// Clone returns an independent copy of the table. Registering on either one
// afterwards does not affect the other.
func (e *Enums) Clone() *Enums {
	out := &Enums{constants: make(map[reflect.Type][]any, len(e.constants))}
	for t, consts := range e.constants {
		out.constants[t] = append([]any(nil), consts...)
	}
	return out
}

// Constants returns a copy of the constants registered for t.
func (e *Enums) Constants(t reflect.Type) []any {
	src := e.constants[t]
	out := make([]any, len(src))
	copy(out, src)
	return out
}

// Supports implements Generator.
func (e *Enums) Supports(t reflect.Type) bool {
	return len(e.constants[t]) > 0
}

// Generate implements Generator.
func (e *Enums) Generate(t reflect.Type) (Value, error) {
	consts := e.constants[t]
	if len(consts) == 0 {
		return unsupported(t)
	}
	picked := consts[0]
	for _, c := range consts {
		if !reflect.ValueOf(c).IsZero() {
			picked = c
			break
		}
	}
	return Eager(picked, reflect.Zero(t).Interface()), nil
}
