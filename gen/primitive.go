package gen

import "reflect"

// primitive holds the present and empty literal for one primitive kind.
type primitive struct {
	present any
	empty   any
}

var primitives = map[reflect.Kind]primitive{
	reflect.Bool:       {present: true, empty: false},
	reflect.Int:        {present: int(1), empty: int(0)},
	reflect.Int8:       {present: int8(1), empty: int8(0)},
	reflect.Int16:      {present: int16(1), empty: int16(0)},
	reflect.Int32:      {present: int32(1), empty: int32(0)},
	reflect.Int64:      {present: int64(1), empty: int64(0)},
	reflect.Uint:       {present: uint(1), empty: uint(0)},
	reflect.Uint8:      {present: uint8(1), empty: uint8(0)},
	reflect.Uint16:     {present: uint16(1), empty: uint16(0)},
	reflect.Uint32:     {present: uint32(1), empty: uint32(0)},
	reflect.Uint64:     {present: uint64(1), empty: uint64(0)},
	reflect.Uintptr:    {present: uintptr(1), empty: uintptr(0)},
	reflect.Float32:    {present: float32(1), empty: float32(0)},
	reflect.Float64:    {present: float64(1), empty: float64(0)},
	reflect.Complex64:  {present: complex64(1 + 1i), empty: complex64(0)},
	reflect.Complex128: {present: complex128(1 + 1i), empty: complex128(0)},
	reflect.String:     {present: "value", empty: ""},
}

// IsPrimitive reports whether t's kind has a primitive literal.
// Named types (e.g. time.Duration) count when their underlying kind does.
func IsPrimitive(t reflect.Type) bool {
	if t == nil {
		return false
	}
	_, ok := primitives[t.Kind()]
	return ok
}

// primitiveOf returns the present and empty literal of t converted to t.
func primitiveOf(t reflect.Type) (present, empty reflect.Value) {
	p := primitives[t.Kind()]
	return reflect.ValueOf(p.present).Convert(t), reflect.ValueOf(p.empty).Convert(t)
}

// Primitives produces literals for primitive kinds: true/false, 1/0, "value"/"".
type Primitives struct{}

// Supports implements Generator.
func (Primitives) Supports(t reflect.Type) bool { return IsPrimitive(t) }

// Generate implements Generator.
func (p Primitives) Generate(t reflect.Type) (Value, error) {
	if !p.Supports(t) {
		return unsupported(t)
	}
	present, empty := primitiveOf(t)
	return Eager(present.Interface(), empty.Interface()), nil
}

// Wrappers produces pointers to primitive kinds. Get points at the primitive
// present literal; AsEmpty is a typed nil pointer.
type Wrappers struct{}

// Supports implements Generator.
func (Wrappers) Supports(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Pointer && IsPrimitive(t.Elem())
}

// Generate implements Generator.
func (w Wrappers) Generate(t reflect.Type) (Value, error) {
	if !w.Supports(t) {
		return unsupported(t)
	}
	present, _ := primitiveOf(t.Elem())
	ptr := reflect.New(t.Elem())
	ptr.Elem().Set(present)
	return Eager(ptr.Interface(), reflect.Zero(t).Interface()), nil
}
