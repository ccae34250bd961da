package gen

import "reflect"

// Arrays produces slices and fixed-size arrays whose element is a primitive kind.
//
// A slice holds a single present element and its empty counterpart is nil.
// An array is filled with the present element and its empty counterpart is the
// zero array. Zero-length arrays are not supported since they cannot differ
// from their empty counterpart.
type Arrays struct{}

// Supports implements Generator.
func (Arrays) Supports(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Slice:
		return IsPrimitive(t.Elem())
	case reflect.Array:
		return t.Len() > 0 && IsPrimitive(t.Elem())
	default:
		return false
	}
}

// Generate implements Generator.
func (a Arrays) Generate(t reflect.Type) (Value, error) {
	if !a.Supports(t) {
		return unsupported(t)
	}
	elem, _ := primitiveOf(t.Elem())

	if t.Kind() == reflect.Slice {
		s := reflect.MakeSlice(t, 1, 1)
		s.Index(0).Set(elem)
		return Eager(s.Interface(), reflect.Zero(t).Interface()), nil
	}

	arr := reflect.New(t).Elem()
	for i := 0; i < t.Len(); i++ {
		arr.Index(i).Set(elem)
	}
	return Eager(arr.Interface(), reflect.Zero(t).Interface()), nil
}
