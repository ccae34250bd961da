package gen

import "reflect"

// Containers produces non-nil, empty maps, slices and bidirectional channels of
// any element type. The empty counterpart is nil.
//
// Register Containers after Arrays: primitive slices are better served there.
type Containers struct{}

// Supports implements Generator.
func (Containers) Supports(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Map, reflect.Slice:
		return true
	case reflect.Chan:
		return t.ChanDir() == reflect.BothDir
	default:
		return false
	}
}

// Generate implements Generator.
func (c Containers) Generate(t reflect.Type) (Value, error) {
	if !c.Supports(t) {
		return unsupported(t)
	}
	var v reflect.Value
	switch t.Kind() {
	case reflect.Map:
		v = reflect.MakeMap(t)
	case reflect.Slice:
		v = reflect.MakeSlice(t, 0, 0)
	default:
		v = reflect.MakeChan(t, 0)
	}
	return Eager(v.Interface(), reflect.Zero(t).Interface()), nil
}
