package gen

// Value is a produced placeholder plus its "empty" counterpart.
//
// Get returns the constructed instance. AsEmpty returns a value of the same type
// that differs from Get, so callers can detect whether a mutation happened.
// Unless a generator says otherwise, AsEmpty is the zero value of the type.
type Value interface {
	Get() any
	AsEmpty() any
}

type eagerValue struct {
	val   any
	empty any
}

func (v *eagerValue) Get() any     { return v.val }
func (v *eagerValue) AsEmpty() any { return v.empty }

// Eager returns a Value whose Get and AsEmpty are fixed at construction.
func Eager(val, empty any) Value {
	return &eagerValue{val: val, empty: empty}
}

type lazyValue struct {
	supplier func() any
	empty    any
}

func (v lazyValue) Get() any     { return v.supplier() }
func (v lazyValue) AsEmpty() any { return v.empty }

// Lazy returns a Value that calls supplier on every Get.
//
// Each call yields a fresh instance, which lets the same Value be reused for
// several owners without sharing state between them.
func Lazy(supplier func() any, empty any) Value {
	return lazyValue{supplier: supplier, empty: empty}
}

// GetAs returns v.Get() typed as T.
//
// ok is false if v is nil or the produced value is not a T.
func GetAs[T any](v Value) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	raw := v.Get()
	if raw == nil {
		return zero, false
	}
	t, ok := raw.(T)
	return t, ok
}
