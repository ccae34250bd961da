package ctor

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

var (
	// ErrNotFunc is returned when Register is given something other than a function.
	ErrNotFunc = errors.New("ctor: constructor must be a function")

	// ErrBadSignature is returned when a function does not return T or (T, error).
	ErrBadSignature = errors.New("ctor: constructor must return T or (T, error)")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Catalog lists the constructors of types: registered constructor functions
// first, then the synthetic field-wise constructor of struct types.
//
// A nil *Catalog is valid and only knows field-wise constructors.
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu         sync.RWMutex
	registered map[reflect.Type][]Constructor
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{registered: map[reflect.Type][]Constructor{}}
}

// Register adds fn as a constructor of its first result type.
//
// fn must be a non-nil function returning T or (T, error).
func (c *Catalog) Register(fn any) error {
	ctor, err := FromFunc(fn)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registered == nil {
		c.registered = map[reflect.Type][]Constructor{}
	}
	c.registered[ctor.owner] = append(c.registered[ctor.owner], ctor)
	return nil
}

// MustRegister registers every fn or panics. It returns the catalog for chaining.
func (c *Catalog) MustRegister(fns ...any) *Catalog {
	for _, fn := range fns {
		if err := c.Register(fn); err != nil {
			panic(err)
		}
	}
	return c
}

// FromFunc describes fn as a Constructor without registering it.
func FromFunc(fn any) (Constructor, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return Constructor{}, fmt.Errorf("%w: got %T", ErrNotFunc, fn)
	}
	ft := v.Type()

	hasErr := false
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errorType {
			return Constructor{}, fmt.Errorf("%w: %s", ErrBadSignature, ft)
		}
		hasErr = true
	default:
		return Constructor{}, fmt.Errorf("%w: %s", ErrBadSignature, ft)
	}

	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		params[i] = ft.In(i)
	}

	return Constructor{
		name:     funcName(v),
		owner:    ft.Out(0),
		params:   params,
		public:   true,
		kind:     kindFunc,
		fn:       v,
		variadic: ft.IsVariadic(),
		hasErr:   hasErr,
	}, nil
}

func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return v.Type().String()
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Fields returns the field-wise constructor of t, if t is a struct or a
// pointer to a struct.
func Fields(t reflect.Type) (Constructor, bool) {
	if t == nil {
		return Constructor{}, false
	}
	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return Constructor{}, false
	}

	params := make([]reflect.Type, st.NumField())
	names := make([]string, st.NumField())
	public := true
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		params[i] = f.Type
		names[i] = f.Name
		if !f.IsExported() {
			public = false
		}
	}

	name := st.String() + "{" + strings.Join(names, ", ") + "}"
	if t.Kind() == reflect.Pointer {
		name = "&" + name
	}
	return Constructor{
		name:   name,
		owner:  t,
		params: params,
		public: public,
		kind:   kindFields,
	}, true
}

// Constructors returns every known constructor of t: registered ones in
// registration order, then the field-wise one.
func (c *Catalog) Constructors(t reflect.Type) []Constructor {
	var out []Constructor
	if c != nil {
		c.mu.RLock()
		out = append(out, c.registered[t]...)
		c.mu.RUnlock()
	}
	if f, ok := Fields(t); ok {
		out = append(out, f)
	}
	return out
}

// Cheapest returns the usable constructor of t with the fewest parameters.
// Ties keep the earlier constructor, so registered functions win over the
// field-wise constructor.
func (c *Catalog) Cheapest(t reflect.Type, force bool) (Constructor, bool) {
	var (
		best  Constructor
		found bool
	)
	for _, ctor := range c.Constructors(t) {
		if !ctor.Usable(force) {
			continue
		}
		if !found || ctor.NumParams() < best.NumParams() {
			best, found = ctor, true
		}
	}
	return best, found
}
