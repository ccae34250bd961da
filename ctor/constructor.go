package ctor

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/sghaida/ogen/gen"
)

var (
	// ErrAbstract is the cause returned when invoking a constructor of an interface type.
	ErrAbstract = errors.New("ctor: abstract owner type")

	// ErrInaccessible is the cause returned when a non-public constructor is invoked without forced access.
	ErrInaccessible = errors.New("ctor: constructor is not accessible")

	// ErrArgumentMismatch is the cause returned when arguments do not match the parameters.
	ErrArgumentMismatch = errors.New("ctor: illegal argument")
)

// PanicError carries the value recovered from a panicking constructor.
type PanicError struct{ Value any }

// Error implements the error interface.
func (e PanicError) Error() string { return fmt.Sprintf("ctor: constructor panicked: %v", e.Value) }

type kind int

const (
	kindFunc kind = iota
	kindFields
)

// Constructor describes one way to build a value of its owner type.
type Constructor struct {
	name   string
	owner  reflect.Type
	params []reflect.Type
	public bool
	kind   kind

	fn       reflect.Value // kindFunc
	variadic bool
	hasErr   bool
}

// Name returns a human-readable name (function name or "S{fields}").
func (c Constructor) Name() string { return c.name }

// String implements fmt.Stringer.
func (c Constructor) String() string { return c.name }

// Owner returns the type the constructor produces.
func (c Constructor) Owner() reflect.Type { return c.owner }

// Params returns a copy of the parameter types.
func (c Constructor) Params() []reflect.Type {
	out := make([]reflect.Type, len(c.params))
	copy(out, c.params)
	return out
}

// NumParams returns the number of parameters.
func (c Constructor) NumParams() int { return len(c.params) }

// Public reports whether the constructor can be invoked without forced access.
func (c Constructor) Public() bool { return c.public }

// Abstract reports whether the owner is an interface type.
func (c Constructor) Abstract() bool {
	return c.owner == nil || c.owner.Kind() == reflect.Interface
}

// Usable reports whether the constructor may be invoked: its owner is concrete
// and it is public or force is set.
func (c Constructor) Usable(force bool) bool {
	return !c.Abstract() && (c.public || force)
}

// Invoke calls the constructor with args.
//
// Every failure is returned as gen.UnsupportedConstructionError wrapping
// ErrAbstract, ErrInaccessible, ErrArgumentMismatch, a PanicError or the
// constructor's own error.
func (c Constructor) Invoke(args []reflect.Value, force bool) (out reflect.Value, err error) {
	fail := func(cause error) (reflect.Value, error) {
		return reflect.Value{}, gen.UnsupportedConstructionError{Type: c.owner, Cause: cause}
	}

	if c.Abstract() {
		return fail(ErrAbstract)
	}
	if !c.public && !force {
		return fail(fmt.Errorf("%w: %s", ErrInaccessible, c.name))
	}
	if len(args) != len(c.params) {
		return fail(fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgumentMismatch, c.name, len(c.params), len(args)))
	}
	for i, a := range args {
		if !a.IsValid() || !a.Type().AssignableTo(c.params[i]) {
			return fail(fmt.Errorf("%w: argument %d of %s must be %s", ErrArgumentMismatch, i, c.name, c.params[i]))
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = reflect.Value{}
			err = gen.UnsupportedConstructionError{Type: c.owner, Cause: PanicError{Value: rec}}
		}
	}()

	if c.kind == kindFields {
		return c.invokeFields(args, force)
	}
	return c.invokeFunc(args)
}

func (c Constructor) invokeFunc(args []reflect.Value) (reflect.Value, error) {
	var results []reflect.Value
	if c.variadic {
		results = c.fn.CallSlice(args)
	} else {
		results = c.fn.Call(args)
	}
	if c.hasErr {
		if e := results[1]; !e.IsNil() {
			return reflect.Value{}, gen.UnsupportedConstructionError{Type: c.owner, Cause: e.Interface().(error)}
		}
	}
	return results[0], nil
}

func (c Constructor) invokeFields(args []reflect.Value, force bool) (reflect.Value, error) {
	st := c.owner
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}

	v := reflect.New(st).Elem()
	for i, a := range args {
		f := v.Field(i)
		if !f.CanSet() {
			if !force {
				return reflect.Value{}, gen.UnsupportedConstructionError{
					Type:  c.owner,
					Cause: fmt.Errorf("%w: field %s", ErrInaccessible, st.Field(i).Name),
				}
			}
			f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
		}
		f.Set(a)
	}

	if c.owner.Kind() == reflect.Pointer {
		return v.Addr(), nil
	}
	return v, nil
}
