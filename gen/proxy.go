package gen

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/dchest/siphash"
)

// Inert is a null object standing in for an interface value.
//
// It identifies itself (String, Error, Equal, Hash) and panics with
// ErrInertInvocation on anything behavioural (Invoke). Two Inert values are
// equal only if they are the same instance.
type Inert struct {
	iface string
}

// NewInert returns an Inert standing in for iface.
func NewInert(iface reflect.Type) *Inert {
	return &Inert{iface: TypeName(iface)}
}

// String implements fmt.Stringer.
func (i *Inert) String() string { return "gen.Inert(" + strconv.Quote(i.iface) + ")" }

// Error implements error, so an Inert can stand in for error values.
func (i *Inert) Error() string { return i.String() }

// Equal reports identity.
func (i *Inert) Equal(other any) bool {
	o, ok := other.(*Inert)
	return ok && o == i
}

// Hash is the hash-code counterpart of Equal for callers that key values by
// hash (equality-contract checks, hash sets). It depends only on the interface
// the value stands in for, so it is stable across runs and consistent with Equal.
func (i *Inert) Hash() uint64 {
	return siphash.Hash(0, 0x4c617279426f6174, []byte(i.iface))
}

// Invoke panics with an error matching ErrInertInvocation.
func (i *Inert) Invoke(method string, _ ...any) any {
	panic(inertInvocation{iface: i.iface, method: method})
}

type inertInvocation struct{ iface, method string }

func (e inertInvocation) Error() string {
	return ErrInertInvocation.Error() + " (" + e.iface + "." + e.method + ")"
}

func (e inertInvocation) Unwrap() error { return ErrInertInvocation }

var inertType = reflect.TypeOf((*Inert)(nil))

// Proxies produces null objects for interface types.
//
// It supports any interface satisfied by *Inert (any, fmt.Stringer, error, ...)
// and interfaces with an explicitly registered null-object factory. The empty
// counterpart is a nil interface.
type Proxies struct {
	nullObjects map[reflect.Type]func() any
}

// NewProxies returns a proxy generator with no registered null objects.
func NewProxies() *Proxies {
	return &Proxies{nullObjects: map[reflect.Type]func() any{}}
}

// WithNullObject registers factory as the null object for iface and returns
// the generator for chaining. The factory's values must implement iface.
// Like Enums.Register it is a build-time operation.
func (p *Proxies) WithNullObject(iface reflect.Type, factory func() any) *Proxies {
	if p.nullObjects == nil {
		p.nullObjects = map[reflect.Type]func() any{}
	}
	p.nullObjects[iface] = factory
	return p
}

// Clone returns an independent copy of the null-object table.
func (p *Proxies) Clone() *Proxies {
	out := &Proxies{nullObjects: make(map[reflect.Type]func() any, len(p.nullObjects))}
	for t, f := range p.nullObjects {
		out.nullObjects[t] = f
	}
	return out
}

// Supports implements Generator.
func (p *Proxies) Supports(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Interface {
		return false
	}
	if _, ok := p.nullObjects[t]; ok {
		return true
	}
	return inertType.Implements(t)
}

// Generate implements Generator.
func (p *Proxies) Generate(t reflect.Type) (Value, error) {
	if !p.Supports(t) {
		return unsupported(t)
	}
	empty := reflect.Zero(t).Interface()

	factory, ok := p.nullObjects[t]
	if !ok {
		return Eager(NewInert(t), empty), nil
	}

	obj := factory()
	if obj == nil || !reflect.TypeOf(obj).Implements(t) {
		return nil, UnsupportedConstructionError{
			Type:  t,
			Cause: fmt.Errorf("null object %T does not implement %s", obj, t),
		}
	}
	return Eager(obj, empty), nil
}
