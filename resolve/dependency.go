package resolve

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/sghaida/ogen/ctor"
	"github.com/sghaida/ogen/gen"
)

// dependency is the per-call resolution context of one constructor.
// It is never mutated; each nested step builds a new one with depth-1.
type dependency struct {
	dependent reflect.Type
	ctor      ctor.Constructor
	fallback  gen.Generator
	depth     int
	cheapest  func(reflect.Type) (ctor.Constructor, bool)

	force bool
	log   *logrus.Entry
}

// base strips one pointer level, so S and *S name the same node of a graph.
func base(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// sameNode reports whether a and b are the same type up to one pointer level.
func sameNode(a, b reflect.Type) bool {
	return a != nil && b != nil && base(a) == base(b)
}

// directlyRecursive reports whether p is the type the constructor builds,
// by value or through a pointer (Node{Self *Node}).
func (d dependency) directlyRecursive(p reflect.Type) bool {
	return sameNode(p, d.ctor.Owner())
}

// indirectlyCyclic reports whether the constructor that would build p takes
// the current owner as a parameter (A needs B, B needs A).
func (d dependency) indirectlyCyclic(p reflect.Type) bool {
	c, ok := d.cheapest(p)
	if !ok {
		return false
	}
	owner := d.ctor.Owner()
	for _, q := range c.Params() {
		if sameNode(q, owner) {
			return true
		}
	}
	return false
}

// nested returns the context building p one level down.
func (d dependency) nested(p reflect.Type) (dependency, bool) {
	if d.depth == 0 {
		return dependency{}, false
	}
	c, ok := d.cheapest(p)
	if !ok {
		return dependency{}, false
	}
	return dependency{
		dependent: p,
		ctor:      c,
		fallback:  d.fallback,
		depth:     d.depth - 1,
		cheapest:  d.cheapest,
		force:     d.force,
		log:       d.log,
	}, true
}

// supported mirrors resolve without constructing anything.
func (d dependency) supported() bool {
	for _, p := range d.ctor.Params() {
		if d.fallback.Supports(p) {
			continue
		}
		if d.depth == 0 {
			if d.directlyRecursive(p) {
				continue
			}
			return false
		}
		child, ok := d.nested(p)
		if !ok || !child.supported() {
			return false
		}
	}
	return true
}

// resolve builds every argument and invokes the constructor.
func (d dependency) resolve() (reflect.Value, error) {
	params := d.ctor.Params()
	args := make([]reflect.Value, 0, len(params))
	for _, p := range params {
		arg, err := d.argument(p)
		if err != nil {
			return reflect.Value{}, err
		}
		args = append(args, arg)
	}
	return d.ctor.Invoke(args, d.force)
}

func (d dependency) argument(p reflect.Type) (reflect.Value, error) {
	if d.fallback.Supports(p) {
		v, err := d.fallback.Generate(p)
		if err != nil {
			return reflect.Value{}, err
		}
		return gen.Convert(v.Get(), p), nil
	}

	if d.depth == 0 {
		switch {
		case d.directlyRecursive(p):
			d.log.WithFields(logrus.Fields{
				"type":      p.String(),
				"dependent": d.dependent.String(),
			}).Debug("depth exhausted on self reference, using zero value")
			return reflect.Zero(p), nil
		case d.indirectlyCyclic(p):
			return reflect.Value{}, gen.UnsupportedTypeError{
				Type:   p,
				Reason: "dependency cycle with " + d.ctor.Owner().String() + " exceeds depth budget",
			}
		}
		if _, ok := d.cheapest(p); ok {
			return reflect.Value{}, gen.UnsupportedTypeError{Type: p, Reason: "dependency depth exhausted"}
		}
	}

	child, ok := d.nested(p)
	if !ok {
		return reflect.Value{}, gen.UnsupportedTypeError{
			Type:   p,
			Reason: "no usable constructor (required by " + d.dependent.String() + ")",
		}
	}

	d.log.WithFields(logrus.Fields{
		"type":        p.String(),
		"dependent":   d.dependent.String(),
		"constructor": child.ctor.Name(),
		"depth":       child.depth,
	}).Debug("resolving nested dependency")

	return child.resolve()
}
