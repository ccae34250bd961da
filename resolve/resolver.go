// Package resolve produces values for types that have no direct support, by
// treating their constructor parameters as dependencies and resolving them one
// level at a time.
//
// Resolution order for each parameter P of the cheapest usable constructor:
//
//  1. the fallback generator, when it supports P
//  2. P is the constructor's own owner (direct recursion): the zero value once
//     the depth budget is exhausted, a nested construction otherwise
//  3. a nested construction of P with one less unit of depth budget; an
//     indirect cycle back to the owner fails as soon as the budget is exhausted
//  4. otherwise gen.UnsupportedTypeError naming P
//
// The depth budget is the only runaway guard and is bounded by
// MaxDependencyDepth.
package resolve

import (
	"errors"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/sghaida/ogen/config"
	"github.com/sghaida/ogen/ctor"
	"github.com/sghaida/ogen/gen"
)

const (
	// MaxDependencyDepth is the highest accepted depth budget.
	MaxDependencyDepth = config.MaxDependencyDepth

	// DefaultDependencyDepth is the depth budget used when none is configured.
	DefaultDependencyDepth = config.DefaultDependencyDepth
)

var (
	// ErrNoFallback is returned by Build when no fallback generator was set.
	ErrNoFallback = errors.New("resolve: fallback generator is required")

	// ErrDepthOutOfRange is returned by Build for a depth outside [0, MaxDependencyDepth].
	ErrDepthOutOfRange = config.ErrDepthOutOfRange
)

// Resolver is a gen.Generator for constructor-built types.
//
// It is immutable after Build and safe for concurrent use as long as its
// fallback and catalog are.
type Resolver struct {
	fallback gen.Generator
	catalog  *ctor.Catalog
	force    bool
	depth    int
	log      *logrus.Entry
}

// Priority implements gen.Prioritized: a sorted aggregate tries the resolver
// after every direct strategy.
func (*Resolver) Priority() gen.Priority { return gen.Last }

// MaxDepth returns the configured depth budget.
func (r *Resolver) MaxDepth() int { return r.depth }

// ForceAccess reports whether non-public constructors are used.
func (r *Resolver) ForceAccess() bool { return r.force }

func (r *Resolver) cheapest(t reflect.Type) (ctor.Constructor, bool) {
	return r.catalog.Cheapest(t, r.force)
}

func (r *Resolver) root(t reflect.Type) (dependency, bool) {
	c, ok := r.cheapest(t)
	if !ok {
		return dependency{}, false
	}
	return dependency{
		dependent: t,
		ctor:      c,
		fallback:  r.fallback,
		depth:     r.depth,
		cheapest:  r.cheapest,
		force:     r.force,
		log:       r.log,
	}, true
}

// Supports implements gen.Generator. It walks the same decisions as Generate
// without invoking any constructor.
func (r *Resolver) Supports(t reflect.Type) bool {
	if t == nil {
		return false
	}
	d, ok := r.root(t)
	return ok && d.supported()
}

// Generate implements gen.Generator.
//
// Construction failures are returned as gen.UnsupportedConstructionError, and
// unresolvable types (t itself or a nested parameter) as gen.UnsupportedTypeError.
func (r *Resolver) Generate(t reflect.Type) (gen.Value, error) {
	if t == nil {
		return nil, gen.UnsupportedTypeError{Type: t}
	}
	d, ok := r.root(t)
	if !ok {
		return nil, gen.UnsupportedTypeError{Type: t, Reason: "no usable constructor"}
	}

	r.log.WithFields(logrus.Fields{
		"type":        t.String(),
		"constructor": d.ctor.Name(),
		"depth":       r.depth,
	}).Debug("resolving type")

	out, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return gen.Eager(out.Interface(), reflect.Zero(t).Interface()), nil
}
