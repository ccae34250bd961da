package gen

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrIncompatibleImplementation is returned when an implementation is not a
// subtype of the supertype it is declared for.
var ErrIncompatibleImplementation = errors.New("gen: implementation is not a subtype of its declared supertype")

// Implementation pairs a concrete type with its lazy constructor.
//
// Type is the declared implementation type; New must return values assignable
// to it. Implementations are created at build time and immutable thereafter.
type Implementation struct {
	Type     reflect.Type
	New      func() any
	Priority Priority
}

// Support maps one declared supertype to its implementations.
//
// It answers requests for the supertype itself, for any declared
// implementation type and for types in between, but never for a type wider
// than the supertype.
type Support struct {
	super reflect.Type
	impls []Implementation
	rel   TypeRelation
}

// Super returns the declared supertype.
func (s *Support) Super() reflect.Type { return s.super }

// Implementations returns a copy of the implementations in insertion order.
func (s *Support) Implementations() []Implementation {
	out := make([]Implementation, len(s.impls))
	copy(out, s.impls)
	return out
}

// implementsRequest reports whether impl can be handed out for a request of t.
func (s *Support) implementsRequest(impl Implementation, t reflect.Type) bool {
	return s.rel.IsSubtypeOf(impl.Type, t)
}

// Supports implements Generator.
func (s *Support) Supports(t reflect.Type) bool {
	if t == nil || !s.rel.IsSubtypeOf(t, s.super) {
		return false
	}
	for _, impl := range s.impls {
		if s.implementsRequest(impl, t) {
			return true
		}
	}
	return false
}

// Generate implements Generator.
//
// Among the implementations of t, one declared for exactly t shadows narrower
// ones; the remaining tie is broken by Priority, then insertion order.
func (s *Support) Generate(t reflect.Type) (Value, error) {
	if !s.Supports(t) {
		return unsupported(t)
	}

	exact := false
	for _, impl := range s.impls {
		if impl.Type == t {
			exact = true
			break
		}
	}

	var picked *Implementation
	for i := range s.impls {
		impl := &s.impls[i]
		if exact && impl.Type != t {
			continue
		}
		if !s.implementsRequest(*impl, t) {
			continue
		}
		if picked == nil || impl.Priority < picked.Priority {
			picked = impl
		}
	}
	if picked == nil {
		return unsupported(t)
	}

	ctor := picked.New
	return Lazy(ctor, reflect.Zero(t).Interface()), nil
}

// Registry is the immutable set of polymorphic supports produced by a
// RegistryBuilder. It is itself a Generator trying its supports in declaration
// order.
type Registry struct {
	supports []*Support
	agg      *Aggregate
}

// Supports implements Generator.
func (r *Registry) Supports(t reflect.Type) bool { return r.agg.Supports(t) }

// Generate implements Generator.
func (r *Registry) Generate(t reflect.Type) (Value, error) { return r.agg.Generate(t) }

// Declared returns the declared supports in declaration order.
func (r *Registry) Declared() []*Support {
	out := make([]*Support, len(r.supports))
	copy(out, r.supports)
	return out
}

// RegistryBuilder declares supports and builds a Registry.
//
//	reg, err := gen.NewRegistryBuilder(nil).
//		Declare(gen.TypeOf[Animal]()).
//		Implement(gen.TypeOf[*Dog](), func() any { return &Dog{} }, gen.Default).
//		Done().
//		Build()
type RegistryBuilder struct {
	rel      TypeRelation
	supports []*SupportBuilder
}

// NewRegistryBuilder returns a builder using rel for subtype checks.
// A nil rel means Assignability.
func NewRegistryBuilder(rel TypeRelation) *RegistryBuilder {
	if rel == nil {
		rel = Assignability{}
	}
	return &RegistryBuilder{rel: rel}
}

// Declare starts a support for super.
func (b *RegistryBuilder) Declare(super reflect.Type) *SupportBuilder {
	sb := &SupportBuilder{parent: b, super: super}
	b.supports = append(b.supports, sb)
	return sb
}

// Single declares t with itself as its only implementation.
func (b *RegistryBuilder) Single(t reflect.Type, ctor func() any) *RegistryBuilder {
	return b.Declare(t).Implement(t, ctor, Default).Done()
}

// Build validates the declarations and returns the Registry.
//
// It fails with ErrNoSupports if nothing was declared, ErrNoImplementations if a
// support has no implementation, ErrNilConstructor for nil constructors and
// ErrIncompatibleImplementation for implementations outside their supertype.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if len(b.supports) == 0 {
		return nil, ErrNoSupports
	}

	reg := &Registry{supports: make([]*Support, 0, len(b.supports))}
	members := make([]Generator, 0, len(b.supports))
	for _, sb := range b.supports {
		s, err := sb.build(b.rel)
		if err != nil {
			return nil, err
		}
		reg.supports = append(reg.supports, s)
		members = append(members, s)
	}
	reg.agg = NewSortedAggregate(members...)
	return reg, nil
}

// SupportBuilder collects the implementations of one supertype.
type SupportBuilder struct {
	parent *RegistryBuilder
	super  reflect.Type
	impls  []Implementation
}

// Implement adds an implementation and returns the builder for chaining.
func (sb *SupportBuilder) Implement(impl reflect.Type, ctor func() any, p Priority) *SupportBuilder {
	sb.impls = append(sb.impls, Implementation{Type: impl, New: ctor, Priority: p})
	return sb
}

// Done returns the parent RegistryBuilder.
func (sb *SupportBuilder) Done() *RegistryBuilder { return sb.parent }

func (sb *SupportBuilder) build(rel TypeRelation) (*Support, error) {
	if sb.super == nil {
		return nil, fmt.Errorf("%w: nil supertype", ErrNoImplementations)
	}
	if len(sb.impls) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoImplementations, sb.super)
	}
	for _, impl := range sb.impls {
		if impl.New == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilConstructor, TypeName(impl.Type))
		}
		if !rel.IsSubtypeOf(impl.Type, sb.super) {
			return nil, fmt.Errorf("%w: %s is not a %s", ErrIncompatibleImplementation, TypeName(impl.Type), sb.super)
		}
	}
	impls := make([]Implementation, len(sb.impls))
	copy(impls, sb.impls)
	return &Support{super: sb.super, impls: impls, rel: rel}, nil
}

// Implement adds an implementation typed by T. It is the generic form of
// (*SupportBuilder).Implement.
func Implement[T any](sb *SupportBuilder, ctor func() T, p Priority) *SupportBuilder {
	if ctor == nil {
		return sb.Implement(TypeOf[T](), nil, p)
	}
	return sb.Implement(TypeOf[T](), func() any { return ctor() }, p)
}
