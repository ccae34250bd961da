// Package gen fabricates placeholder values for arbitrary Go types.
//
// It models a produced value (Value) together with its "empty" counterpart, and
// a small capability protocol (Generator) implemented by every strategy:
//
//   - Base generators: primitives, pointers to primitives, arrays of primitives,
//     enumeration constants, containers (map/slice/chan), inert interface
//     null-objects, well-known library types, and blocked types.
//   - Aggregate: a priority-ordered, immutable composition of generators with
//     first-match-wins semantics (Merge / MergeFirst).
//   - Registry: polymorphic supports mapping one declared supertype to one or
//     more implementations, selected at generation time.
//
// Constructor-based recursive resolution lives in package resolve, and value
// memoization in package cache; both plug into this protocol.
//
// Errors
//
// Generation fails with one of three typed errors:
//
//   - UnsupportedTypeError: nothing can produce the type (errors.Is ErrUnsupportedType)
//   - UnsupportedConstructionError: a construction path was found but failed
//     (errors.Is ErrUnsupportedConstruction, wraps the cause)
//   - BlockedTypeError: the type is disallowed by configuration (errors.Is ErrBlockedType)
//
// Example
//
//	g := gen.NewAggregate(gen.Primitives{}, gen.Wrappers{})
//	v, err := g.Generate(gen.TypeOf[int]())
//	// v.Get() == 1, v.AsEmpty() == 0
package gen
