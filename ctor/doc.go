// Package ctor catalogs the constructors of Go types.
//
// Go has no language-level constructors, so a type's constructors are:
//
//   - registered constructor functions: func(P1, ..., Pn) T or func(P1, ..., Pn) (T, error)
//   - the synthetic field-wise constructor of a struct type S or *S, whose
//     parameters are the struct fields in declaration order
//
// A field-wise constructor is public when every field is exported; otherwise it
// can only be invoked with forced access, which sets unexported fields through
// unsafe pointers. Constructors of interface types are abstract and never usable.
//
// Invocation converts every failure (argument mismatch, returned error, panic,
// inaccessible or abstract target) into gen.UnsupportedConstructionError.
package ctor
