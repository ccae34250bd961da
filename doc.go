// Package ogen fabricates placeholder values for arbitrary Go types at test time.
//
// Testing tools that exercise accessors, equality contracts or constructors
// need a present value and an "empty" value for every field type. ogen produces
// both without hand-written fixtures, resolving nested constructor dependencies
// recursively within a bounded depth budget.
//
// Packages:
//   - gen: the Value type, the Generator protocol, base generators, the
//     priority-ordered Aggregate and the polymorphic Registry
//   - ctor: constructor catalog (registered constructor functions and
//     field-wise struct constructors)
//   - resolve: recursive dependency resolver for constructor-built types
//   - cache: concurrency-safe, append-only value memoization
//   - config: YAML and environment configuration, logger construction
//   - service: composition of all of the above (service.Defaults)
//
// Produced values are structurally constructible and deterministic; they are
// not meant to be semantically valid domain objects.
//
// Import
//
//	"github.com/sghaida/ogen/service"
package ogen
