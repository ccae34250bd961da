package gen

import "reflect"

// TypeRelation answers subtype questions for registries and resolvers, so
// neither depends on a specific introspection strategy.
type TypeRelation interface {
	// IsSubtypeOf reports whether a value of sub can be used where super is expected.
	IsSubtypeOf(sub, super reflect.Type) bool
}

// Assignability is the default TypeRelation, backed by reflect assignability
// (identical types, interface implementation, unnamed composite identity).
type Assignability struct{}

// IsSubtypeOf implements TypeRelation.
func (Assignability) IsSubtypeOf(sub, super reflect.Type) bool {
	if sub == nil || super == nil {
		return false
	}
	return sub.AssignableTo(super)
}
