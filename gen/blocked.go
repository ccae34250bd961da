package gen

import "reflect"

// Blocked claims a fixed set of types and refuses to produce them.
//
// It has priority First, so a sorted aggregate checks it before any other
// member and a blocked type fails with BlockedTypeError instead of being
// produced by a wider strategy.
type Blocked struct {
	types map[reflect.Type]struct{}
}

// Block returns a generator blocking types.
func Block(types ...reflect.Type) *Blocked {
	b := &Blocked{types: make(map[reflect.Type]struct{}, len(types))}
	for _, t := range types {
		if t != nil {
			b.types[t] = struct{}{}
		}
	}
	return b
}

// Priority implements Prioritized.
func (*Blocked) Priority() Priority { return First }

// Supports implements Generator.
func (b *Blocked) Supports(t reflect.Type) bool {
	_, ok := b.types[t]
	return ok
}

// Generate implements Generator. It always fails.
func (b *Blocked) Generate(t reflect.Type) (Value, error) {
	if !b.Supports(t) {
		return unsupported(t)
	}
	return nil, BlockedTypeError{Type: t}
}
