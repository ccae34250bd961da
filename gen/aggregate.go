package gen

import (
	"reflect"
	"sort"
)

// Aggregate combines generators into one, trying members in a stable, explicit
// order with first-match-wins semantics.
//
// An Aggregate is immutable: Merge and MergeFirst return new aggregates and never
// touch the receiver's members.
type Aggregate struct {
	members []Generator
	sorted  bool
}

// NewAggregate returns an aggregate trying gs in the given order.
// Nested aggregates are flattened and nil generators are skipped.
func NewAggregate(gs ...Generator) *Aggregate {
	return &Aggregate{members: flatten(nil, gs)}
}

// NewSortedAggregate returns an aggregate whose members are kept stable-sorted
// by Priority, after construction and after every merge.
//
// This is how blocked types are guaranteed to be checked first regardless of
// registration order.
func NewSortedAggregate(gs ...Generator) *Aggregate {
	a := &Aggregate{members: flatten(nil, gs), sorted: true}
	a.sort()
	return a
}

func flatten(dst []Generator, gs []Generator) []Generator {
	for _, g := range gs {
		switch v := g.(type) {
		case nil:
			continue
		case *Aggregate:
			if v == nil {
				continue
			}
			dst = append(dst, v.members...)
		default:
			dst = append(dst, g)
		}
	}
	return dst
}

func (a *Aggregate) sort() {
	sort.SliceStable(a.members, func(i, j int) bool {
		return PriorityOf(a.members[i]) < PriorityOf(a.members[j])
	})
}

// Merge returns a new aggregate with other tried after the receiver's members.
func (a *Aggregate) Merge(other Generator) *Aggregate {
	members := make([]Generator, 0, len(a.members)+1)
	members = append(members, a.members...)
	out := &Aggregate{members: flatten(members, []Generator{other}), sorted: a.sorted}
	if out.sorted {
		out.sort()
	}
	return out
}

// MergeFirst returns a new aggregate with other tried before the receiver's members.
func (a *Aggregate) MergeFirst(other Generator) *Aggregate {
	members := flatten(nil, []Generator{other})
	members = append(members, a.members...)
	out := &Aggregate{members: members, sorted: a.sorted}
	if out.sorted {
		out.sort()
	}
	return out
}

// Aggregated returns a copy of the members in the order they are tried.
func (a *Aggregate) Aggregated() []Generator {
	out := make([]Generator, len(a.members))
	copy(out, a.members)
	return out
}

// Len returns the number of members.
func (a *Aggregate) Len() int { return len(a.members) }

// Supports reports whether any member supports t.
func (a *Aggregate) Supports(t reflect.Type) bool {
	for _, g := range a.members {
		if g.Supports(t) {
			return true
		}
	}
	return false
}

// Generate delegates to the first member supporting t and returns its result.
//
// That member's error is final: later members are not tried after a failure.
// This is what keeps a Blocked member decisive in a sorted aggregate.
func (a *Aggregate) Generate(t reflect.Type) (Value, error) {
	for _, g := range a.members {
		if g.Supports(t) {
			return g.Generate(t)
		}
	}
	return unsupported(t)
}
