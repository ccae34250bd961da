// Package cache memoizes generated values: at most one Value per type is kept
// and reused.
//
// Saving is compute-if-absent without blocking. Two callers racing on the same
// type may both construct a value, but only the first saved one survives and
// every caller gets that one back. Constructors used for generation must
// therefore tolerate being called more than once for the same type.
package cache

import (
	"fmt"
	"reflect"

	gocache "github.com/patrickmn/go-cache"

	"github.com/sghaida/ogen/gen"
)

// Cache is an append-only, concurrency-safe map from type to Value.
type Cache struct {
	store *gocache.Cache
}

// New returns an empty cache. Entries never expire.
func New() *Cache {
	return &Cache{store: gocache.New(gocache.NoExpiration, 0)}
}

// key identifies t uniquely: reflect types are canonical, so the descriptor
// address tells apart equally-named types from different packages.
func key(t reflect.Type) string {
	return fmt.Sprintf("%s@%p", t, t)
}

// Contains reports whether a value was saved for t.
func (c *Cache) Contains(t reflect.Type) bool {
	_, ok := c.store.Get(key(t))
	return ok
}

// Get returns the value saved for t.
func (c *Cache) Get(t reflect.Type) (gen.Value, bool) {
	raw, ok := c.store.Get(key(t))
	if !ok {
		return nil, false
	}
	return raw.(gen.Value), true
}

// Len returns the number of saved types.
func (c *Cache) Len() int { return c.store.ItemCount() }

// Save stores v for t unless a value is already saved, and returns the value
// that is saved: callers must use the returned Value, not v.
//
// v is read once (Get and AsEmpty) and frozen. If reading it panics, the panic
// is returned as gen.UnsupportedConstructionError and nothing is written.
func (c *Cache) Save(t reflect.Type, v gen.Value) (gen.Value, error) {
	if prev, ok := c.Get(t); ok {
		return prev, nil
	}

	frozen, err := freeze(t, v)
	if err != nil {
		return nil, err
	}

	k := key(t)
	if err := c.store.Add(k, frozen, gocache.NoExpiration); err != nil {
		// lost the race: keep the first one
		if prev, ok := c.store.Get(k); ok {
			return prev.(gen.Value), nil
		}
		return nil, err
	}
	return frozen, nil
}

func freeze(t reflect.Type, v gen.Value) (out gen.Value, err error) {
	if v == nil {
		return nil, gen.UnsupportedConstructionError{Type: t, Cause: fmt.Errorf("cache: nil value")}
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = gen.UnsupportedConstructionError{Type: t, Cause: fmt.Errorf("cache: reading value: %v", rec)}
		}
	}()
	return gen.Eager(v.Get(), v.AsEmpty()), nil
}
