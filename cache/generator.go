package cache

import (
	"reflect"

	"github.com/sghaida/ogen/gen"
)

// Generator memoizes another generator through a Cache.
type Generator struct {
	inner gen.Generator
	cache *Cache
}

// Wrap returns a generator producing each type once with inner and reusing
// the saved Value afterwards. A nil c means a fresh Cache.
func Wrap(inner gen.Generator, c *Cache) *Generator {
	if c == nil {
		c = New()
	}
	return &Generator{inner: inner, cache: c}
}

// Cache returns the backing cache.
func (g *Generator) Cache() *Cache { return g.cache }

// Priority implements gen.Prioritized by forwarding the inner priority.
func (g *Generator) Priority() gen.Priority { return gen.PriorityOf(g.inner) }

// Supports implements gen.Generator.
func (g *Generator) Supports(t reflect.Type) bool {
	return g.cache.Contains(t) || g.inner.Supports(t)
}

// Generate implements gen.Generator.
func (g *Generator) Generate(t reflect.Type) (gen.Value, error) {
	if v, ok := g.cache.Get(t); ok {
		return v, nil
	}
	v, err := g.inner.Generate(t)
	if err != nil {
		return nil, err
	}
	return g.cache.Save(t, v)
}
