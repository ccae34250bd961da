package cache_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	gogen "github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/ogen/cache"
	"github.com/sghaida/ogen/gen"
)

type Order struct{ ID int }

var (
	intType   = reflect.TypeOf(0)
	orderType = reflect.TypeOf(&Order{})
)

type panickingValue struct{}

func (panickingValue) Get() any     { panic("no value today") }
func (panickingValue) AsEmpty() any { return nil }

func TestCache_SaveFirstWins(t *testing.T) {
	t.Parallel()

	c := cache.New()
	assert.False(t, c.Contains(intType))
	assert.Equal(t, 0, c.Len())

	first, err := c.Save(intType, gen.Eager(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Get())

	second, err := c.Save(intType, gen.Eager(2, 0))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Get())

	got, ok := c.Get(intType)
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.True(t, c.Contains(intType))
	assert.Equal(t, 1, c.Len())
}

func TestCache_SaveFreezesLazyValues(t *testing.T) {
	t.Parallel()

	calls := 0
	lazy := gen.Lazy(func() any {
		calls++
		return &Order{ID: calls}
	}, (*Order)(nil))

	c := cache.New()
	v, err := c.Save(orderType, lazy)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	first := v.Get()
	assert.Same(t, first, v.Get())
	assert.Equal(t, 1, calls)
	assert.Nil(t, v.AsEmpty())
}

func TestCache_FirstSaveSurvivesAnySequence(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("every save returns the first saved value", prop.ForAll(
		func(first int, rest []int) bool {
			c := cache.New()
			saved, err := c.Save(intType, gen.Eager(first, 0))
			if err != nil {
				return false
			}
			for _, n := range rest {
				v, err := c.Save(intType, gen.Eager(n, 0))
				if err != nil || v != saved {
					return false
				}
			}
			got, ok := c.Get(intType)
			return ok && got == saved && got.Get() == first && c.Len() == 1
		},
		gogen.Int(),
		gogen.SliceOf(gogen.Int()),
	))

	properties.TestingRun(t)
}

func TestCache_SaveErrors(t *testing.T) {
	t.Parallel()

	c := cache.New()

	_, err := c.Save(intType, panickingValue{})
	assert.ErrorIs(t, err, gen.ErrUnsupportedConstruction)
	assert.Contains(t, err.Error(), "no value today")
	assert.False(t, c.Contains(intType))

	_, err = c.Save(intType, nil)
	assert.ErrorIs(t, err, gen.ErrUnsupportedConstruction)
	assert.Equal(t, 0, c.Len())
}

func TestCache_DistinctTypes(t *testing.T) {
	t.Parallel()

	type Order struct{ ID int }
	localType := reflect.TypeOf(&Order{})
	require.Equal(t, orderType.String(), localType.String())

	c := cache.New()
	_, err := c.Save(orderType, gen.Eager(&Order{}, nil))
	require.NoError(t, err)

	assert.True(t, c.Contains(orderType))
	assert.False(t, c.Contains(localType))
}

func TestCache_ConcurrentSaves(t *testing.T) {
	t.Parallel()

	c := cache.New()

	const workers = 32
	results := make([]gen.Value, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Save(intType, gen.Eager(i, 0))
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	saved, ok := c.Get(intType)
	require.True(t, ok)
	for _, v := range results {
		assert.Same(t, saved, v)
	}
}

type counting struct {
	calls int
	mu    sync.Mutex
}

func (g *counting) Supports(t reflect.Type) bool { return t == orderType }

func (g *counting) Generate(t reflect.Type) (gen.Value, error) {
	if !g.Supports(t) {
		return nil, gen.UnsupportedTypeError{Type: t}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return gen.Lazy(func() any { return &Order{ID: 7} }, (*Order)(nil)), nil
}

func (g *counting) Priority() gen.Priority { return gen.First }

func TestGenerator_Memoizes(t *testing.T) {
	t.Parallel()

	inner := &counting{}
	g := cache.Wrap(inner, nil)
	require.NotNil(t, g.Cache())
	assert.Equal(t, gen.First, g.Priority())

	first, err := g.Generate(orderType)
	require.NoError(t, err)
	second, err := g.Generate(orderType)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first.Get(), second.Get())
	assert.Equal(t, 1, inner.calls)

	assert.True(t, g.Supports(orderType))
	assert.False(t, g.Supports(intType))

	_, err = g.Generate(intType)
	assert.ErrorIs(t, err, gen.ErrUnsupportedType)
	assert.Equal(t, 1, g.Cache().Len())
}

func TestGenerator_SharedCache(t *testing.T) {
	t.Parallel()

	shared := cache.New()
	_, err := shared.Save(intType, gen.Eager(42, 0))
	require.NoError(t, err)

	g := cache.Wrap(gen.Primitives{}, shared)
	assert.Same(t, shared, g.Cache())
	assert.Equal(t, gen.Default, g.Priority())

	v, err := g.Generate(intType)
	require.NoError(t, err)
	assert.Equal(t, 42, v.Get())
}
