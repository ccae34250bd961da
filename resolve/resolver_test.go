package resolve_test

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/ogen/config"
	"github.com/sghaida/ogen/ctor"
	ogen "github.com/sghaida/ogen/gen"
	"github.com/sghaida/ogen/resolve"
)

type Node struct {
	Self *Node
	X    int
}

type A struct{ B *B }

type B struct{ A *A }

type Inner struct{ X int }

type Mid struct{ In *Inner }

type Outer struct{ Mid *Mid }

type Greeter struct{ Out fmt.Stringer }

type hidden struct{ n int }

type Broken struct{ ok bool }

var errBroken = errors.New("broken on purpose")

func NewBroken() (*Broken, error) { return nil, errBroken }

type Port int

func NewPort() Port { return 8080 }

func base() ogen.Generator {
	return ogen.NewSortedAggregate(ogen.Primitives{}, ogen.Wrappers{}, ogen.Arrays{}, ogen.Containers{})
}

func newResolver(t *testing.T, depth int, opts ...func(*resolve.Builder)) *resolve.Resolver {
	t.Helper()

	b := resolve.NewBuilder().Fallback(base()).MaxDepth(depth)
	for _, opt := range opts {
		opt(b)
	}
	r, err := b.Build()
	require.NoError(t, err)
	return r
}

func TestResolver_DirectSelfReference(t *testing.T) {
	t.Parallel()

	nodeType := reflect.TypeOf(&Node{})

	r := newResolver(t, 0)
	require.True(t, r.Supports(nodeType))
	v, err := r.Generate(nodeType)
	require.NoError(t, err)
	n := v.Get().(*Node)
	assert.Nil(t, n.Self)
	assert.Equal(t, 1, n.X)
	assert.Nil(t, v.AsEmpty().(*Node))

	for depth := 1; depth <= resolve.MaxDependencyDepth; depth++ {
		r := newResolver(t, depth)
		v, err := r.Generate(nodeType)
		require.NoError(t, err)

		// exactly depth levels of nesting below the root
		n := v.Get().(*Node)
		for i := 0; i < depth; i++ {
			require.NotNil(t, n.Self, "depth %d level %d", depth, i)
			n = n.Self
		}
		assert.Nil(t, n.Self)
	}
}

func TestResolver_DirectSelfReferenceByValue(t *testing.T) {
	t.Parallel()

	nodeType := reflect.TypeOf(Node{})

	r := newResolver(t, 0)
	require.True(t, r.Supports(nodeType))
	v, err := r.Generate(nodeType)
	require.NoError(t, err)
	assert.Equal(t, Node{X: 1}, v.Get())
	assert.Equal(t, Node{}, v.AsEmpty())

	r = newResolver(t, 1)
	require.True(t, r.Supports(nodeType))
	v, err = r.Generate(nodeType)
	require.NoError(t, err)
	n := v.Get().(Node)
	require.NotNil(t, n.Self)
	assert.Nil(t, n.Self.Self)
	assert.Equal(t, 1, n.Self.X)
}

func TestResolver_IndirectCycleFails(t *testing.T) {
	t.Parallel()

	aType, bType := reflect.TypeOf(&A{}), reflect.TypeOf(&B{})

	cases := []struct {
		depth int
		want  reflect.Type
	}{
		{depth: 0, want: bType},
		{depth: 1, want: aType},
		{depth: 2, want: bType},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("depth %d", tc.depth), func(t *testing.T) {
			t.Parallel()

			r := newResolver(t, tc.depth)
			assert.False(t, r.Supports(aType))

			_, err := r.Generate(aType)
			var ute ogen.UnsupportedTypeError
			require.ErrorAs(t, err, &ute)
			assert.Equal(t, tc.want, ute.Type)
			assert.Contains(t, ute.Reason, "dependency cycle")
		})
	}
}

func TestResolver_NestedDependencies(t *testing.T) {
	t.Parallel()

	outerType := reflect.TypeOf(&Outer{})

	r := newResolver(t, 2)
	require.True(t, r.Supports(outerType))
	v, err := r.Generate(outerType)
	require.NoError(t, err)
	assert.Equal(t, &Outer{Mid: &Mid{In: &Inner{X: 1}}}, v.Get())

	r = newResolver(t, 1)
	assert.False(t, r.Supports(outerType))
	_, err = r.Generate(outerType)
	var ute ogen.UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, reflect.TypeOf(&Inner{}), ute.Type)
	assert.Equal(t, "dependency depth exhausted", ute.Reason)
}

func TestResolver_Unsupported(t *testing.T) {
	t.Parallel()

	r := newResolver(t, resolve.DefaultDependencyDepth)

	cases := []struct {
		name   string
		typ    reflect.Type
		failed reflect.Type
	}{
		{"nil", nil, nil},
		{"no constructor", reflect.TypeOf(func() {}), reflect.TypeOf(func() {})},
		{"interface without constructor", reflect.TypeOf((*fmt.Stringer)(nil)).Elem(), reflect.TypeOf((*fmt.Stringer)(nil)).Elem()},
		{"unresolvable parameter", reflect.TypeOf(Greeter{}), reflect.TypeOf((*fmt.Stringer)(nil)).Elem()},
		{"unexported fields", reflect.TypeOf(&hidden{}), reflect.TypeOf(&hidden{})},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.False(t, r.Supports(tc.typ))

			v, err := r.Generate(tc.typ)
			assert.Nil(t, v)
			var ute ogen.UnsupportedTypeError
			require.ErrorAs(t, err, &ute)
			assert.Equal(t, tc.failed, ute.Type)
			assert.ErrorIs(t, err, ogen.ErrUnsupportedType)
		})
	}
}

func TestResolver_ForceAccess(t *testing.T) {
	t.Parallel()

	r := newResolver(t, 0, func(b *resolve.Builder) { b.ForceAccess(true) })
	assert.True(t, r.ForceAccess())

	v, err := r.Generate(reflect.TypeOf(&hidden{}))
	require.NoError(t, err)
	assert.Equal(t, &hidden{n: 1}, v.Get())
}

func TestResolver_RegisteredConstructors(t *testing.T) {
	t.Parallel()

	catalog := ctor.NewCatalog().MustRegister(NewBroken, NewPort)
	r := newResolver(t, 1, func(b *resolve.Builder) { b.Catalog(catalog) })

	// Registered constructor of a non-struct type.
	v, err := r.Generate(reflect.TypeOf(Port(0)))
	require.NoError(t, err)
	assert.Equal(t, Port(8080), v.Get())
	assert.Equal(t, Port(0), v.AsEmpty())

	// Registered constructor preferred over the field-wise one; its error surfaces.
	_, err = r.Generate(reflect.TypeOf(&Broken{}))
	assert.ErrorIs(t, err, ogen.ErrUnsupportedConstruction)
	assert.ErrorIs(t, err, errBroken)
}

func TestResolver_SupportsMatchesGenerate(t *testing.T) {
	t.Parallel()

	types := []reflect.Type{
		reflect.TypeOf(&Node{}),
		reflect.TypeOf(Node{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf(B{}),
		reflect.TypeOf(&Outer{}),
		reflect.TypeOf(Mid{}),
		reflect.TypeOf(Inner{}),
		reflect.TypeOf(Greeter{}),
		reflect.TypeOf(&hidden{}),
		reflect.TypeOf(0),
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Supports(t) iff Generate(t) succeeds", prop.ForAll(
		func(depth int, i int, force bool) bool {
			r, err := resolve.NewBuilder().Fallback(base()).MaxDepth(depth).ForceAccess(force).Build()
			if err != nil {
				return false
			}
			typ := types[i]
			_, genErr := r.Generate(typ)
			return r.Supports(typ) == (genErr == nil)
		},
		gen.IntRange(0, resolve.MaxDependencyDepth),
		gen.IntRange(0, len(types)-1),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestBuilder_Errors(t *testing.T) {
	t.Parallel()

	_, err := resolve.NewBuilder().Build()
	assert.ErrorIs(t, err, resolve.ErrNoFallback)

	for _, depth := range []int{-1, resolve.MaxDependencyDepth + 1} {
		_, err := resolve.NewBuilder().Fallback(base()).MaxDepth(depth).Build()
		assert.ErrorIs(t, err, resolve.ErrDepthOutOfRange, "depth %d", depth)
	}
}

func TestBuilder_Config(t *testing.T) {
	t.Parallel()

	r, err := resolve.NewBuilder().Fallback(base()).Build()
	require.NoError(t, err)
	assert.Equal(t, resolve.DefaultDependencyDepth, r.MaxDepth())
	assert.False(t, r.ForceAccess())
	assert.Equal(t, ogen.Last, r.Priority())

	cfg := config.Default()
	cfg.MaxDependencyDepth = 4
	cfg.ForceAccess = true
	r, err = resolve.NewBuilder().Fallback(base()).Config(cfg).Build()
	require.NoError(t, err)
	assert.Equal(t, 4, r.MaxDepth())
	assert.True(t, r.ForceAccess())
}

func TestResolver_LogsResolution(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := config.NewLogger(config.Config{LogLevel: "debug", LogFormat: "json"}, &buf)

	r := newResolver(t, 1, func(b *resolve.Builder) { b.Logger(log) })
	_, err := r.Generate(reflect.TypeOf(&Node{}))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"resolving type"`)
	assert.Contains(t, out, `"msg":"resolving nested dependency"`)
	assert.Contains(t, out, `"generator":"resolver"`)
	assert.Contains(t, out, `"type":"*resolve_test.Node"`)
}
