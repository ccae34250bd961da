package resolve

import (
	"github.com/sirupsen/logrus"

	"github.com/sghaida/ogen/config"
	"github.com/sghaida/ogen/ctor"
	"github.com/sghaida/ogen/gen"
)

// Builder configures a Resolver.
//
//	r, err := resolve.NewBuilder().
//		Fallback(base).
//		Catalog(catalog).
//		MaxDepth(3).
//		Build()
type Builder struct {
	fallback gen.Generator
	catalog  *ctor.Catalog
	force    bool
	depth    int
	log      *logrus.Entry
}

// NewBuilder returns a builder with DefaultDependencyDepth and no forced access.
func NewBuilder() *Builder {
	return &Builder{depth: DefaultDependencyDepth}
}

// Fallback sets the generator tried first for every parameter (required).
func (b *Builder) Fallback(g gen.Generator) *Builder {
	b.fallback = g
	return b
}

// Catalog sets the constructor catalog. Without one only field-wise
// constructors are known.
func (b *Builder) Catalog(c *ctor.Catalog) *Builder {
	b.catalog = c
	return b
}

// ForceAccess allows non-public constructors.
func (b *Builder) ForceAccess(force bool) *Builder {
	b.force = force
	return b
}

// MaxDepth sets the dependency depth budget; Build rejects values outside
// [0, MaxDependencyDepth].
func (b *Builder) MaxDepth(depth int) *Builder {
	b.depth = depth
	return b
}

// Logger sets the logger used for debug traces of resolution.
func (b *Builder) Logger(log *logrus.Entry) *Builder {
	b.log = log
	return b
}

// Config applies the depth and access settings of cfg.
func (b *Builder) Config(cfg config.Config) *Builder {
	b.depth = cfg.MaxDependencyDepth
	b.force = cfg.ForceAccess
	return b
}

// Build validates the configuration and returns the Resolver.
func (b *Builder) Build() (*Resolver, error) {
	if b.fallback == nil {
		return nil, ErrNoFallback
	}
	if err := config.ValidateDepth(b.depth); err != nil {
		return nil, err
	}
	log := b.log
	if log == nil {
		log = config.Discard()
	}
	return &Resolver{
		fallback: b.fallback,
		catalog:  b.catalog,
		force:    b.force,
		depth:    b.depth,
		log:      log.WithField("generator", "resolver"),
	}, nil
}
