package service

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/sghaida/ogen/cache"
	"github.com/sghaida/ogen/config"
	"github.com/sghaida/ogen/ctor"
	"github.com/sghaida/ogen/gen"
	"github.com/sghaida/ogen/resolve"
)

// DefaultsOption customizes the pipeline built by Defaults.
type DefaultsOption func(*defaults)

type defaults struct {
	catalog  *ctor.Catalog
	enums    *gen.Enums
	proxies  *gen.Proxies
	registry *gen.Registry
	blocked  []reflect.Type
	extra    []gen.Generator
	log      *logrus.Entry
}

// WithCatalog sets the constructor catalog used by the resolver.
func WithCatalog(c *ctor.Catalog) DefaultsOption {
	return func(d *defaults) { d.catalog = c }
}

// WithEnums sets the enumeration constants.
func WithEnums(e *gen.Enums) DefaultsOption {
	return func(d *defaults) { d.enums = e }
}

// WithProxies replaces the interface null-object generator.
func WithProxies(p *gen.Proxies) DefaultsOption {
	return func(d *defaults) { d.proxies = p }
}

// WithRegistry adds polymorphic supports.
func WithRegistry(r *gen.Registry) DefaultsOption {
	return func(d *defaults) { d.registry = r }
}

// WithBlocked blocks types: requesting them, directly or as a dependency,
// fails with gen.BlockedTypeError.
func WithBlocked(types ...reflect.Type) DefaultsOption {
	return func(d *defaults) { d.blocked = append(d.blocked, types...) }
}

// WithGenerators adds generators tried before the built-in ones of the same priority.
func WithGenerators(gs ...gen.Generator) DefaultsOption {
	return func(d *defaults) { d.extra = append(d.extra, gs...) }
}

// WithDefaultsLogger sets the logger shared by the service and the resolver.
// Without it, a logger is built from the configuration (config.NewLogger).
func WithDefaultsLogger(log *logrus.Entry) DefaultsOption {
	return func(d *defaults) { d.log = log }
}

// Base returns the sorted aggregate of the built-in direct strategies:
// blocked types, enumeration constants, primitives, pointers to primitives,
// primitive arrays, well-known types, containers and interface null objects.
//
// enums and proxies are copied: registering on them afterwards does not
// reach the returned aggregate.
//
// Enumeration constants come before primitives so that a registered named
// type of a primitive kind gets one of its constants, not the kind literal.
func Base(enums *gen.Enums, proxies *gen.Proxies, blocked ...reflect.Type) *gen.Aggregate {
	if enums == nil {
		enums = gen.NewEnums()
	} else {
		enums = enums.Clone()
	}
	if proxies == nil {
		proxies = gen.NewProxies()
	} else {
		proxies = proxies.Clone()
	}
	return gen.NewSortedAggregate(
		gen.Block(blocked...),
		enums,
		gen.Primitives{},
		gen.Wrappers{},
		gen.Arrays{},
		gen.Known{},
		gen.Containers{},
		proxies,
	)
}

// Defaults builds the standard service:
//
//	sorted[ cached[ blocked, extra..., registry, enums, primitives, wrappers,
//	                arrays, known, containers, proxies ], resolver ]
//
// The resolver's fallback is the cached base pipeline, so every direct value is
// produced once and shared between dependents.
func Defaults(cfg config.Config, opts ...DefaultsOption) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &defaults{}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = config.NewLogger(cfg, nil)
	}

	base := Base(d.enums, d.proxies, d.blocked...)
	if d.registry != nil {
		base = base.MergeFirst(d.registry)
	}
	for i := len(d.extra) - 1; i >= 0; i-- {
		base = base.MergeFirst(d.extra[i])
	}

	var (
		fallback gen.Generator = base
		c        *cache.Cache
	)
	if cfg.Cache {
		c = cache.New()
		fallback = cache.Wrap(base, c)
	}

	resolver, err := resolve.NewBuilder().
		Fallback(fallback).
		Catalog(d.catalog).
		Config(cfg).
		Logger(d.log).
		Build()
	if err != nil {
		return nil, err
	}

	d.log.WithFields(logrus.Fields{
		"generators":  base.Len(),
		"depth":       resolver.MaxDepth(),
		"forceAccess": resolver.ForceAccess(),
		"cache":       cfg.Cache,
	}).Debug("built default value service")

	return New(
		gen.NewSortedAggregate(fallback, resolver),
		WithCache(c),
		WithLogger(d.log),
	), nil
}
