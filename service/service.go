// Package service wires generators, the dependency resolver and the value cache
// into one value service.
//
// There is no process-wide default: build a Service (usually with Defaults) and
// pass it to whatever needs values.
//
//	svc, err := service.Defaults(config.Default(), service.WithCatalog(catalog))
//	v, err := svc.GetValue(reflect.TypeOf(&Order{}))
package service

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/sghaida/ogen/cache"
	"github.com/sghaida/ogen/config"
	"github.com/sghaida/ogen/gen"
)

// Service produces values through a generator pipeline, memoizing one value
// per type when a cache is configured.
//
// Service implements gen.Generator, so it can be merged into other aggregates.
type Service struct {
	gen   gen.Generator
	cache *cache.Cache
	log   *logrus.Entry
}

// Option configures a Service.
type Option func(*Service)

// WithCache sets the cache used by GetValue. A nil cache disables caching.
func WithCache(c *cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithoutCache disables caching.
func WithoutCache() Option {
	return func(s *Service) { s.cache = nil }
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a service over g, with a fresh cache unless an option says otherwise.
func New(g gen.Generator, opts ...Option) *Service {
	s := &Service{gen: g, cache: cache.New(), log: config.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("generator", "service")
	return s
}

// Cache returns the service cache, or nil when caching is disabled.
func (s *Service) Cache() *cache.Cache { return s.cache }

// Supports implements gen.Generator.
func (s *Service) Supports(t reflect.Type) bool {
	if s.cache != nil && s.cache.Contains(t) {
		return true
	}
	return s.gen.Supports(t)
}

// Generate implements gen.Generator. It is GetValue.
func (s *Service) Generate(t reflect.Type) (gen.Value, error) { return s.GetValue(t) }

// GetValue returns a value for t.
//
// With a cache, the first successful value for t is saved and every later call
// returns that same Value.
func (s *Service) GetValue(t reflect.Type) (gen.Value, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(t); ok {
			s.log.WithField("type", gen.TypeName(t)).Debug("cache hit")
			return v, nil
		}
	}

	v, err := s.gen.Generate(t)
	if err != nil {
		s.log.WithError(err).WithField("type", gen.TypeName(t)).Debug("generation failed")
		return nil, err
	}
	if s.cache == nil {
		return v, nil
	}
	return s.cache.Save(t, v)
}

// Value returns a value for T typed.
func Value[T any](s *Service) (T, error) {
	return gen.Generate[T](s)
}
