package xcache

import (
	"context"
	"errors"
	"time"

	"github.com/maypok86/otter"
	"golang.org/x/sync/singleflight"

	"github.com/wuxler/ruafs/pkg/util/xgeneric"
)

const (
	// DefaultCapacity is the capacity used when NewMemory is called with a
	// non-positive one.
	DefaultCapacity = 4096
	// DefaultTTL is the entry lifetime used when NewMemory is called with a
	// non-positive one.
	DefaultTTL = time.Hour
)

// errLoaderMiss signals through the singleflight group that the loader
// reported no value for the key.
var errLoaderMiss = errors.New("xcache: loader miss")

// NewMemory returns a new cache implementation based on memory. Concurrent
// misses on the same key share a single loader call.
func NewMemory[T any](capacity int, ttl time.Duration) Cache[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	cache, err := otter.MustBuilder[string, T](capacity).
		WithTTL(ttl).
		Build()
	if err != nil {
		panic(err)
	}
	return &memoryCacheImpl[T]{
		cache: cache,
	}
}

type memoryCacheImpl[T any] struct {
	cache     otter.Cache[string, T]
	loadGroup singleflight.Group
}

// Get returns the value of the key, consulting the loader on miss.
func (s *memoryCacheImpl[T]) Get(ctx context.Context, key string, options ...Option[T]) (T, bool) {
	o := MakeOptions(options...)
	if v, ok := s.cache.Get(key); ok {
		return v, true
	}
	loaded, err, _ := s.loadGroup.Do(key, func() (any, error) {
		value, ok := o.Loader(ctx, key)
		if !ok {
			return nil, errLoaderMiss
		}
		s.cache.Set(key, value)
		return value, nil
	})
	if err != nil {
		return xgeneric.ZeroValue[T](), false
	}
	return loaded.(T), true
}

// Set saves the value of the key.
func (s *memoryCacheImpl[T]) Set(_ context.Context, key string, value T, options ...Option[T]) {
	s.cache.Set(key, value)
}

// Delete removes the value of the key.
func (s *memoryCacheImpl[T]) Delete(_ context.Context, key string) {
	s.cache.Delete(key)
}
