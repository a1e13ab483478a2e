// Package cached decorates a Storage with a read-through cache for address
// lookups. Only engine lookups are cached; URL composition never goes
// through here.
package cached

import (
	"context"
	"io"
	"time"

	"github.com/wuxler/ruafs/pkg/hashfs"
	"github.com/wuxler/ruafs/pkg/util/xcache"
	"github.com/wuxler/ruafs/pkg/util/xcontext"
)

// Option configures the decorator.
type Option func(*options)

type options struct {
	capacity int
	ttl      time.Duration
	cache    xcache.Cache[hashfs.Address]
}

// WithCapacity bounds the number of cached addresses.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithTTL bounds the lifetime of cached addresses.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		o.ttl = d
	}
}

// WithCache replaces the backing cache entirely. Pass xcache.NewDiscard to
// disable caching without unwiring the decorator.
func WithCache(cache xcache.Cache[hashfs.Address]) Option {
	return func(o *options) {
		o.cache = cache
	}
}

// New wraps storage with a read-through cache for Get lookups. Put seeds the
// cache with the fresh address and Delete invalidates every key form of the
// removed content, so readers never see an address the engine no longer
// backs longer than the TTL.
func New(storage hashfs.Storage, opts ...Option) hashfs.Storage {
	o := &options{}
	for _, apply := range opts {
		apply(o)
	}
	if o.cache == nil {
		o.cache = xcache.NewMemory[hashfs.Address](o.capacity, o.ttl)
	}
	return &cachedStorage{
		storage: storage,
		cache:   o.cache,
	}
}

type cachedStorage struct {
	storage hashfs.Storage
	cache   xcache.Cache[hashfs.Address]
}

// Put stores the content and seeds the cache with its address.
func (s *cachedStorage) Put(ctx context.Context, r io.Reader, opts ...hashfs.PutOption) (hashfs.Address, error) {
	addr, err := s.storage.Put(ctx, r, opts...)
	if err != nil {
		return hashfs.Address{}, err
	}
	s.seed(ctx, addr)
	return addr, nil
}

// Get returns the address for idOrPath, loading it from the engine on miss.
// Concurrent misses on the same key share a single engine lookup. Lookup
// failures are never cached.
func (s *cachedStorage) Get(ctx context.Context, idOrPath string) (hashfs.Address, error) {
	if err := xcontext.NonBlockingCheck(ctx, "get "+idOrPath); err != nil {
		return hashfs.Address{}, err
	}
	var loadErr error
	addr, ok := s.cache.Get(ctx, idOrPath, xcache.WithLoader(
		func(ctx context.Context, key string) (hashfs.Address, bool) {
			loaded, err := s.storage.Get(ctx, key)
			if err != nil {
				loadErr = err
				return hashfs.Address{}, false
			}
			return loaded, true
		}))
	if ok {
		return addr, nil
	}
	if loadErr == nil {
		// The miss belongs to a shared in-flight load whose error we cannot
		// see. Ask the engine directly for ours.
		return s.storage.Get(ctx, idOrPath)
	}
	return hashfs.Address{}, loadErr
}

// Open passes through to the engine. Readers are not cacheable.
func (s *cachedStorage) Open(ctx context.Context, idOrPath string) (io.ReadCloser, error) {
	return s.storage.Open(ctx, idOrPath)
}

// Delete removes the content and invalidates every cached key form of it:
// the bare hex id, the sharded relative path and the literal key the caller
// passed.
func (s *cachedStorage) Delete(ctx context.Context, idOrPath string) error {
	if err := xcontext.NonBlockingCheck(ctx, "delete "+idOrPath); err != nil {
		return err
	}
	if addr, err := s.Get(ctx, idOrPath); err == nil {
		s.cache.Delete(ctx, addr.HexID())
		s.cache.Delete(ctx, addr.RelPath)
	}
	s.cache.Delete(ctx, idOrPath)
	return s.storage.Delete(ctx, idOrPath)
}

func (s *cachedStorage) seed(ctx context.Context, addr hashfs.Address) {
	if id := addr.HexID(); id != "" {
		s.cache.Set(ctx, id, addr)
	}
	if addr.RelPath != "" {
		s.cache.Set(ctx, addr.RelPath, addr)
	}
}
