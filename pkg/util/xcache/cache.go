// Package xcache provides a tiny generic cache abstraction with pluggable
// in-memory and discard implementations.
package xcache

import (
	"context"

	"github.com/wuxler/ruafs/pkg/util/xgeneric"
)

// Cache is a generic key-value cache.
type Cache[T any] interface {
	// Get returns the value of the key, consulting the loader option on a
	// miss when one is given.
	Get(ctx context.Context, key string, options ...Option[T]) (T, bool)
	// Set saves the value of the key.
	Set(ctx context.Context, key string, value T, options ...Option[T])
	// Delete removes the value of the key.
	Delete(ctx context.Context, key string)
}

// ValueLoader produces the value of a missing key. Returning false reports
// that the key has no value; nothing is cached in that case.
type ValueLoader[T any] func(ctx context.Context, key string) (T, bool)

// Option is a function that sets options.
type Option[T any] func(*Options[T])

// Options is the options for Get or Set.
type Options[T any] struct {
	// Loader is consulted by Get on a cache miss.
	Loader ValueLoader[T]
}

// WithLoader sets the value loader called on cache miss.
func WithLoader[T any](loader ValueLoader[T]) Option[T] {
	return func(o *Options[T]) {
		o.Loader = loader
	}
}

// MakeOptions returns Options with all options applied and an always-miss
// loader filled in when none was given.
func MakeOptions[T any](options ...Option[T]) *Options[T] {
	o := &Options[T]{}
	for _, apply := range options {
		apply(o)
	}
	if o.Loader == nil {
		o.Loader = func(_ context.Context, _ string) (T, bool) {
			return xgeneric.ZeroValue[T](), false
		}
	}
	return o
}
