package xcache

import (
	"context"

	"github.com/wuxler/ruafs/pkg/util/xgeneric"
)

// NewDiscard returns a new cache implementation which discards all operations.
func NewDiscard[T any]() Cache[T] {
	return discardCacheImpl[T]{}
}

type discardCacheImpl[T any] struct{}

// Get always reports a miss.
func (s discardCacheImpl[T]) Get(_ context.Context, _ string, _ ...Option[T]) (T, bool) {
	return xgeneric.ZeroValue[T](), false
}

// Set drops the value.
func (s discardCacheImpl[T]) Set(_ context.Context, _ string, _ T, _ ...Option[T]) {
}

// Delete does nothing.
func (s discardCacheImpl[T]) Delete(_ context.Context, _ string) {
}
