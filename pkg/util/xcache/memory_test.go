package xcache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wuxler/ruafs/pkg/util/xcache"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := xcache.NewMemory[string](16, time.Minute)

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	cache.Set(ctx, "key", "value")
	got, ok := cache.Get(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	cache.Delete(ctx, "key")
	_, ok = cache.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemory_LoaderMiss(t *testing.T) {
	ctx := context.Background()
	cache := xcache.NewMemory[int](16, time.Minute)

	got, ok := cache.Get(ctx, "key", xcache.WithLoader(
		func(_ context.Context, _ string) (int, bool) {
			return 0, false
		}))
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestMemory_LoaderSharedAcrossConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	cache := xcache.NewMemory[int](16, time.Minute)

	var calls atomic.Int64
	release := make(chan struct{})
	loader := func(_ context.Context, _ string) (int, bool) {
		calls.Add(1)
		<-release
		return 42, true
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := cache.Get(ctx, "key", xcache.WithLoader(loader))
			assert.True(t, ok)
			assert.Equal(t, 42, got)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	cache := xcache.NewDiscard[string]()

	cache.Set(ctx, "key", "value")
	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)
}
