package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}

	store.Set(ctx, "key", "value")
	got, ok := store.Get(ctx, "key")
	if !ok || got != "value" {
		t.Fatalf("get = (%v, %t), want (value, true)", got, ok)
	}

	store.Delete(ctx, "key")
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatal("deleted key still present")
	}
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "key", 42)

	time.Sleep(10 * time.Millisecond)
	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatal("zero-ttl entry expired")
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Millisecond)
	store.Set(ctx, "key", 42)

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatal("expired entry still served")
	}
}

func TestStoreGetOrLoadLoadsOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	var loads atomic.Int64

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "loaded", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := store.GetOrLoad(ctx, "key", loader)
			if err != nil || got != "loaded" {
				t.Errorf("GetOrLoad = (%v, %v)", got, err)
			}
		}()
	}
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected exactly one load, got %d", got)
	}
}

func TestStoreGetOrLoadDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	var loads atomic.Int64

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return nil, errors.New("load failed")
	}

	for i := 0; i < 3; i++ {
		if _, err := store.GetOrLoad(ctx, "key", loader); err == nil {
			t.Fatal("expected load error")
		}
	}
	if got := loads.Load(); got != 3 {
		t.Fatalf("failed loads must retry, got %d loads", got)
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "a", 1)
	store.Set(ctx, "b", 2)

	if got := store.Len(); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	store.Clear(ctx)
	if got := store.Len(); got != 0 {
		t.Fatalf("expected empty store after clear, got %d", got)
	}
}
