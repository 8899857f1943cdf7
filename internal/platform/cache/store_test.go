package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "standings", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := store.GetOrLoad(context.Background(), "player:list", loader); err != nil {
				t.Errorf("GetOrLoad: %v", err)
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	errBoom := errors.New("db down")

	if _, err := store.GetOrLoad(context.Background(), "team:list", func(context.Context) (any, error) {
		return nil, errBoom
	}); !errors.Is(err, errBoom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(context.Background(), "team:list"); ok {
		t.Fatalf("failed load must not populate the cache")
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "match:list", 3)
	if _, ok := store.Get(context.Background(), "match:list"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "match:list"); ok {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	store.Set(ctx, "team:list", 1)
	store.Set(ctx, "player:list", 2)
	store.Set(ctx, "player:team:TOR", 3)
	store.Set(ctx, "settings:sheet-1", 4)

	removed := store.DeletePrefix(ctx, "player:", "team:")
	if removed != 3 {
		t.Fatalf("expected 3 removed entries, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", store.Len())
	}
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	got, err := Load(context.Background(), store, "event:recent:50", func(context.Context) ([]string, error) {
		return []string{"A. Matthews"}, nil
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0] != "A. Matthews" {
		t.Fatalf("unexpected value: %v", got)
	}

	if _, err := Load(context.Background(), store, "event:recent:50", func(context.Context) (int, error) {
		return 0, nil
	}); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}
