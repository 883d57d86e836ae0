package listing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ceitm/platform/internal/app/system/listing"
)

func TestLoaderStaleCompletionDiscarded(t *testing.T) {
	var l listing.Loader[string]

	// Request for category X, then Y before X completes.
	tokX := l.Begin("X")
	tokY := l.Begin("Y")

	if ok := l.Complete(tokY, []string{"y1"}, nil); !ok {
		t.Fatal("latest completion should be applied")
	}

	// X's response arrives after Y's: it must be discarded.
	if ok := l.Complete(tokX, []string{"x1"}, nil); ok {
		t.Fatal("stale completion must be discarded")
	}

	cur := l.Current()
	if cur.Err != nil {
		t.Fatalf("unexpected error: %v", cur.Err)
	}
	if cur.Key != "Y" || len(cur.Items) != 1 || cur.Items[0] != "y1" {
		t.Errorf("current result overwritten by stale response: %+v", cur)
	}
}

func TestLoaderNotLoaded(t *testing.T) {
	var l listing.Loader[int]
	cur := l.Current()
	if !errors.Is(cur.Err, listing.ErrNotLoaded) {
		t.Errorf("before any completion: err = %v, want ErrNotLoaded", cur.Err)
	}
}

func TestLoaderFailureDistinctFromEmpty(t *testing.T) {
	var l listing.Loader[int]

	boom := errors.New("upstream down")
	l.Complete(l.Begin("A"), nil, boom)
	if cur := l.Current(); !errors.Is(cur.Err, boom) {
		t.Errorf("failed load: err = %v, want recorded failure", cur.Err)
	}

	// A successful empty load is not an error.
	l.Complete(l.Begin("A"), []int{}, nil)
	cur := l.Current()
	if cur.Err != nil {
		t.Errorf("empty load reported as failure: %v", cur.Err)
	}
	if len(cur.Items) != 0 {
		t.Errorf("expected empty items, got %v", cur.Items)
	}
}

func TestCacheServesSnapshotWithinMaxAge(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) ([]int, error) {
		calls++
		return []int{1, 2}, nil
	}
	c := listing.NewCache(fetch, time.Minute)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		items, err := c.Items(ctx)
		if err != nil {
			t.Fatalf("Items: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("items: got %v", items)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestCacheReturnsErrorNotEmptyList(t *testing.T) {
	boom := errors.New("mongo unreachable")
	c := listing.NewCache(func(ctx context.Context) ([]int, error) {
		return nil, boom
	}, time.Minute)

	if _, err := c.Items(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Items err = %v, want fetch failure surfaced", err)
	}
}

func TestCacheRetriesAfterFailure(t *testing.T) {
	calls := 0
	c := listing.NewCache(func(ctx context.Context) ([]int, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return []int{7}, nil
	}, time.Minute)

	ctx := context.Background()
	if _, err := c.Items(ctx); err == nil {
		t.Fatal("first call should fail")
	}
	items, err := c.Items(ctx)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(items) != 1 || items[0] != 7 {
		t.Errorf("second call items: %v", items)
	}
}

func TestCacheInvalidate(t *testing.T) {
	calls := 0
	c := listing.NewCache(func(ctx context.Context) ([]int, error) {
		calls++
		return []int{calls}, nil
	}, time.Hour)

	ctx := context.Background()
	if _, err := c.Items(ctx); err != nil {
		t.Fatal(err)
	}
	c.Invalidate()
	items, err := c.Items(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 2 || items[0] != 2 {
		t.Errorf("after Invalidate: calls=%d items=%v", calls, items)
	}
}
