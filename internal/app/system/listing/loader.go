// internal/app/system/listing/loader.go
package listing

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotLoaded is reported by Current and Snapshot before any load has
// completed. It keeps "nothing fetched yet" distinct from "fetched, empty".
var ErrNotLoaded = errors.New("listing: no load has completed")

// Loader guards parameterized list loads so that the most recently requested
// parameters always win: when loads overlap, a completion whose Begin token
// is not the latest is discarded. There is no cancellation; a superseded
// fetch simply has its result ignored.
//
// A failed load is recorded as a distinct error state, never as an empty
// list.
type Loader[T any] struct {
	mu     sync.Mutex
	seq    uint64
	key    string // key of the latest Begin
	loaded bool
	curKey string // key of the last applied completion
	items  []T
	err    error
	at     time.Time
}

// Token identifies one load attempt. Pass it back to Complete.
type Token struct {
	seq uint64
	key string
}

// Key returns the load parameters the token was issued for.
func (t Token) Key() string { return t.key }

// Begin registers intent to load for the given parameter key (for example a
// category identifier) and returns the token the eventual completion must
// present. Any load begun earlier becomes stale immediately.
func (l *Loader[T]) Begin(key string) Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.key = key
	return Token{seq: l.seq, key: key}
}

// Complete applies the result of the load identified by tok. It reports
// whether the result was applied; false means a newer load was begun in the
// meantime and this result was discarded.
func (l *Loader[T]) Complete(tok Token, items []T, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tok.seq != l.seq {
		return false
	}
	l.loaded = true
	l.curKey = tok.key
	l.items = items
	l.err = err
	l.at = time.Now()
	return true
}

// Result is the last applied load.
type Result[T any] struct {
	Key   string
	Items []T
	Err   error
	At    time.Time
}

// Current returns the last applied result. Before any completion it returns
// a Result whose Err is ErrNotLoaded.
func (l *Loader[T]) Current() Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.loaded {
		return Result[T]{Err: ErrNotLoaded}
	}
	return Result[T]{Key: l.curKey, Items: l.items, Err: l.err, At: l.at}
}

// Cache is a snapshot cache over a single unparameterized fetch, built on
// Loader's staleness guard. It is used by the public pages to avoid hitting
// the database on every live-search keystroke while keeping "load failed"
// observable as an error rather than an empty page.
type Cache[T any] struct {
	fetch  func(context.Context) ([]T, error)
	maxAge time.Duration
	loader Loader[T]

	mu sync.Mutex // serializes refreshes
}

// NewCache returns a cache that refreshes via fetch when its snapshot is
// older than maxAge or errored.
func NewCache[T any](fetch func(context.Context) ([]T, error), maxAge time.Duration) *Cache[T] {
	return &Cache[T]{fetch: fetch, maxAge: maxAge}
}

// Items returns the cached snapshot, refreshing it first when it is absent,
// stale, or recorded a failure. A refresh failure is returned as an error;
// callers must not render it as an empty list.
func (c *Cache[T]) Items(ctx context.Context) ([]T, error) {
	cur := c.loader.Current()
	if cur.Err == nil && time.Since(cur.At) < c.maxAge {
		return cur.Items, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have refreshed while we waited.
	cur = c.loader.Current()
	if cur.Err == nil && time.Since(cur.At) < c.maxAge {
		return cur.Items, nil
	}

	tok := c.loader.Begin("")
	items, err := c.fetch(ctx)
	c.loader.Complete(tok, items, err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Invalidate expires the snapshot so the next Items call refreshes. Admin
// mutations call this so the public pages pick up changes immediately. The
// stale snapshot stays readable until then.
func (c *Cache[T]) Invalidate() {
	c.loader.mu.Lock()
	c.loader.at = time.Time{}
	c.loader.mu.Unlock()
}
