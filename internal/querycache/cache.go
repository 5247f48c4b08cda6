// Package querycache is a process-wide, staleness-based cache for read
// queries. Identical in-flight requests share one fetch, successful results
// are reused until they go stale, and failures are never cached.
//
// Entries are never evicted; the key space is bounded by the number of
// distinct queries the service issues (one list key plus one key per post
// id), which is acceptable for a single-site front end.
package querycache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultStaleAfter is applied to every query that does not set its own
// staleness window.
const DefaultStaleAfter = 5 * time.Minute

// Key identifies one logical query and its parameters.
type Key string

// NewKey builds a key from a query name and its parameters.
func NewKey(name string, params ...any) Key {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, url.PathEscape(strings.TrimSpace(name)))
	for _, param := range params {
		parts = append(parts, url.PathEscape(fmt.Sprint(param)))
	}
	return Key(strings.Join(parts, "/"))
}

// Status describes the cache state of one key.
type Status struct {
	Cached    bool
	Fresh     bool
	InFlight  bool
	FetchedAt time.Time
}

type entry struct {
	value     any
	fetchedAt time.Time
}

// Cache stores query results keyed by Key. The zero value is not usable;
// construct with New.
type Cache struct {
	mu         sync.Mutex
	entries    map[Key]entry
	inFlight   map[Key]bool
	group      singleflight.Group
	staleAfter time.Duration
	now        func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithStaleAfter sets the default staleness window.
func WithStaleAfter(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.staleAfter = d
		}
	}
}

// WithClock replaces the wall clock used to age entries.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[Key]entry),
		inFlight:   make(map[Key]bool),
		staleAfter: DefaultStaleAfter,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StaleAfter returns the default staleness window.
func (c *Cache) StaleAfter() time.Duration {
	if c == nil {
		return DefaultStaleAfter
	}
	return c.staleAfter
}

// Query returns the cached value for key while it is fresh, otherwise it
// runs fetch, sharing the call with any request already in flight.
func Query[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	return QueryWithStaleAfter(ctx, c, key, 0, fetch)
}

// QueryWithStaleAfter is Query with an explicit staleness window. A
// non-positive window uses the cache default.
func QueryWithStaleAfter[T any](ctx context.Context, c *Cache, key Key, staleAfter time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if fetch == nil {
		return zero, errors.New("fetch function is required")
	}
	ctx = normalizeContext(ctx)
	if c == nil {
		return fetch(ctx)
	}
	if staleAfter <= 0 {
		staleAfter = c.staleAfter
	}
	if value, ok := c.fresh(key, staleAfter); ok {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
	}
	return load(ctx, c, key, fetch)
}

// Revalidate refetches key regardless of freshness. It joins a fetch that
// is already in flight instead of starting another one.
func Revalidate[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if fetch == nil {
		return zero, errors.New("fetch function is required")
	}
	ctx = normalizeContext(ctx)
	if c == nil {
		return fetch(ctx)
	}
	return load(ctx, c, key, fetch)
}

// load runs fetch once per key at a time. The shared call is detached from
// the caller's cancellation so that one departing waiter cannot fail the
// others; a waiter whose context ends gets ctx.Err() and the late result
// only lands in the cache.
func load[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	shared := context.WithoutCancel(ctx)
	results := c.group.DoChan(string(key), func() (any, error) {
		c.setInFlight(key, true)
		defer c.setInFlight(key, false)

		value, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		c.store(key, value)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return zero, res.Err
		}
		typed, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("query %q returned %T, want %T", key, res.Val, zero)
		}
		return typed, nil
	}
}

// Invalidate drops the cached value for key. An in-flight fetch still
// stores its result when it completes.
func (c *Cache) Invalidate(key Key) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len reports the number of cached entries, fresh or stale.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Status reports the cache state for key against the default window.
func (c *Cache) Status(key Key) Status {
	if c == nil {
		return Status{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	status := Status{InFlight: c.inFlight[key]}
	if cached, ok := c.entries[key]; ok {
		status.Cached = true
		status.FetchedAt = cached.fetchedAt
		status.Fresh = c.now().Sub(cached.fetchedAt) < c.staleAfter
	}
	return status
}

func (c *Cache) fresh(key Key, staleAfter time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cached, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(cached.fetchedAt) >= staleAfter {
		return nil, false
	}
	return cached.value, true
}

func (c *Cache) store(key Key, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, fetchedAt: c.now()}
	c.mu.Unlock()
}

func (c *Cache) setInFlight(key Key, inFlight bool) {
	c.mu.Lock()
	if inFlight {
		c.inFlight[key] = true
	} else {
		delete(c.inFlight, key)
	}
	c.mu.Unlock()
}

func normalizeContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
