// Package querycache keeps CRUD screens consistent after writes. Reads
// go through a keyed read-through cache; writes invalidate the key
// prefixes they affect so dependent views refetch on their next read.
//
// The cache is an injected, session-owned structure, never a package
// singleton. It is created at login and cleared at logout.
package querycache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/thanhvu/engcenter-console/internal/pkg/metrics"
)

// Status is the observable state of one cached query
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// entry is one cached query result
type entry struct {
	status    Status
	data      any
	err       error
	fetchedAt time.Time
	stale     bool
}

// Cache maps query keys to their cached state. All access is guarded by
// one mutex; entries hold decoded results, never raw responses.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	group    singleflight.Group
	freshFor time.Duration
	metrics  *metrics.CacheMetrics
	logger   zerolog.Logger
}

// New creates a cache whose successful results stay fresh for freshFor.
// metrics may be nil.
func New(freshFor time.Duration, m *metrics.CacheMetrics, logger zerolog.Logger) *Cache {
	return &Cache{
		entries:  make(map[string]*entry),
		freshFor: freshFor,
		metrics:  m,
		logger:   logger,
	}
}

// Key builds a cache key from an entity tag and the parameters that
// select its data subset. Structurally equal params yield equal keys;
// JSON object keys serialize in a deterministic order.
func Key(tag string, params any) string {
	if params == nil {
		return tag
	}
	encoded, err := json.Marshal(params)
	if err != nil {
		// Unserializable params cannot share a cache slot
		return tag + ":!" + time.Now().String()
	}
	return tag + ":" + string(encoded)
}

// Fetch returns the cached value for key, or loads it with fn. Fresh
// successful results are served without a network call; concurrent
// callers with equal keys share a single in-flight fn.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.status == StatusSuccess && !e.stale && time.Since(e.fetchedAt) < c.freshFor {
		data := e.data
		c.mu.Unlock()
		c.count(func(m *metrics.CacheMetrics) { m.Hits.Inc() })
		return data.(T), nil
	}
	if e, ok := c.entries[key]; ok {
		e.status = StatusLoading
	} else {
		c.entries[key] = &entry{status: StatusLoading}
	}
	c.mu.Unlock()

	c.count(func(m *metrics.CacheMetrics) { m.Misses.Inc() })

	value, err, shared := c.group.Do(key, func() (any, error) {
		return fn(ctx)
	})
	if shared {
		c.count(func(m *metrics.CacheMetrics) { m.SharedFlights.Inc() })
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.entries[key] = &entry{status: StatusError, err: err}
		c.logger.Debug().Str("key", key).Err(err).Msg("Query failed")
		return zero, err
	}

	c.entries[key] = &entry{status: StatusSuccess, data: value, fetchedAt: time.Now()}
	return value.(T), nil
}

// Invalidate marks every entry whose key starts with one of the given
// prefixes as stale. The next Fetch on a stale key reloads.
func (c *Cache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				if !e.stale {
					e.stale = true
					c.count(func(m *metrics.CacheMetrics) { m.Invalidations.Inc() })
				}
				break
			}
		}
	}
}

// Status reports the state of one key; unknown keys are idle
func (c *Cache) Status(key string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.status
	}
	return StatusIdle
}

// Stale reports whether the key has been invalidated since its last load
func (c *Cache) Stale(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.stale
	}
	return false
}

// Peek returns the cached data for key without fetching, regardless of
// freshness. The second return reports whether a successful result exists.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.status == StatusSuccess {
		return e.data, true
	}
	return nil, false
}

// Clear drops every entry. Called at session teardown.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) count(fn func(*metrics.CacheMetrics)) {
	if c.metrics != nil {
		fn(c.metrics)
	}
}

// Mutate runs one write operation. On success every query under the
// declared key prefixes is invalidated; on failure the cache is left
// byte-for-byte untouched and the error propagates to the caller.
func Mutate[T any](ctx context.Context, c *Cache, op func(context.Context) (T, error), invalidates ...string) (T, error) {
	var zero T

	value, err := op(ctx)
	if err != nil {
		return zero, err
	}

	c.Invalidate(invalidates...)
	c.logger.Debug().Strs("invalidated", invalidates).Msg("Mutation committed")
	return value, nil
}
