package conformance

import (
	"context"
	"slices"
	"sync"
	"time"

	"ams-coverage/core/reconcile"

	"golang.org/x/sync/singleflight"
)

// RuleLoader loads the framework rules of a named pack.
type RuleLoader interface {
	Load(ctx context.Context, name string) ([]reconcile.FrameworkRule, error)
}

// cacheEntry holds the rules of one pack and when they were loaded.
type cacheEntry struct {
	rules []reconcile.FrameworkRule
	built time.Time
}

// CachedLoader reuses loaded packs for a TTL.
// Concurrent misses for the same pack share one load.
type CachedLoader struct {
	next RuleLoader
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
}

// NewCachedLoader wraps next with a TTL cache. A zero TTL disables caching.
func NewCachedLoader(next RuleLoader, ttl time.Duration) *CachedLoader {
	return &CachedLoader{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachedLoader) lookup(name string) ([]reconcile.FrameworkRule, bool) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()

	if !ok || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.rules, true
}

// Load returns a copy of the cached rules, loading them on a miss.
func (c *CachedLoader) Load(ctx context.Context, name string) ([]reconcile.FrameworkRule, error) {
	if c.ttl <= 0 {
		return c.next.Load(ctx, name)
	}

	if rules, ok := c.lookup(name); ok {
		return slices.Clone(rules), nil
	}

	result, err, _ := c.sf.Do(name, func() (any, error) {
		// Another caller may have filled the entry while we waited
		if rules, ok := c.lookup(name); ok {
			return rules, nil
		}

		rules, err := c.next.Load(ctx, name)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[name] = cacheEntry{rules: rules, built: c.now()}
		c.mu.Unlock()

		return rules, nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(result.([]reconcile.FrameworkRule)), nil
}

// Invalidate drops the cached rules of a pack.
func (c *CachedLoader) Invalidate(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}
