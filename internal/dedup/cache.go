package dedup

import (
	"container/list"
	"context"
	"idverify/pkg/domain"
	"idverify/pkg/logger"
	"idverify/pkg/metrics"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultMaxSize bounds the number of cached verdicts.
	DefaultMaxSize = 10000
	// DefaultTTL is how long a verdict stays valid.
	DefaultTTL = 5 * time.Minute
	// DefaultSweepInterval is how often expired verdicts are purged.
	DefaultSweepInterval = 5 * time.Minute
)

// Key identifies a cached verdict. Value is always the decrypted identity
// number, never a ciphertext.
type Key struct {
	Type  domain.IdentityType
	Value string
}

// CacheOptions configures a Cache. Zero fields take the defaults.
type CacheOptions struct {
	MaxSize       int
	TTL           time.Duration
	SweepInterval time.Duration
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	TotalEntries   int   `json:"totalEntries"`
	ValidEntries   int   `json:"validEntries"`
	ExpiredEntries int   `json:"expiredEntries"`
	MaxSize        int   `json:"maxSize"`
	TTLMillis      int64 `json:"ttlMs"`
}

type cacheEntry struct {
	key       Key
	verdict   domain.DuplicateVerdict
	expiresAt time.Time
}

// Cache is a bounded verdict cache with per-entry expiry. When full, the
// oldest inserted entry is evicted; reads do not change an entry's position.
// It is safe for concurrent use.
type Cache struct {
	opts CacheOptions
	now  func() time.Time

	mu    sync.Mutex
	items map[Key]*list.Element
	order *list.List

	lifecycle sync.Mutex
	shutdown  chan struct{}
	finished  chan struct{}
}

// CacheOption customizes a Cache.
type CacheOption func(*Cache)

// WithClock replaces the time source, mostly for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// NewCache constructs an empty cache. Call Start to run the periodic sweep.
func NewCache(opts CacheOptions, options ...CacheOption) *Cache {
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}

	c := &Cache{
		opts:  opts,
		now:   time.Now,
		items: make(map[Key]*list.Element),
		order: list.New(),
	}
	for _, o := range options {
		o(c)
	}

	return c
}

// Get returns the verdict for k if present and not expired. Expired entries
// are left for the sweep.
func (c *Cache) Get(k Key) (domain.DuplicateVerdict, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[k]
	if !ok {
		return domain.DuplicateVerdict{}, false
	}
	e := el.Value.(*cacheEntry) //nolint: forcetypeassert
	if !c.now().Before(e.expiresAt) {
		return domain.DuplicateVerdict{}, false
	}

	return e.verdict, true
}

// Set stores v under k. An existing key gets the new verdict and a fresh
// expiry but keeps its place in the eviction order.
func (c *Cache) Set(k Key, v domain.DuplicateVerdict) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.opts.TTL)
	if el, ok := c.items[k]; ok {
		e := el.Value.(*cacheEntry) //nolint: forcetypeassert
		e.verdict = v
		e.expiresAt = expiresAt

		return
	}

	for c.order.Len() >= c.opts.MaxSize {
		c.removeElement(c.order.Front())
	}
	c.items[k] = c.order.PushBack(&cacheEntry{key: k, verdict: v, expiresAt: expiresAt})
	metrics.DedupCacheEntries.Set(float64(c.order.Len()))
}

func (c *Cache) removeElement(el *list.Element) {
	e := c.order.Remove(el).(*cacheEntry) //nolint: forcetypeassert
	delete(c.items, e.key)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Sweep removes every expired entry and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if e := el.Value.(*cacheEntry); !now.Before(e.expiresAt) { //nolint: forcetypeassert
			c.removeElement(el)
			removed++
		}
		el = next
	}
	metrics.DedupCacheEntries.Set(float64(c.order.Len()))

	return removed
}

// Stats counts valid and expired entries without removing anything.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	s := Stats{
		TotalEntries: c.order.Len(),
		MaxSize:      c.opts.MaxSize,
		TTLMillis:    c.opts.TTL.Milliseconds(),
	}
	for el := c.order.Front(); el != nil; el = el.Next() {
		if now.Before(el.Value.(*cacheEntry).expiresAt) { //nolint: forcetypeassert
			s.ValidEntries++
		} else {
			s.ExpiredEntries++
		}
	}

	return s
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[Key]*list.Element)
	c.order.Init()
	metrics.DedupCacheEntries.Set(0)
}

// Start runs the periodic sweep until Stop is called or ctx is done.
// Calling Start on a running cache is a no-op.
func (c *Cache) Start(ctx context.Context) {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	if c.shutdown != nil {
		return
	}

	shutdown, finished := make(chan struct{}), make(chan struct{})
	c.shutdown, c.finished = shutdown, finished
	go c.run(ctx, shutdown, finished)
}

func (c *Cache) run(ctx context.Context, shutdown <-chan struct{}, finished chan<- struct{}) {
	defer close(finished)

	ticker := time.NewTicker(c.opts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := c.Sweep(); n > 0 {
				logger.Debug(ctx, "swept duplicate cache", zap.Int("removed", n))
			}
		case <-shutdown:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop halts the sweep and waits for it to exit. Stopping a cache that is
// not running is a no-op.
func (c *Cache) Stop() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	if c.shutdown == nil {
		return
	}

	close(c.shutdown)
	<-c.finished
	c.shutdown, c.finished = nil, nil
}
