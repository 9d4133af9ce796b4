package protocol

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto"
)

const (
	defaultNumCounters = 1e7 // 10M counters for admission policy
	defaultMaxCost     = 1e8 // 100MB max cost
	defaultBufferItems = 64  // Buffer items for async writes
	defaultTTL         = 5 * time.Minute
)

// ResponseCache caches routed responses so agents issuing the same
// prompt against the same target and model reuse the earlier result.
type ResponseCache struct {
	cache  *ristretto.Cache
	ttl    time.Duration
	stats  *CacheStats
	mu     sync.RWMutex
	closed bool
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	TTL         time.Duration
}

// NewResponseCache creates a response cache. A nil config uses the
// defaults.
func NewResponseCache(config *CacheConfig) (*ResponseCache, error) {
	cfg := applyCacheDefaults(config)

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &ResponseCache{
		cache: cache,
		ttl:   cfg.TTL,
		stats: &CacheStats{},
	}, nil
}

func applyCacheDefaults(config *CacheConfig) *CacheConfig {
	cfg := &CacheConfig{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
		TTL:         defaultTTL,
	}

	if config == nil {
		return cfg
	}

	if config.NumCounters > 0 {
		cfg.NumCounters = config.NumCounters
	}
	if config.MaxCost > 0 {
		cfg.MaxCost = config.MaxCost
	}
	if config.BufferItems > 0 {
		cfg.BufferItems = config.BufferItems
	}
	if config.TTL > 0 {
		cfg.TTL = config.TTL
	}

	return cfg
}

// Key derives the cache key for a request and its resolved model. The
// key covers everything that changes the completion output.
func (rc *ResponseCache) Key(target Target, action Action, model, prompt, systemPrompt string) string {
	h := sha256.New()
	h.Write([]byte(strings.Join([]string{
		string(target),
		string(action),
		model,
		prompt,
		systemPrompt,
	}, "|")))
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached response by key. Hits come back as copies
// marked Cached.
func (rc *ResponseCache) Get(key string) (*Response, bool) {
	rc.mu.RLock()
	if rc.closed {
		rc.mu.RUnlock()
		return nil, false
	}
	rc.mu.RUnlock()

	value, found := rc.cache.Get(key)
	if !found {
		rc.stats.recordMiss()
		return nil, false
	}

	cached, ok := value.(*Response)
	if !ok {
		rc.stats.recordMiss()
		return nil, false
	}

	rc.stats.recordHit()
	result := *cached
	result.Cached = true
	return &result, true
}

// Put stores a response with the default TTL.
func (rc *ResponseCache) Put(key string, resp *Response) bool {
	return rc.PutWithTTL(key, resp, rc.ttl)
}

// PutWithTTL stores a response with a custom TTL.
func (rc *ResponseCache) PutWithTTL(key string, resp *Response, ttl time.Duration) bool {
	rc.mu.RLock()
	if rc.closed {
		rc.mu.RUnlock()
		return false
	}
	rc.mu.RUnlock()

	if resp == nil {
		return false
	}

	stored := *resp
	stored.Cached = false

	cost := int64(len(stored.Result))
	if cost < 1 {
		cost = 1
	}

	ok := rc.cache.SetWithTTL(key, &stored, cost, ttl)
	if ok {
		rc.stats.recordSet()
	}
	return ok
}

// Delete removes an entry from the cache.
func (rc *ResponseCache) Delete(key string) {
	rc.mu.RLock()
	if rc.closed {
		rc.mu.RUnlock()
		return
	}
	rc.mu.RUnlock()

	rc.cache.Del(key)
}

// Clear removes all entries from the cache.
func (rc *ResponseCache) Clear() {
	rc.mu.RLock()
	if rc.closed {
		rc.mu.RUnlock()
		return
	}
	rc.mu.RUnlock()

	rc.cache.Clear()
}

// Wait blocks until pending writes are applied. Ristretto admits
// entries asynchronously, so readers that need their own writes call
// this first.
func (rc *ResponseCache) Wait() {
	rc.mu.RLock()
	if rc.closed {
		rc.mu.RUnlock()
		return
	}
	rc.mu.RUnlock()

	rc.cache.Wait()
}

// Close releases cache resources.
func (rc *ResponseCache) Close() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.closed {
		return
	}
	rc.closed = true
	rc.cache.Close()
}

// TTL returns the default entry lifetime.
func (rc *ResponseCache) TTL() time.Duration {
	return rc.ttl
}

// Stats returns the cache counters.
func (rc *ResponseCache) Stats() *CacheStats {
	return rc.stats
}

// CacheStats tracks cache performance counters.
type CacheStats struct {
	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

func (s *CacheStats) recordHit()  { s.hits.Add(1) }
func (s *CacheStats) recordMiss() { s.misses.Add(1) }
func (s *CacheStats) recordSet()  { s.sets.Add(1) }

// Hits returns the total number of cache hits.
func (s *CacheStats) Hits() int64 { return s.hits.Load() }

// Misses returns the total number of cache misses.
func (s *CacheStats) Misses() int64 { return s.misses.Load() }

// Sets returns the total number of stored responses.
func (s *CacheStats) Sets() int64 { return s.sets.Load() }

// HitRate returns the hit rate as a value between 0 and 1.
func (s *CacheStats) HitRate() float64 {
	total := s.Hits() + s.Misses()
	if total == 0 {
		return 0
	}
	return float64(s.Hits()) / float64(total)
}
