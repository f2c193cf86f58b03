package store

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of one fixed-window rate-limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	Reset     time.Time
}

// Counter is a fixed-window request counter. Take consumes one unit for
// key unless the window quota is already spent.
type Counter interface {
	Take(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
}

// Cache is a byte-valued cache with per-entry TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type windowRecord struct {
	count int
	reset time.Time
}

// MemoryCounter is the in-process Counter used for single-instance
// deployments. State resets on process restart.
type MemoryCounter struct {
	mu      sync.Mutex
	records map[string]*windowRecord
	now     func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		records: make(map[string]*windowRecord),
		now:     time.Now,
	}
}

func (m *MemoryCounter) Take(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	rec, ok := m.records[key]
	if !ok || now.After(rec.reset) {
		rec = &windowRecord{count: 1, reset: now.Add(window)}
		m.records[key] = rec
		return Decision{Allowed: true, Remaining: limit - 1, Reset: rec.reset}, nil
	}

	if rec.count >= limit {
		return Decision{Allowed: false, Remaining: 0, Reset: rec.reset}, nil
	}

	rec.count++
	return Decision{Allowed: true, Remaining: limit - rec.count, Reset: rec.reset}, nil
}

type cacheEntry struct {
	value   []byte
	expires time.Time
}

// MemoryCache is the in-process Cache counterpart of MemoryCounter.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().After(entry.expires) {
		delete(m.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = cacheEntry{value: value, expires: m.now().Add(ttl)}
}
