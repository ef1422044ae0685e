package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viccon/sturdyc"

	"bookshelf-backend/pkg/cache"
)

const (
	memoryCapacity = 10000
	memoryShards   = 64
	memoryEvictPct = 10
)

// MemoryCache implements cache.Cache with an in-process sturdyc store.
// Used in development and tests, and as a fallback when Redis is unreachable.
//
// sturdyc applies one TTL per client, fixed at construction. This service
// caches everything with a single fixed TTL, so the per-call ttl argument is
// accepted for interface compatibility but the client TTL is what expires
// entries.
type MemoryCache struct {
	client *sturdyc.Client[[]byte]
	ttl    time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		client: sturdyc.New[[]byte](memoryCapacity, memoryShards, ttl, memoryEvictPct),
		ttl:    ttl,
	}
}

var _ cache.Cache = (*MemoryCache)(nil)

func (m *MemoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := m.client.Get(key)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("memory cache unmarshal %q: %w", key, err)
	}

	return true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory cache marshal %q: %w", key, err)
	}

	m.client.Set(key, data)
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		m.client.Delete(key)
	}
	return nil
}

func (m *MemoryCache) Ping(ctx context.Context) error {
	return nil
}
