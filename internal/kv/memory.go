package kv

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore — in-memory реализация Store поверх go-cache.
// Используется на стадии без внешнего Redis и в тестах.
type MemoryStore struct {
	values *cache.Cache

	mu   sync.Mutex
	sets *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: cache.New(cache.NoExpiration, 10*time.Minute),
		sets:   cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		m.values.Delete(key)
		return nil
	}
	m.values.Set(key, value, ttl)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.values.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	return v.([]byte), nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.values.Delete(key)
		m.sets.Delete(key)
	}
	return nil
}

func (m *MemoryStore) SAdd(_ context.Context, key, member string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	members := map[string]struct{}{}
	if v, ok := m.sets.Get(key); ok {
		members = v.(map[string]struct{})
	}
	members[member] = struct{}{}
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	m.sets.Set(key, members, ttl)
	return nil
}

func (m *MemoryStore) SMembers(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.sets.Get(key)
	if !ok {
		return nil, nil
	}
	members := v.(map[string]struct{})
	result := make([]string, 0, len(members))
	for member := range members {
		result = append(result, member)
	}
	return result, nil
}
