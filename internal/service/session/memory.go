package session

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	token    string
	expireAt time.Time
}

func (m *memoryItem) expired() bool {
	return time.Now().After(m.expireAt)
}

// MemoryStore keeps session tokens in process memory. Suitable for a single
// gateway instance; use the Redis store when running more than one.
type MemoryStore struct {
	mu            sync.RWMutex
	data          map[string]*memoryItem
	cleanupTicker *time.Ticker
	done          chan struct{}
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{
		data:          make(map[string]*memoryItem),
		cleanupTicker: time.NewTicker(5 * time.Minute),
		done:          make(chan struct{}),
	}
	go ms.cleanupExpired()
	return ms
}

func (ms *MemoryStore) Put(_ context.Context, id, token string, ttl time.Duration) error {
	expireAt := time.Now().Add(ttl)

	ms.mu.Lock()
	ms.data[id] = &memoryItem{token: token, expireAt: expireAt}
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) Token(_ context.Context, id string) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	item, exists := ms.data[id]
	if !exists || item.expired() {
		if exists {
			delete(ms.data, id)
		}
		return "", ErrNotFound
	}
	return item.token, nil
}

func (ms *MemoryStore) Evict(_ context.Context, id string) error {
	ms.mu.Lock()
	delete(ms.data, id)
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) Close() error {
	ms.cleanupTicker.Stop()
	close(ms.done)
	return nil
}

func (ms *MemoryStore) cleanupExpired() {
	for {
		select {
		case <-ms.done:
			return
		case <-ms.cleanupTicker.C:
			ms.mu.Lock()
			for id, item := range ms.data {
				if item.expired() {
					delete(ms.data, id)
				}
			}
			ms.mu.Unlock()
		}
	}
}
