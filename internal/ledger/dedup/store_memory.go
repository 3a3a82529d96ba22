package dedup

import (
	"context"
	"sync"

	"aidproof/pkg/platform/sentinel"
)

type InMemoryCache struct {
	mu      sync.RWMutex
	anchors map[string]string
}

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{anchors: make(map[string]string)}
}

func (c *InMemoryCache) Get(_ context.Context, fingerprint string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	anchorID, ok := c.anchors[fingerprint]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return anchorID, nil
}

func (c *InMemoryCache) Put(_ context.Context, fingerprint, anchorID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchors[fingerprint] = anchorID
	return nil
}
