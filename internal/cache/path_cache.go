package cache

import (
	"sync"
	"sync/atomic"
)

// PathCache holds rendered responses keyed by request path until the path
// is revalidated. Each path carries a generation that Revalidate bumps, so a
// body rendered before a revalidation can never be stored after it.
type PathCache struct {
	mu            sync.Mutex
	bodies        map[string][]byte
	generations   map[string]uint64
	invalidations atomic.Int64
}

func NewPathCache() *PathCache {
	return &PathCache{
		bodies:      make(map[string][]byte),
		generations: make(map[string]uint64),
	}
}

// Get returns the cached body for path, if any, and the path's current
// generation. Pass the generation to SetIfUnchanged when filling a miss.
func (c *PathCache) Get(path string) ([]byte, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.bodies[path]
	return body, c.generations[path], ok
}

// SetIfUnchanged stores body only if path has not been revalidated since gen
// was read. It reports whether the body was stored.
func (c *PathCache) SetIfUnchanged(path string, gen uint64, body []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[path] != gen {
		return false
	}
	c.bodies[path] = body
	return true
}

// Revalidate drops the cached body for path so the next read re-renders it.
func (c *PathCache) Revalidate(path string) {
	c.mu.Lock()
	delete(c.bodies, path)
	c.generations[path]++
	c.mu.Unlock()
	c.invalidations.Add(1)
}

// Invalidations reports how many times Revalidate has been called.
func (c *PathCache) Invalidations() int64 {
	return c.invalidations.Load()
}
