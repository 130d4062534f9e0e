// Package dedup provides the in-flight mutation guard. A second identical
// mutation (same resource, operation and id) issued before the first
// resolves, a double-clicked accept for example, is suppressed client-side.
// The guard is process-local; cross-client idempotence stays with the server.
package dedup

import "sync"

// Guard tracks mutation keys currently in flight.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Begin registers key as in flight. It returns false when the same key is
// already outstanding, in which case End must not be called.
func (g *Guard) Begin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.inflight[key]; ok {
		return false
	}
	g.inflight[key] = struct{}{}
	return true
}

// End releases key so the next identical mutation may proceed.
func (g *Guard) End(key string) {
	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
}
