package category_cache

import (
	"sync"
)

// ── Classification memo ─────────────────────────────────────────────────────
// Stores name → label results per rule-table version. A classifier built from
// an edited rule table has a different version, so it never sees old entries.

type LabelCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func New() *LabelCache {
	return &LabelCache{entries: make(map[string]string)}
}

func key(version, name string) string {
	return version + "\x00" + name
}

func (c *LabelCache) Get(version, name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	label, ok := c.entries[key(version, name)]
	return label, ok
}

func (c *LabelCache) Set(version, name, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(version, name)] = label
}

func (c *LabelCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
