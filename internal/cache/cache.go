// Package cache implements the orchestrator's process-wide cache
// (spec.md §4.11, §9): intermediate stage results keyed by
// (normalized-input-hash, stage-name, model-name), so re-running the
// pipeline over the same notes with the same provider never re-pays a
// stage it already computed. An in-memory LRU serves every read; an
// optional sqlite-backed store persists entries across process
// restarts.
package cache

// Cache composes the in-memory LRU with an optional persistent store.
// A lookup checks memory first, then falls through to the store and
// repopulates the LRU on a persistent hit.
type Cache struct {
	mem   *lru
	store *sqliteStore
}

// New returns a Cache with the given in-memory capacity (entry count).
// If persistPath is non-empty, a sqlite-backed store is opened there
// too; an empty path runs memory-only.
func New(capacity int, persistPath string) (*Cache, error) {
	c := &Cache{mem: newLRU(capacity)}
	if persistPath != "" {
		store, err := openStore(persistPath)
		if err != nil {
			return nil, err
		}
		c.store = store
	}
	return c, nil
}

// Get returns the cached bytes for key, checking memory then the
// persistent store.
func (c *Cache) Get(key Key) ([]byte, bool) {
	if v, ok := c.mem.get(key); ok {
		log.Debugw("cache hit", "key", key.String(), "tier", "memory")
		return v, true
	}
	if c.store == nil {
		return nil, false
	}
	v, ok := c.store.get(key)
	if !ok {
		return nil, false
	}
	log.Debugw("cache hit", "key", key.String(), "tier", "sqlite")
	c.mem.put(key, v)
	return v, true
}

// Put stores value in memory and, if configured, in the persistent
// store. A persistence failure is logged but never fails the caller -
// the in-memory entry still serves this process's lifetime.
func (c *Cache) Put(key Key, value []byte) {
	c.mem.put(key, value)
	if c.store == nil {
		return
	}
	if err := c.store.put(key, value); err != nil {
		log.Warnw("cache persistence write failed", "key", key.String(), "error", err)
	}
}

// Len reports the current in-memory entry count, for metrics/tests.
func (c *Cache) Len() int { return c.mem.len() }

// Close releases the persistent store, if one is open.
func (c *Cache) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.close()
}
