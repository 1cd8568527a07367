package cache

import (
	"container/list"
	"sync"

	"github.com/ramihatou97/dcs-sub003/internal/logging"
)

var log = logging.Component("cache")

type entry struct {
	key   Key
	value []byte
}

// lru is a mutex-guarded, capacity-bounded in-memory cache, grounded
// on the same guarded-map shape as the teacher's FileCache, with a
// recency list for eviction instead of a dirty-flagged JSON manifest,
// keyed by Key instead of a file path.
type lru struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[Key]*list.Element
}

func newLRU(capacity int) *lru {
	if capacity <= 0 {
		capacity = 1
	}
	return &lru{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[Key]*list.Element, capacity),
	}
}

func (c *lru) get(key Key) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).value, true
}

func (c *lru) put(key Key, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(&entry{key: key, value: value})
	c.items[key] = el

	for c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.ll.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
		log.Debugw("cache eviction", "key", oldest.Value.(*entry).key.String())
	}
}

func (c *lru) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
