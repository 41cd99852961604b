package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRU is a size-bounded cache whose entries also expire after ttl.
type LRU[V any] struct {
	capacity int
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
}

func NewLRU[V any](capacity int, ttl time.Duration) *LRU[V] {
	return &LRU[V]{
		capacity: capacity,
		ttl:      ttl,
		interval: defaultJanitorInterval,
		now:      time.Now,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	ele, ok := c.items[key]
	if !ok {
		return zero, false
	}
	ent := ele.Value.(*entry[V])
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		return zero, false
	}
	c.ll.MoveToFront(ele)
	return ent.value, true
}

func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)
	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = expiration
		return
	}

	c.items[key] = c.ll.PushFront(&entry[V]{key: key, value: value, expiration: expiration})
	if c.capacity > 0 && c.ll.Len() > c.capacity {
		if oldest := c.ll.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRU[V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry[V]).key)
}

// Start runs the janitor that drops expired entries until ctx is done.
func (c *LRU[V]) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRU[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry[V]).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
