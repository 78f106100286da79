// Package cache memoizes name lookups of a slow resolver, such as one that
// walks ELF symbol tables, across many table constructions.
package cache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vietanhduong/wcap"
)

type LookupResult struct {
	Addr uintptr
	Hit  bool
}

type Cache struct {
	cache    *lru.Cache[string, uintptr]
	resolver wcap.Resolver
	evicted  atomic.Int64
	hits     atomic.Int64
	misses   atomic.Int64
}

var _ wcap.Resolver = (*Cache)(nil)

// New caches up to size answers of resolver, absent answers included.
func New(resolver wcap.Resolver, size int) (*Cache, error) {
	if resolver == nil {
		resolver = &wcap.EmptyResolver{}
	}
	this := &Cache{resolver: resolver}
	var err error
	this.cache, err = lru.NewWithEvict[string, uintptr](size, func(string, uintptr) {
		this.evicted.Add(1)
	})
	if err != nil {
		return nil, fmt.Errorf("new lru cache: %w", err)
	}
	return this, nil
}

func (c *Cache) Get(name string) LookupResult {
	if addr, ok := c.cache.Get(name); ok {
		c.hits.Add(1)
		return LookupResult{Addr: addr, Hit: true}
	}
	c.misses.Add(1)
	addr := c.resolver.Lookup(name)
	c.cache.Add(name, addr)
	return LookupResult{Addr: addr, Hit: false}
}

func (c *Cache) Lookup(name string) uintptr { return c.Get(name).Addr }

func (c *Cache) Len() int { return c.cache.Len() }

func (c *Cache) Purge() { c.cache.Purge() }

func (c *Cache) TotalEvicted() int64 { return c.evicted.Load() }

func (c *Cache) ResetEvicted() { c.evicted.Store(0) }

// Stats returns the number of lookups answered from and past the cache.
func (c *Cache) Stats() (hits, misses int64) { return c.hits.Load(), c.misses.Load() }
