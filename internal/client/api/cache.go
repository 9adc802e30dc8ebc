package api

import "sync"

// Cache tags, one per resource group. A mutation invalidates every cached
// query carrying its tag(s).
const (
	tagProducts   = "products"
	tagCategories = "categories"
	tagSuppliers  = "suppliers"
	tagUsers      = "users"
	tagOrders     = "orders"
	tagWishlist   = "wishlist"
	tagDashboard  = "dashboard"
)

// queryCache stores raw response bodies keyed by request path, grouped by
// resource tag. No TTL: entries live until a mutation invalidates the tag.
// Concurrent fills of the same key overwrite each other; last resolved wins.
type queryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	byTag   map[string]map[string]struct{}
}

func newQueryCache() *queryCache {
	return &queryCache{
		entries: make(map[string][]byte),
		byTag:   make(map[string]map[string]struct{}),
	}
}

func (c *queryCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *queryCache) put(tag, key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = data
	if c.byTag[tag] == nil {
		c.byTag[tag] = make(map[string]struct{})
	}
	c.byTag[tag][key] = struct{}{}
}

func (c *queryCache) invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tag := range tags {
		for key := range c.byTag[tag] {
			delete(c.entries, key)
		}
		delete(c.byTag, tag)
	}
}
