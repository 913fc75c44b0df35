// Package scenecache keeps encoded scene images keyed by what was drawn.
package scenecache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"vector3d-calc/internal/imageio"
	"vector3d-calc/internal/raster"
)

// Renderer produces the encoded image for a scene.
type Renderer func(arrows []raster.Arrow, opts raster.Options, f imageio.Format) ([]byte, error)

// Cache is a concurrency-safe, size-bounded cache of encoded scenes. When full
// the oldest entry is evicted.
type Cache struct {
	mu     sync.RWMutex
	items  map[string][]byte
	order  []string
	limit  int
	render Renderer

	hits, misses int
}

// New returns a cache holding at most limit scenes; limit <= 0 means 64.
func New(limit int, render Renderer) *Cache {
	if limit <= 0 {
		limit = 64
	}
	return &Cache{
		items:  make(map[string][]byte),
		limit:  limit,
		render: render,
	}
}

// Key fingerprints a scene. Arrows in a different order give a different key
// since later arrows win depth ties.
func Key(arrows []raster.Arrow, opts raster.Options, f imageio.Format) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%+v", f, opts)
	for _, a := range arrows {
		fmt.Fprintf(h, "|%s|%02x%02x%02x|%v", a.Name, a.Color.R, a.Color.G, a.Color.B, [3]float64(a.Vec))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the encoded scene, rendering it on a miss. Render errors are not
// cached.
func (c *Cache) Get(arrows []raster.Arrow, opts raster.Options, f imageio.Format) ([]byte, error) {
	key := Key(arrows, opts, f)

	c.mu.RLock()
	if data, ok := c.items[key]; ok {
		c.mu.RUnlock()
		c.hit()
		return data, nil
	}
	c.mu.RUnlock()

	data, err := c.render(arrows, opts, f)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if existing, ok := c.items[key]; ok {
		return existing, nil
	}
	if len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.items[key] = data
	c.order = append(c.order, key)
	return data, nil
}

func (c *Cache) hit() {
	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
}

// Stats reports cached entries, hits and misses.
func (c *Cache) Stats() (size, hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items), c.hits, c.misses
}
