package resolution

import (
	"sync"

	"github.com/tmpltools/staticfn/internal/core/domain/callable"
)

// resolutionCache memoizes successful resolutions, keyed by the lower-cased,
// post-shortcut function name. Entries are never evicted; the cache lives as
// long as the resolver that owns it. The lock allows one resolver instance to
// back concurrent template renders.
type resolutionCache struct {
	mu      sync.RWMutex
	entries map[string]callable.Descriptor
}

func newResolutionCache() *resolutionCache {
	return &resolutionCache{
		entries: make(map[string]callable.Descriptor, 16),
	}
}

// get retrieves a memoized descriptor and reports a cache hit with the
// second return value.
func (c *resolutionCache) get(name string) (callable.Descriptor, bool) {
	c.mu.RLock()
	d, ok := c.entries[name]
	c.mu.RUnlock()
	return d, ok
}

// put memoizes a successful resolution. A cached entry, once set, is never
// invalidated for that key.
func (c *resolutionCache) put(name string, d callable.Descriptor) {
	c.mu.Lock()
	c.entries[name] = d
	c.mu.Unlock()
}
