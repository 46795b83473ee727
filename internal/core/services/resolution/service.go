/*
Package resolution implements the alias resolver: it maps template function
names written in the prefix_method convention to methods on statically
aliased services, memoizing successful lookups.
*/
package resolution

import (
	"strings"
	"sync"

	"github.com/tmpltools/staticfn/internal/core/domain/binding"
	"github.com/tmpltools/staticfn/internal/core/domain/callable"
	"github.com/tmpltools/staticfn/internal/core/ports"
)

type service struct {
	// mu guards aliases, which SetAliases may swap while a shared resolver
	// instance is serving renders. The shortcut table is immutable after
	// construction and needs no lock.
	mu        sync.RWMutex
	aliases   map[string]string
	shortcuts map[string]string
	cache     *resolutionCache
}

// NewService creates a function resolver bound to the given binding set.
// Alias keys, shortcut keys, and shortcut values are normalized to lower
// case; nil tables are treated as empty. The resolution cache starts empty
// and is reset only by constructing a new resolver.
func NewService(bindings binding.Set) ports.FunctionResolver {
	normalized := bindings.Normalized()
	return &service{
		aliases:   normalized.Aliases,
		shortcuts: normalized.Shortcuts,
		cache:     newResolutionCache(),
	}
}

/*
Resolve maps a template function name to an aliased service method.

The name is lower-cased, rewritten through the shortcut table (one pass
only), and served from the cache when a previous call already resolved it.
Otherwise it is split on "_" into a prefix and a method segment; the prefix
is looked up in the alias table and a hit is memoized before returning.
Failures are never memoized: a name with no valid prefix_method shape, or an
unknown prefix, returns false and leaves the cache untouched.
*/
func (s *service) Resolve(name string) (callable.Descriptor, bool) {
	key := strings.ToLower(name)

	// One substitution pass only; a shortcut target that is itself a
	// shortcut key is not chased further.
	if target, ok := s.shortcuts[key]; ok {
		key = target
	}

	if d, ok := s.cache.get(key); ok {
		return d, true
	}

	prefix, method, ok := SplitName(key)
	if !ok {
		return callable.Descriptor{}, false
	}

	s.mu.RLock()
	target, ok := s.aliases[prefix]
	s.mu.RUnlock()
	if !ok {
		return callable.Descriptor{}, false
	}

	d := callable.Descriptor{Target: target, Method: method}
	s.cache.put(key, d)
	return d, true
}

// SetAliases replaces the alias table with a lower-cased copy of the given
// map. The cache is deliberately left alone: names resolved against the old
// table keep their memoized descriptors.
func (s *service) SetAliases(aliases map[string]string) {
	normalized := binding.Set{Aliases: aliases}.Normalized()
	s.mu.Lock()
	s.aliases = normalized.Aliases
	s.mu.Unlock()
}
