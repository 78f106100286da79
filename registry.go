package wcap

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// ScopeKey identifies the owner of a group of tables: the global scope, or
// one instance or device handle.
type ScopeKey struct {
	Scope  Scope
	Handle uintptr
}

func (k ScopeKey) String() string { return fmt.Sprintf("%s/%#x", k.Scope, k.Handle) }

func (k ScopeKey) prefix() string { return k.String() + "/" }

type registryEntry struct {
	once  sync.Once
	table atomic.Value
}

// Registry keeps at most one table per owner and table name.
type Registry struct {
	m cmap.ConcurrentMap[string, *registryEntry]
}

func NewRegistry() *Registry {
	return &Registry{m: cmap.New[*registryEntry]()}
}

// Load returns the table called name owned by key, building it with load the
// first time. Concurrent callers for the same table wait for a single build.
//
// When load panics the entry is dropped and the panic propagates; callers
// that were waiting on that build retry with their own load.
func (r *Registry) Load(key ScopeKey, name string, load func() Table) Table {
	k := key.prefix() + name
	e := r.m.Upsert(k, nil, func(exist bool, inMap, _ *registryEntry) *registryEntry {
		if exist && inMap != nil {
			return inMap
		}
		return &registryEntry{}
	})
	e.once.Do(func() {
		defer func() {
			if e.table.Load() == nil {
				r.m.RemoveCb(k, func(_ string, v *registryEntry, exists bool) bool {
					return exists && v == e
				})
			}
		}()
		t := load()
		if t == nil {
			panic(fmt.Sprintf("wcap: loader for %s returned no table", name))
		}
		e.table.Store(&t)
	})
	if v, ok := e.table.Load().(*Table); ok {
		return *v
	}
	return r.Load(key, name, load)
}

func (r *Registry) Get(key ScopeKey, name string) (Table, error) {
	e, ok := r.m.Get(key.prefix() + name)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrTableNotFound, key, name)
	}
	v, ok := e.table.Load().(*Table)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrTableNotFound, key, name)
	}
	return *v, nil
}

// Release drops every table owned by key and returns how many were dropped.
func (r *Registry) Release(key ScopeKey) int {
	prefix := key.prefix()
	var n int
	for _, k := range r.m.Keys() {
		if strings.HasPrefix(k, prefix) {
			r.m.Remove(k)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int { return r.m.Count() }
