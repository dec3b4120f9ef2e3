package syncmap

import (
	"cmp"
	"slices"
	"sync"
)

// Map is a thread-safe registry keyed by an ordered type.
type Map[K cmp.Ordered, T any] struct {
	mux sync.RWMutex
	m   map[K]T
}

// New creates an empty Map.
func New[K cmp.Ordered, T any]() *Map[K, T] {
	return &Map[K, T]{
		m: make(map[K]T),
	}
}

// Get retrieves an item by key.
func (r *Map[K, T]) Get(key K) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Put adds or replaces an item.
func (r *Map[K, T]) Put(key K, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// GetOrPut returns the item stored under key, creating it with fn when
// absent.  fn runs under the write lock, at most once per key.
func (r *Map[K, T]) GetOrPut(key K, fn func() T) (value T, created bool) {
	r.mux.RLock()
	value, ok := r.m[key]
	r.mux.RUnlock()
	if ok {
		return value, false
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if value, ok = r.m[key]; ok {
		return value, false
	}
	value = fn()
	r.m[key] = value
	return value, true
}

// Delete removes an item, reporting whether it existed.
func (r *Map[K, T]) Delete(key K) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	_, ok := r.m[key]
	delete(r.m, key)
	return ok
}

// Keys returns all keys in ascending order.
func (r *Map[K, T]) Keys() []K {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]K, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	slices.Sort(ret)
	return ret
}

// Len returns the number of items.
func (r *Map[K, T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}
