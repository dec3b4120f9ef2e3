package cell

// Map is a cell holding a Go map.  It adds key level operations that run
// inside the cell's critical section; the map itself never leaves the lock.
// With, Set, Clear and the other Cell methods remain available.  The zero
// value is an empty map cell ready to use; like Cell, a Map must not be copied
// after first use.
type Map[K comparable, V any] struct {
	Cell[map[K]V]
}

// NewMap returns an empty (not initialised) map cell.  Call Init or Set before
// inserting.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// MapOf returns a map cell populated with m.  The cell takes ownership of m.
func MapOf[K comparable, V any](m map[K]V) *Map[K, V] {
	if m == nil {
		m = make(map[K]V)
	}
	return &Map[K, V]{Cell: Cell[map[K]V]{value: m, present: true}}
}

// Init populates the cell with an empty map, discarding any previous one.
func (m *Map[K, V]) Init() error {
	return m.Set(make(map[K]V))
}

// Insert stores value under key.  When key was already present the previous
// value is returned with replaced set to true.
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	err = m.with("insert", func(entries *map[K]V) {
		if *entries == nil {
			*entries = make(map[K]V)
		}
		prev, replaced = (*entries)[key]
		(*entries)[key] = value
	})
	return prev, replaced, wrapKey(err, key)
}

// Remove deletes key and returns its value.  A missing key yields an error of
// kind KeyNotFound; an empty or poisoned cell yields the cell's own kind.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var (
		value V
		found bool
	)
	err := m.with("remove", func(entries *map[K]V) {
		if value, found = (*entries)[key]; found {
			delete(*entries, key)
		}
	})
	if err != nil {
		return value, wrapKey(err, key)
	}
	if !found {
		return value, &Error{Kind: KeyNotFound, Op: "remove", Key: key}
	}
	return value, nil
}

// Get returns a copy of the value stored under key.
func (m *Map[K, V]) Get(key K) (value V, ok bool, err error) {
	err = m.with("get", func(entries *map[K]V) {
		value, ok = (*entries)[key]
	})
	return value, ok, wrapKey(err, key)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() (int, error) {
	return Read(&m.Cell, func(entries *map[K]V) int {
		return len(*entries)
	})
}

// Keys returns a snapshot of the keys in unspecified order.
func (m *Map[K, V]) Keys() ([]K, error) {
	return Read(&m.Cell, func(entries *map[K]V) []K {
		keys := make([]K, 0, len(*entries))
		for k := range *entries {
			keys = append(keys, k)
		}
		return keys
	})
}

func wrapKey(err error, key any) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		e.Key = key
	}
	return err
}
