package cell

import "sync"

// Cell is a synchronized slot that is either empty or holds one value of type
// T.  The zero value is an empty cell ready to use.  A Cell must not be copied
// after first use.
type Cell[T any] struct {
	mu       sync.Mutex
	value    T
	present  bool
	poisoned bool
}

// New returns an empty cell.
func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Of returns a cell populated with value.
func Of[T any](value T) *Cell[T] {
	return &Cell[T]{value: value, present: true}
}

// With runs fn against the contained value while holding the lock.  fn may
// mutate the value in place but must not retain the pointer.  When the slot
// is empty fn is not called and ErrValueNotPresent is returned.
//
// If fn panics the lock is released, the cell is poisoned and the panic
// continues up the caller's stack.
func (c *Cell[T]) With(fn func(value *T)) error {
	return c.with("with", fn)
}

// Read runs fn against the contained value under the lock and returns its
// result.  It is the way to copy data out of a cell.
func Read[T, R any](c *Cell[T], fn func(value *T) R) (R, error) {
	var result R
	err := c.with("read", func(value *T) {
		result = fn(value)
	})
	return result, err
}

func (c *Cell[T]) with(op string, fn func(value *T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		return newError(LockHolderFailed, op)
	}
	if !c.present {
		return newError(ValueNotPresent, op)
	}
	c.run(fn)
	return nil
}

// run must be called with c.mu held.
func (c *Cell[T]) run(fn func(value *T)) {
	completed := false
	defer func() {
		if !completed {
			c.poisoned = true
		}
	}()
	fn(&c.value)
	completed = true
}

// Set replaces the slot content with value.  It fails only on a poisoned
// cell.
func (c *Cell[T]) Set(value T) error {
	return c.Store(&value)
}

// Clear empties the slot.
func (c *Cell[T]) Clear() error {
	return c.Store(nil)
}

// Store replaces the slot content with *value, or empties the slot when value
// is nil.
func (c *Cell[T]) Store(value *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		return newError(LockHolderFailed, "set")
	}
	c.store(value)
	return nil
}

// Fill computes a value with fn while holding the lock and stores it.  A
// panicking fn leaves the slot as it was and poisons the cell, like With.
func (c *Cell[T]) Fill(fn func() T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		return newError(LockHolderFailed, "fill")
	}
	c.run(func(value *T) {
		computed := fn()
		*value = computed
	})
	c.present = true
	return nil
}

// Reset reconstructs a cell's slot from value (nil for empty) and clears the
// poisoned state.  It is the only way to recover a poisoned cell.
func (c *Cell[T]) Reset(value *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.poisoned = false
	c.store(value)
}

func (c *Cell[T]) store(value *T) {
	if value == nil {
		var zero T
		c.value = zero
		c.present = false
		return
	}
	c.value = *value
	c.present = true
}

// Populated reports whether the slot currently holds a value.  The answer may
// be stale as soon as it is returned.
func (c *Cell[T]) Populated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.present
}

// Poisoned reports whether a lock holder panicked inside With.
func (c *Cell[T]) Poisoned() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.poisoned
}
