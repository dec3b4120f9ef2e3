package global

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/viant/synccell/cell"
	"github.com/viant/synccell/internal/syncmap"
)

// Static is a lazily constructed, process-wide named cell.
type Static[T any] struct {
	name string
	seed func() T
	once sync.Once
	slot atomic.Pointer[cell.Cell[T]]
}

// entry is the type-erased registry view of a Static.
type entry interface {
	Name() string
	Type() reflect.Type
	Initialized() bool
}

var registry = syncmap.New[string, entry]()

// Define declares a named cell.  seed may be nil, in which case the cell stays
// empty until Set is called.  Define panics when name is already declared.
func Define[T any](name string, seed func() T) *Static[T] {
	s := &Static[T]{name: name, seed: seed}
	if _, created := registry.GetOrPut(name, func() entry { return s }); !created {
		panic(fmt.Sprintf("global: cell %q already defined", name))
	}
	return s
}

// Cell returns the underlying cell, constructing and seeding it on first use.
// A panicking seed poisons the cell: the first caller sees the panic, later
// ones get ErrLockHolderFailed until the cell is Reset.
func (s *Static[T]) Cell() *cell.Cell[T] {
	s.once.Do(func() {
		c := cell.New[T]()
		s.slot.Store(c)
		if s.seed != nil {
			_ = c.Fill(s.seed)
		}
	})
	return s.slot.Load()
}

func (s *Static[T]) With(fn func(value *T)) error { return s.Cell().With(fn) }

func (s *Static[T]) Set(value T) error { return s.Cell().Set(value) }

func (s *Static[T]) Clear() error { return s.Cell().Clear() }

func (s *Static[T]) Name() string { return s.name }

func (s *Static[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

// Initialized reports whether the lazy construction already happened.
func (s *Static[T]) Initialized() bool { return s.slot.Load() != nil }

// Names returns every declared cell name in ascending order.
func Names() []string { return registry.Keys() }

// Info describes a declared cell.
type Info struct {
	Name        string
	Type        reflect.Type
	Initialized bool
}

// Lookup returns the description of a declared cell.
func Lookup(name string) (Info, bool) {
	e, ok := registry.Get(name)
	if !ok {
		return Info{}, false
	}
	return Info{Name: e.Name(), Type: e.Type(), Initialized: e.Initialized()}, true
}
