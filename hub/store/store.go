package store

import (
	"errors"
	"fmt"

	"github.com/viant/synccell/cell"
	"github.com/viant/synccell/internal/syncmap"
)

// Kind identifies the payload shape of a hosted cell.
type Kind string

const (
	KindValue   Kind = "value"
	KindCounter Kind = "counter"
	KindMap     Kind = "map"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindValue, KindCounter, KindMap:
		return true
	}
	return false
}

var (
	ErrUnknownCell  = errors.New("unknown cell")
	ErrKindMismatch = errors.New("cell kind mismatch")
	ErrInvalidKind  = errors.New("invalid cell kind")
)

// entry holds exactly one of the typed cells, selected by kind.
type entry struct {
	kind    Kind
	value   *cell.Cell[any]
	counter *cell.Cell[int64]
	entries *cell.Map[string, any]
}

func newEntry(kind Kind) *entry {
	ret := &entry{kind: kind}
	switch kind {
	case KindValue:
		ret.value = cell.New[any]()
	case KindCounter:
		ret.counter = cell.New[int64]()
	case KindMap:
		ret.entries = cell.NewMap[string, any]()
	}
	return ret
}

func (e *entry) populated() bool {
	switch e.kind {
	case KindValue:
		return e.value.Populated()
	case KindCounter:
		return e.counter.Populated()
	default:
		return e.entries.Populated()
	}
}

func (e *entry) poisoned() bool {
	switch e.kind {
	case KindValue:
		return e.value.Poisoned()
	case KindCounter:
		return e.counter.Poisoned()
	default:
		return e.entries.Poisoned()
	}
}

// Info describes one hosted cell.
type Info struct {
	Name      string `json:"name"`
	Kind      Kind   `json:"kind"`
	Populated bool   `json:"populated"`
	Poisoned  bool   `json:"poisoned,omitempty"`
}

// Store is a registry of named cells.
type Store struct {
	cells *syncmap.Map[string, *entry]
}

// New creates an empty store.
func New() *Store {
	return &Store{cells: syncmap.New[string, *entry]()}
}

// Declare registers an empty cell of the given kind.  Declaring an existing
// name with the same kind is a no-op; with another kind it fails.
func (s *Store) Declare(name string, kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if name == "" {
		return fmt.Errorf("cell name was empty")
	}
	e, _ := s.cells.GetOrPut(name, func() *entry { return newEntry(kind) })
	if e.kind != kind {
		return fmt.Errorf("%w: %q is %s, not %s", ErrKindMismatch, name, e.kind, kind)
	}
	return nil
}

// Drop removes a cell from the store, reporting whether it existed.  Callers
// already holding the cell keep a working reference.
func (s *Store) Drop(name string) bool {
	return s.cells.Delete(name)
}

func (s *Store) lookup(name string, kind Kind) (*entry, error) {
	e, ok := s.cells.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCell, name)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%w: %q is %s, not %s", ErrKindMismatch, name, e.kind, kind)
	}
	return e, nil
}

// Kind returns the kind of a declared cell.
func (s *Store) Kind(name string) (Kind, error) {
	e, ok := s.cells.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCell, name)
	}
	return e.kind, nil
}

// Value returns a value cell.
func (s *Store) Value(name string) (*cell.Cell[any], error) {
	e, err := s.lookup(name, KindValue)
	if err != nil {
		return nil, err
	}
	return e.value, nil
}

// Counter returns a counter cell.
func (s *Store) Counter(name string) (*cell.Cell[int64], error) {
	e, err := s.lookup(name, KindCounter)
	if err != nil {
		return nil, err
	}
	return e.counter, nil
}

// Map returns a map cell.
func (s *Store) Map(name string) (*cell.Map[string, any], error) {
	e, err := s.lookup(name, KindMap)
	if err != nil {
		return nil, err
	}
	return e.entries, nil
}

// List describes every cell, sorted by name.
func (s *Store) List() []Info {
	names := s.cells.Keys()
	ret := make([]Info, 0, len(names))
	for _, name := range names {
		e, ok := s.cells.Get(name)
		if !ok {
			continue
		}
		ret = append(ret, Info{Name: name, Kind: e.kind, Populated: e.populated(), Poisoned: e.poisoned()})
	}
	return ret
}
