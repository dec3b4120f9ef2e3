package action

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/synccell/cell"
	"github.com/viant/synccell/hub/store"
	"github.com/viant/synccell/internal/conv"
)

// Name is the Fluxor service name of the cell actions.
const Name = "cell"

// Service adapts a store.Store to the Fluxor types.Service contract.
type Service struct {
	store     *store.Store
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New builds the action service over cells.
func New(cells *store.Store) *Service {
	s := &Service{
		store:     cells,
		executors: map[string]types.Executable{},
	}
	register(s, "declare", "Declare an empty cell of kind value, counter or map", s.declare)
	register(s, "set", "Replace the content of a cell", s.set)
	register(s, "clear", "Empty a cell", s.clear)
	register(s, "get", "Return a copy of a cell content", s.get)
	register(s, "add", "Add delta to a counter cell and return the new value", s.add)
	register(s, "insert", "Insert or replace a key of a map cell", s.insert)
	register(s, "remove", "Remove a key from a map cell and return its value", s.remove)
	register(s, "list", "List hosted cells", s.list)
	return s
}

// register derives the signature from the handler's input/output types.
func register[I, O any](s *Service, name, description string, fn func(ctx context.Context, in *I) (*O, error)) {
	s.executors[name] = executable(fn)
	s.sigs = append(s.sigs, types.Signature{
		Name:        name,
		Description: description,
		Input:       reflect.TypeOf((*I)(nil)),
		Output:      reflect.TypeOf((*O)(nil)),
	})
}

func executable[I, O any](fn func(ctx context.Context, in *I) (*O, error)) types.Executable {
	return func(ctx context.Context, input, output interface{}) error {
		// Accept either typed *struct or generic map; perform best-effort conv.
		in, ok := input.(*I)
		if !ok || in == nil {
			in = new(I)
			if err := conv.Convert(input, in); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
		}
		out, err := fn(ctx, in)
		if err != nil {
			return err
		}
		switch outPtr := output.(type) {
		case nil:
		case *O:
			*outPtr = *out
		case *interface{}:
			*outPtr = out
		default:
			return conv.Convert(out, outPtr)
		}
		return nil
	}
}

// ------------------------------------------------------------------
// types.Service implementation
// ------------------------------------------------------------------

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// Store returns the cells the service operates on.
func (s *Service) Store() *store.Store { return s.store }

// ------------------------------------------------------------------
// actions
// ------------------------------------------------------------------

func (s *Service) declare(_ context.Context, in *DeclareInput) (*StateOutput, error) {
	if err := s.store.Declare(in.Name, store.Kind(in.Kind)); err != nil {
		return nil, err
	}
	return s.state(in.Name)
}

func (s *Service) set(_ context.Context, in *SetInput) (*StateOutput, error) {
	if in.Value == nil {
		return nil, fmt.Errorf("cell %q: value was empty, use clear to empty a cell", in.Name)
	}
	kind, err := s.store.Kind(in.Name)
	if err != nil {
		return nil, err
	}
	switch kind {
	case store.KindValue:
		var value any
		if value, err = conv.Clone(in.Value); err != nil {
			return nil, fmt.Errorf("cell %q: value: %w", in.Name, err)
		}
		var c *cell.Cell[any]
		if c, err = s.store.Value(in.Name); err == nil {
			err = c.Set(value)
		}
	case store.KindCounter:
		var value int64
		if err = conv.Convert(in.Value, &value); err != nil {
			return nil, fmt.Errorf("cell %q: counter value: %w", in.Name, err)
		}
		var c *cell.Cell[int64]
		if c, err = s.store.Counter(in.Name); err == nil {
			err = c.Set(value)
		}
	case store.KindMap:
		var value map[string]interface{}
		if err = conv.Copy(in.Value, &value); err != nil {
			return nil, fmt.Errorf("cell %q: map value: %w", in.Name, err)
		}
		var m *cell.Map[string, any]
		if m, err = s.store.Map(in.Name); err == nil {
			err = m.Set(value)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", in.Name, err)
	}
	return s.state(in.Name)
}

func (s *Service) clear(_ context.Context, in *NameInput) (*StateOutput, error) {
	kind, err := s.store.Kind(in.Name)
	if err != nil {
		return nil, err
	}
	switch kind {
	case store.KindValue:
		var c *cell.Cell[any]
		if c, err = s.store.Value(in.Name); err == nil {
			err = c.Clear()
		}
	case store.KindCounter:
		var c *cell.Cell[int64]
		if c, err = s.store.Counter(in.Name); err == nil {
			err = c.Clear()
		}
	case store.KindMap:
		var m *cell.Map[string, any]
		if m, err = s.store.Map(in.Name); err == nil {
			err = m.Clear()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", in.Name, err)
	}
	return s.state(in.Name)
}

func (s *Service) get(_ context.Context, in *NameInput) (*GetOutput, error) {
	kind, err := s.store.Kind(in.Name)
	if err != nil {
		return nil, err
	}
	out := &GetOutput{Name: in.Name, Kind: string(kind)}
	switch kind {
	case store.KindValue:
		var c *cell.Cell[any]
		if c, err = s.store.Value(in.Name); err == nil {
			out.Value, err = readClone(c)
		}
	case store.KindCounter:
		var c *cell.Cell[int64]
		if c, err = s.store.Counter(in.Name); err == nil {
			out.Value, err = cell.Read(c, func(value *int64) any { return *value })
		}
	case store.KindMap:
		var m *cell.Map[string, any]
		if m, err = s.store.Map(in.Name); err == nil {
			out.Value, err = readClone(&m.Cell)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", in.Name, err)
	}
	return out, nil
}

func (s *Service) add(_ context.Context, in *AddInput) (*AddOutput, error) {
	c, err := s.store.Counter(in.Name)
	if err != nil {
		return nil, err
	}
	out := &AddOutput{Name: in.Name}
	if err = c.With(func(value *int64) {
		*value += in.Delta
		out.Value = *value
	}); err != nil {
		return nil, fmt.Errorf("cell %q: %w", in.Name, err)
	}
	return out, nil
}

func (s *Service) insert(_ context.Context, in *InsertInput) (*InsertOutput, error) {
	m, err := s.store.Map(in.Name)
	if err != nil {
		return nil, err
	}
	value, err := conv.Clone(in.Value)
	if err != nil {
		return nil, fmt.Errorf("cell %q: value: %w", in.Name, err)
	}
	prev, replaced, err := m.Insert(in.Key, value)
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", in.Name, err)
	}
	return &InsertOutput{Previous: prev, Replaced: replaced}, nil
}

func (s *Service) remove(_ context.Context, in *RemoveInput) (*RemoveOutput, error) {
	m, err := s.store.Map(in.Name)
	if err != nil {
		return nil, err
	}
	value, err := m.Remove(in.Key)
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", in.Name, err)
	}
	return &RemoveOutput{Value: value}, nil
}

func (s *Service) list(_ context.Context, _ *ListInput) (*ListOutput, error) {
	return &ListOutput{Cells: s.store.List()}, nil
}

// readClone copies a cell payload out while the lock is held; the returned
// value shares no map or slice with the cell.
func readClone[T any](c *cell.Cell[T]) (any, error) {
	var cloneErr error
	value, err := cell.Read(c, func(value *T) any {
		var ret any
		ret, cloneErr = conv.Clone(*value)
		return ret
	})
	if err != nil {
		return nil, err
	}
	return value, cloneErr
}

func (s *Service) state(name string) (*StateOutput, error) {
	for _, info := range s.store.List() {
		if info.Name == name {
			return &StateOutput{Name: name, Kind: string(info.Kind), Populated: info.Populated}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", store.ErrUnknownCell, name)
}
