package hub

import (
	"context"
	"fmt"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"

	"github.com/viant/synccell/hub/action"
	"github.com/viant/synccell/hub/config"
	"github.com/viant/synccell/hub/store"
	"github.com/viant/synccell/hub/tool/conversion"
)

// init orchestrates the individual preparation steps invoked by New.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	s.actions = action.New(s.store)
	if err := s.initCells(ctx); err != nil {
		return fmt.Errorf("init cells: %w", err)
	}
	s.initWorkflowService()
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.store == nil {
		s.store = store.New()
	}
}

// initCells declares configured cells and seeds those with a value.  Seeding
// goes through the set action so configuration and callers share one
// conversion path.
func (s *Service) initCells(ctx context.Context) error {
	set, err := s.actions.Method("set")
	if err != nil {
		return err
	}
	for _, item := range s.config.CellItems() {
		if err := s.store.Declare(item.Name, item.Kind); err != nil {
			return err
		}
		if item.Value == nil {
			continue
		}
		if err := set(ctx, &action.SetInput{Name: item.Name, Value: item.Value}, nil); err != nil {
			return err
		}
	}
	return nil
}

// initWorkflowService assembles the list of Fluxor options and instantiates
// the engine.
func (s *Service) initWorkflowService() {
	opts := append([]fluxor.Option{}, s.config.Options...)

	var ioTypes []*x.Type
	for _, sig := range s.actions.Methods() {
		ioTypes = append(ioTypes, conversion.RegisterType(sig.Input), conversion.RegisterType(sig.Output))
	}
	opts = append(opts, fluxor.WithExtensionTypes(ioTypes...))

	extensions := append([]types.Service{s.actions}, s.Workflow.Extensions...)
	extensions = append(extensions, resolveBuiltinServices(s.config.Builtins)...)
	opts = append(opts, fluxor.WithExtensionServices(extensions...))

	// Finally append any additional Workflow options passed through WithWorkflowOptions
	// to give callers the chance to override defaults where appropriate.
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
