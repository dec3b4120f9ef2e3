package hub

import (
	"context"
	"sync/atomic"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"

	"github.com/viant/synccell/hub/action"
	"github.com/viant/synccell/hub/config"
	"github.com/viant/synccell/hub/store"
)

// Service bundles configuration, the hosted cells and a Fluxor Workflow
// engine exposing them. All heavy lifting during instantiation lives in
// bootstrap.go.
type Service struct {
	Workflow
	started int32
	config  *config.Config
	store   *store.Store
	actions *action.Service
}

type Workflow struct {
	Options    []fluxor.Option
	Runtime    *fluxor.Runtime
	Service    *fluxor.Service
	Extensions []types.Service
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service instance that exposes all
// actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration.  Callers must treat the
// returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Store returns the hosted cells.
func (s *Service) Store() *store.Store { return s.store }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithStore makes the service host an existing store instead of a new one,
// so the embedding process shares the very same cells.
func WithStore(cells *store.Store) Option {
	return func(s *Service) {
		s.store = cells
	}
}

// WithWorkflowOptions appends additional Fluxor options that will be used when
// the Workflow engine gets instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers custom Fluxor services next to the cell actions.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// New constructs a new service instance.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the underlying Fluxor runtime. Multiple invocations are safe
// – subsequent calls will be ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime. Additional invocations after the
// first successful call have no effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
