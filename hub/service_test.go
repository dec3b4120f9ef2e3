package hub

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"golang.org/x/sync/errgroup"

	"github.com/viant/synccell/cell"
	"github.com/viant/synccell/hub/action"
	"github.com/viant/synccell/hub/config"
	"github.com/viant/synccell/hub/store"
)

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	ctx := context.Background()
	cfg := &config.Config{Cells: &config.Group[*config.Cell]{Items: []*config.Cell{
		{Name: "hits", Kind: store.KindCounter, Value: 0},
		{Name: "sessions", Kind: store.KindMap, Value: map[string]interface{}{}},
		{Name: "banner", Kind: store.KindValue},
	}}}
	svc, err := New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	if err = svc.Start(ctx); err != nil {
		t.Fatalf("failed to start service: %v", err)
	}
	t.Cleanup(func() { _ = svc.Shutdown(ctx) })
	return svc
}

// TestServiceTools ensures that the service exposes a tool entry for every
// action method that is available via the workflow service.
func TestServiceTools(t *testing.T) {
	svc := newTestService(t)

	var expected int
	actions := svc.WorkflowService().Actions()
	for _, svcName := range actions.Services() {
		expected += len(actions.Lookup(svcName).Methods())
	}

	tools := svc.Tools()
	assert.EqualValues(t, expected, len(tools))

	for _, te := range tools {
		entry, err := svc.LookupTool(te.Metadata.Name)
		if assert.NoError(t, err, "LookupTool(%q) returned error", te.Metadata.Name) {
			assert.EqualValues(t, te.Metadata.Name, entry.Metadata.Name)
		}
	}

	_, err := svc.LookupTool("cell-missing")
	assert.Error(t, err)
	_, err = svc.LookupTool("nosuch-service")
	assert.Error(t, err)

	description, schema, ok := svc.ToolMetadata("cell/add")
	assert.True(t, ok)
	assert.NotEmpty(t, description)
	assert.NotNil(t, schema)
}

func TestServiceMatchTools(t *testing.T) {
	svc := newTestService(t, WithConfig(&config.Config{Builtins: []string{"nop"}}))

	all := svc.Tools()
	assert.EqualValues(t, len(all), len(svc.MatchTools("*")))

	cells := svc.MatchTools("cell/")
	assert.Len(t, cells, len(action.New(store.New()).Methods()))

	exact := svc.MatchTools("cell-add")
	if assert.Len(t, exact, 1) {
		assert.EqualValues(t, "cell-add", exact[0].Metadata.Name)
	}
	assert.Empty(t, svc.MatchTools("unknown/"))
}

func TestService_SeededCells(t *testing.T) {
	cells := store.New()
	svc := newTestService(t, WithStore(cells))
	assert.Same(t, cells, svc.Store())

	hits, err := cells.Counter("hits")
	require.NoError(t, err)
	var group errgroup.Group
	for i := 0; i < 1000; i++ {
		group.Go(func() error {
			_, err := svc.ExecuteTool(context.Background(), "cell-add", map[string]interface{}{"name": "hits", "delta": 1})
			return err
		})
	}
	require.NoError(t, group.Wait())
	value, err := cell.Read(hits, func(v *int64) int64 { return *v })
	require.NoError(t, err)
	assert.EqualValues(t, 1000, value)

	_, err = svc.ExecuteTool(context.Background(), "cell-get", map[string]interface{}{"name": "banner"})
	assert.ErrorIs(t, err, cell.ErrValueNotPresent)
}

func TestService_InvalidConfig(t *testing.T) {
	cfg := &config.Config{Cells: &config.Group[*config.Cell]{Items: []*config.Cell{{Name: "x", Kind: "bogus"}}}}
	_, err := New(context.Background(), WithConfig(cfg))
	assert.Error(t, err)
}

func TestService_MCPServer(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	srv, err := mcp.NewServer(svc.NewHandler, nil)
	require.NoError(t, err)
	cli := srv.AsClient(ctx)

	listed, err := cli.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, aTool := range listed.Tools {
		names = append(names, aTool.Name)
	}
	assert.Contains(t, names, "cell-insert")
	assert.Contains(t, names, "cell-remove")

	callTool := func(name string, args map[string]interface{}) *mcpschema.CallToolResult {
		res, err := cli.CallTool(ctx, &mcpschema.CallToolRequestParams{Name: name, Arguments: args})
		require.NoError(t, err)
		require.NotEmpty(t, res.Content)
		return res
	}

	callTool("cell-insert", map[string]interface{}{"name": "sessions", "key": "k", "value": "v1"})
	res := callTool("cell-insert", map[string]interface{}{"name": "sessions", "key": "k", "value": "v2"})
	inserted := &action.InsertOutput{}
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), inserted))
	assert.True(t, inserted.Replaced)
	assert.EqualValues(t, "v1", inserted.Previous)

	res = callTool("cell-remove", map[string]interface{}{"name": "sessions", "key": "k"})
	removed := &action.RemoveOutput{}
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), removed))
	assert.EqualValues(t, "v2", removed.Value)

	res = callTool("cell-remove", map[string]interface{}{"name": "sessions", "key": "k"})
	if assert.NotNil(t, res.IsError) {
		assert.True(t, *res.IsError)
	}
	assert.Contains(t, res.Content[0].Text, cell.KeyNotFound.String())
}
