package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/synccell/hub/store"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cellsPath := filepath.Join(dir, "cells.yaml")
	require.NoError(t, os.WriteFile(cellsPath, []byte(`
- name: banner
  kind: value
  value: hello
`), 0o644))

	cfgPath := filepath.Join(dir, "hub.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
builtins:
  - printer
cells:
  url: `+cellsPath+`
  items:
    - name: hits
      kind: counter
      value: 5
    - name: sessions
      kind: map
      value:
        a: 1
`), 0o644))

	cfg, err := Load(context.Background(), cfgPath)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"printer"}, cfg.Builtins)

	items := cfg.CellItems()
	require.Len(t, items, 3)
	assert.EqualValues(t, "hits", items[0].Name)
	assert.EqualValues(t, store.KindCounter, items[0].Kind)
	assert.EqualValues(t, "banner", items[2].Name)
	assert.EqualValues(t, "hello", items[2].Value)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		cells       []*Cell
		expectErrs  int
	}{
		{description: "no cells", expectErrs: 0},
		{
			description: "valid",
			cells: []*Cell{
				{Name: "a", Kind: store.KindValue, Value: []int{1}},
				{Name: "b", Kind: store.KindCounter, Value: 3},
				{Name: "c", Kind: store.KindMap},
			},
		},
		{
			description: "duplicate and empty names",
			cells: []*Cell{
				{Name: "a", Kind: store.KindValue},
				{Name: "a", Kind: store.KindValue},
				{Kind: store.KindValue},
			},
			expectErrs: 2,
		},
		{
			description: "bad kind and seeds",
			cells: []*Cell{
				{Name: "a", Kind: "queue"},
				{Name: "b", Kind: store.KindCounter, Value: "ten"},
				{Name: "c", Kind: store.KindMap, Value: []string{"x"}},
				nil,
			},
			expectErrs: 4,
		},
	}

	for _, testCase := range testCases {
		cfg := &Config{Cells: &Group[*Cell]{Items: testCase.cells}}
		err := cfg.Validate()
		if testCase.expectErrs == 0 {
			assert.NoError(t, err, testCase.description)
			continue
		}
		merr, ok := err.(*multierror.Error)
		if assert.True(t, ok, testCase.description) {
			assert.Len(t, merr.Errors, testCase.expectErrs, testCase.description)
		}
	}
}
