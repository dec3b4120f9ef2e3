package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/afs"
	"github.com/viant/fluxor"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"

	"github.com/viant/synccell/hub/store"
	"github.com/viant/synccell/internal/conv"
)

// Group holds inline items and/or a URL of a YAML document listing more.
type Group[T any] struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"url"`
	Items []T    `yaml:"items,omitempty" json:"items,omitempty" short:"i" long:"items" description:"items"`
}

// Cell declares one hosted cell; Value, when set, seeds the slot.
type Cell struct {
	Name  string      `yaml:"name" json:"name"`
	Kind  store.Kind  `yaml:"kind" json:"kind"`
	Value interface{} `yaml:"value,omitempty" json:"value,omitempty"`
}

type Config struct {
	Server   *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Options  []fluxor.Option    `yaml:"-" json:"-"`
	Builtins []string           `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	Cells    *Group[*Cell]      `yaml:"cells,omitempty" json:"cells,omitempty"`
}

// Load downloads and parses the configuration at URL (local path, file://,
// mem://, s3://, gs:// ...).  A cells URL is resolved as well.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	if err := cfg.loadCells(ctx, fs); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadCells appends the cells listed at Cells.URL to the inline ones.
func (c *Config) loadCells(ctx context.Context, fs afs.Service) error {
	if c.Cells == nil || c.Cells.URL == "" {
		return nil
	}
	data, err := fs.DownloadWithURL(ctx, c.Cells.URL)
	if err != nil {
		return fmt.Errorf("download cells %q: %w", c.Cells.URL, err)
	}
	var items []*Cell
	if err := yaml.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parse cells %q: %w", c.Cells.URL, err)
	}
	c.Cells.Items = append(c.Cells.Items, items...)
	return nil
}

// CellItems returns the declared cells, nil safe.
func (c *Config) CellItems() []*Cell {
	if c == nil || c.Cells == nil {
		return nil
	}
	return c.Cells.Items
}

// Validate reports every invalid cell declaration at once.
func (c *Config) Validate() error {
	var result error
	seen := map[string]bool{}
	for i, item := range c.CellItems() {
		if item == nil {
			result = multierror.Append(result, fmt.Errorf("cells[%d]: empty declaration", i))
			continue
		}
		if item.Name == "" {
			result = multierror.Append(result, fmt.Errorf("cells[%d]: name was empty", i))
		} else if seen[item.Name] {
			result = multierror.Append(result, fmt.Errorf("cells[%d]: duplicate name %q", i, item.Name))
		}
		seen[item.Name] = true
		if !item.Kind.Valid() {
			result = multierror.Append(result, fmt.Errorf("cells[%d]: %w: %q", i, store.ErrInvalidKind, item.Kind))
			continue
		}
		if item.Value == nil {
			continue
		}
		switch item.Kind {
		case store.KindCounter:
			var value int64
			if err := conv.Convert(item.Value, &value); err != nil {
				result = multierror.Append(result, fmt.Errorf("cells[%d]: counter %q seed: %w", i, item.Name, err))
			}
		case store.KindMap:
			var value map[string]interface{}
			if err := conv.Convert(item.Value, &value); err != nil {
				result = multierror.Append(result, fmt.Errorf("cells[%d]: map %q seed: %w", i, item.Name, err))
			}
		}
	}
	return result
}
