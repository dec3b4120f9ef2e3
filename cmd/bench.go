package cmd

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/viant/synccell/cell"
	"github.com/viant/synccell/hub/action"
	"github.com/viant/synccell/hub/store"
)

// BenchCmd increments a counter cell from many goroutines and verifies that
// no update was lost.
type BenchCmd struct {
	Cell    string `short:"c" long:"cell" description:"counter cell name" default:"bench"`
	Workers int    `short:"w" long:"workers" description:"number of concurrent goroutines" default:"10000"`
	Tool    bool   `short:"t" long:"tool" description:"go through the cell-add tool instead of the cell directly"`
}

// BenchResult summarises one bench run.
type BenchResult struct {
	Expected int64
	Actual   int64
	Elapsed  time.Duration
}

func (r *BenchResult) Lost() int64 { return r.Expected - r.Actual }

func (c *BenchCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	result, err := c.bench(context.Background(), svc.Store(), func(ctx context.Context) error {
		_, err := svc.ExecuteTool(ctx, action.Name+"-add", map[string]interface{}{"name": c.Cell, "delta": 1})
		return err
	})
	if err != nil {
		return err
	}
	fmt.Printf("workers: %d\tvalue: %d\tlost: %d\telapsed: %s\n", c.Workers, result.Actual, result.Lost(), result.Elapsed)
	if result.Lost() != 0 {
		return fmt.Errorf("lost %d updates", result.Lost())
	}
	return nil
}

// bench resets the counter to zero and runs Workers increments, either
// directly on the cell or through viaTool when c.Tool is set.
func (c *BenchCmd) bench(ctx context.Context, cells *store.Store, viaTool func(ctx context.Context) error) (*BenchResult, error) {
	if err := cells.Declare(c.Cell, store.KindCounter); err != nil {
		return nil, err
	}
	counter, err := cells.Counter(c.Cell)
	if err != nil {
		return nil, err
	}
	if err := counter.Set(0); err != nil {
		return nil, err
	}

	increment := func(ctx context.Context) error {
		return counter.With(func(value *int64) { *value++ })
	}
	if c.Tool {
		increment = viaTool
	}

	started := time.Now()
	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < c.Workers; i++ {
		group.Go(func() error { return increment(groupCtx) })
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	elapsed := time.Since(started)

	actual, err := cell.Read(counter, func(value *int64) int64 { return *value })
	if err != nil {
		return nil, err
	}
	return &BenchResult{Expected: int64(c.Workers), Actual: actual, Elapsed: elapsed}, nil
}
