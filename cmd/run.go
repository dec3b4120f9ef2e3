package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/viant/synccell/hub/store"
)

// RunCmd starts a Fluxor workflow whose tasks may call the cell actions
// (action: cell:add, cell:insert, …) against the hub cells.
type RunCmd struct {
	Location   string `short:"l" long:"location" description:"Workflow definition path (YAML)"`
	InputFile  string `short:"i" long:"input"    description:"JSON file with initial state (stdin if empty)"`
	State      string `short:"s" long:"state" description:"JSON Object with initial state (stdin if empty)"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"30"`
}

func (c *RunCmd) Execute(_ []string) error {
	if c.Location == "" {
		return fmt.Errorf("workflow location must be provided via -l/--location")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	rt := svc.WorkflowRuntime()

	ctx := context.Background()
	wf, err := rt.LoadWorkflow(ctx, c.Location)
	if err != nil {
		return fmt.Errorf("load workflow: %w", err)
	}

	initState := make(map[string]interface{})
	if c.State != "" {
		data := strings.TrimSpace(c.State)
		if err := json.Unmarshal([]byte(data), &initState); err != nil {
			return fmt.Errorf("decode initial state: %w", err)
		}
	} else {
		var reader io.Reader = os.Stdin
		if c.InputFile != "" {
			f, err := os.Open(c.InputFile)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			reader = f
		}

		// Ignore EOF when no input is provided
		if data, err := io.ReadAll(reader); err == nil && len(data) > 0 {
			if err := json.Unmarshal(data, &initState); err != nil {
				return fmt.Errorf("decode initial state: %w", err)
			}
		}
	}

	process, wait, err := rt.StartProcess(ctx, wf, initState)
	if err != nil {
		return fmt.Errorf("start process: %w", err)
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	output, err := wait(ctx, timeout)
	if err != nil {
		return fmt.Errorf("wait for process: %w", err)
	}

	if err = writeReport(os.Stdout, output, svc.Store().List()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "process %s completed\n", process.ID)
	return nil
}

// writeReport prints the workflow output followed by the cell listing.
func writeReport(w io.Writer, output interface{}, cells []store.Info) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encode workflow output: %w", err)
	}
	listing, err := json.MarshalIndent(cells, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cells: %w", err)
	}
	_, err = fmt.Fprintf(w, "Workflow output:\n%s\nCells:\n%s\n", data, listing)
	return err
}
