package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ExecCmd executes a cell tool (for example cell/add) from the CLI.
// Arguments can be supplied either inline via -i/--input or loaded from a
// JSON file via -a/--args-file.
type ExecCmd struct {
	Name       string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name (cell-add, cell/add)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File       string `short:"a" long:"args-file" description:"Path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for the cell lock" default:"120"`
	JSON       bool   `long:"json" description:"Print result as indented JSON"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and -a/--args-file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	out, err := svc.ExecuteTool(ctx, c.Name, args)
	if err != nil {
		return err
	}

	var data []byte
	if c.JSON {
		data, _ = json.MarshalIndent(out, "", "  ")
	} else {
		data, _ = json.Marshal(out)
	}
	fmt.Println(string(data))
	return nil
}
