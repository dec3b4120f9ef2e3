package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"hub configuration YAML/JSON URL"`

	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the hub cells"`
	Exec        *ExecCmd        `command:"exec"         description:"Execute a cell tool"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all registered tools"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List Fluxor services and their actions"`
	Action      *ActionCmd      `command:"action"       description:"Show detailed info about one Fluxor action"`
	Run         *RunCmd         `command:"run"          description:"Run a workflow against the hub cells"`
	Bench       *BenchCmd       `command:"bench"        description:"Increment a cell concurrently and report lost updates"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "action":
		o.Action = &ActionCmd{}
	case "run":
		o.Run = &RunCmd{}
	case "bench":
		o.Bench = &BenchCmd{}
	}
}
