package tool

import "strings"

// Name is an MCP tool name in the form <service>-<method>, where slashes of
// the service name are replaced by underscores (cell-add, system_exec-execute).
type Name string

// NewName builds a tool name.
func NewName(service, method string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + method)
}

// Canonical accepts the spellings users type on the command line
// (cell/add, cell.add, system/exec/execute) and returns the tool name.
func Canonical(name string) Name {
	if strings.Contains(name, "-") {
		return Name(strings.ReplaceAll(name, "/", "_"))
	}
	idx := strings.LastIndexAny(name, "/.")
	if idx == -1 {
		return Name(name)
	}
	return NewName(name[:idx], name[idx+1:])
}

// Service returns the Fluxor service name.
func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

// Method returns the Fluxor method name.
func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

// Path returns service/method.
func (t Name) Path() string {
	return t.Service() + "/" + t.Method()
}

func (t Name) String() string {
	return string(t)
}
