package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/viant/synccell/hub/matcher"
	"github.com/viant/synccell/hub/tool"
	"github.com/viant/synccell/hub/tool/conversion"
	"github.com/viant/synccell/internal/conv"
)

// Tools returns one MCP tool per registered action method, sorted by name.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)

	actions := s.Workflow.Service.Actions()
	services := actions.Services()
	sort.Strings(services)
	for _, name := range services {
		service := actions.Lookup(name)
		if service == nil {
			continue
		}
		for _, method := range service.Methods() {
			aTool, err := s.LookupTool(tool.NewName(name, method.Name).String())
			if err != nil {
				continue
			}
			result = append(result, aTool)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Metadata.Name < result[j].Metadata.Name })
	return result
}

// MatchTools returns the tools whose name or service/method path satisfies
// pattern (see matcher.Match).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, aTool := range s.Tools() {
		name := tool.Name(aTool.Metadata.Name)
		if matcher.Match(pattern, name.String()) || matcher.Match(pattern, name.Path()) {
			result = append(result, aTool)
		}
	}
	return result
}

// LookupTool builds the MCP tool entry for a tool name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	toolName := tool.Canonical(name)
	sig, err := s.signature(toolName)
	if err != nil {
		return nil, err
	}
	meta := *sig
	meta.Name = toolName.String()
	toolEntry := serverproto.ToolEntry{}
	if toolEntry.Metadata, err = conversion.BuildSchema(&meta); err != nil {
		return nil, err
	}
	toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		output, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments)
		res := &mcpschema.CallToolResult{}
		if err != nil {
			res.IsError = conv.Pointer[bool](true)
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: err.Error(),
			})
			return res, nil
		}
		data, err := json.Marshal(output)
		if err != nil {
			return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Type: "text",
			Text: string(data),
		})
		return res, nil
	}
	return &toolEntry, nil
}

// ExecuteTool invokes the action behind a tool name with loosely typed
// arguments and returns the typed action output.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	toolName := tool.Canonical(name)
	sig, err := s.signature(toolName)
	if err != nil {
		return nil, err
	}
	service := s.Workflow.Service.Actions().Lookup(toolName.Service())
	exec, err := service.Method(sig.Name)
	if err != nil {
		return nil, err
	}
	input, err := conversion.Decode(args, sig.Input)
	if err != nil {
		return nil, err
	}
	output := conversion.NewValue(sig.Output)
	if err := exec(ctx, input, output); err != nil {
		return nil, err
	}
	return output, nil
}

// ToolMetadata returns description and input schema for a named tool when
// present.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	entry, err := s.LookupTool(name)
	if err != nil {
		return "", nil, false
	}
	return conv.Dereference(entry.Metadata.Description), entry.Metadata.InputSchema, true
}

func (s *Service) signature(toolName tool.Name) (*types.Signature, error) {
	service := s.Workflow.Service.Actions().Lookup(toolName.Service())
	if service == nil {
		return nil, fmt.Errorf("unknown tool: %v", toolName)
	}
	for _, method := range service.Methods() {
		if method.Name == toolName.Method() {
			sig := method
			return &sig, nil
		}
	}
	return nil, fmt.Errorf("unknown tool: %v", toolName)
}
