package hub

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns an MCP handler exposing the hub tools.  Every connection
// gets its own handler while all of them operate on the same cells.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	// RegisterTool also enables tools/list and tools/call on the handler.
	for _, tool := range s.Tools() {
		impl.Registry.RegisterTool(tool)
	}
	return impl, nil
}
