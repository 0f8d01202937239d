package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// newHooks builds the MCP hooks for this server.
func (s *GraphRAGMCPServer) newHooks() *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddAfterSetLevel(s.onAfterSetLevelHook)
	return hooks
}

// onAfterSetLevelHook is called after the SetLevel method is executed. It updates the server's logger level.
func (s *GraphRAGMCPServer) onAfterSetLevelHook(_ context.Context, _ any, message *mcp.SetLevelRequest, _ *mcp.EmptyResult) {
	newLevel := string(message.Params.Level)
	s.log.SetLevel(newLevel)
	s.log.Info("log level changed via MCP", "new_level", newLevel)
}
