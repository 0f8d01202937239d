package tools

import (
	"github.com/mark3labs/mcp-go/server"
)

// GetAllTools returns all available tools with their specs and handlers
func GetAllTools(deps *ToolDependencies) []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    GetSchemaSpec(),
			Handler: GetSchemaHandler(deps),
		},
		{
			Tool:    ReadCypherSpec(),
			Handler: ReadCypherHandler(deps),
		},
		{
			Tool:    Text2CypherSpec(),
			Handler: Text2CypherHandler(deps),
		},
		{
			Tool:    VectorSearchSpec(),
			Handler: VectorSearchHandler(deps),
		},
		{
			Tool:    HealthSpec(),
			Handler: HealthHandler(deps),
		},
	}
}

// RegisterAllTools registers all available MCP tools
func RegisterAllTools(mcpServer *server.MCPServer, deps *ToolDependencies) {
	mcpServer.AddTools(GetAllTools(deps)...)
}
