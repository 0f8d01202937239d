package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// HealthStatus is the health tool response.
type HealthStatus struct {
	OK    bool   `json:"ok"`
	Neo4j bool   `json:"neo4j"`
	Error string `json:"error,omitempty"`
}

func HealthSpec() mcp.Tool {
	return mcp.NewTool("health",
		mcp.WithDescription("Check that the server can reach the configured Neo4j database."),
		mcp.WithTitleAnnotation("Health"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
