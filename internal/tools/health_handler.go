package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

const healthProbeQuery = "RETURN 1 AS ok"

// HealthHandler returns the handler for the health tool.
func HealthHandler(deps *ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleHealth(ctx, deps)
	}
}

// handleHealth probes the database with a trivial read query. A failed
// probe is reported in the response body rather than as a tool error so
// callers always receive a status document.
func handleHealth(ctx context.Context, deps *ToolDependencies) (*mcp.CallToolResult, error) {
	status := HealthStatus{}

	if deps.DBService == nil {
		status.Error = "database service is not initialized"
		return healthResult(deps, status)
	}

	records, err := deps.DBService.ExecuteReadQuery(ctx, healthProbeQuery, nil)
	if err != nil {
		deps.Log.Warn("health probe failed", "error", err)
		status.Error = err.Error()
		return healthResult(deps, status)
	}

	ok := false
	if len(records) == 1 {
		if v, found := records[0].Get("ok"); found {
			n, isInt := v.(int64)
			ok = isInt && n == 1
		}
	}

	status.OK = ok
	status.Neo4j = ok
	return healthResult(deps, status)
}

func healthResult(deps *ToolDependencies, status HealthStatus) (*mcp.CallToolResult, error) {
	response, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		deps.Log.Error("error formatting health response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(response)), nil
}
