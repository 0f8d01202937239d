package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetSchemaHandler returns the handler for the get-schema tool.
func GetSchemaHandler(deps *ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSchema(ctx, deps)
	}
}

func handleGetSchema(ctx context.Context, deps *ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.AnalyticsService == nil {
		errMessage := "analytics service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("get-schema"))
	deps.Log.Info("retrieving schema from the database")

	records, err := deps.DBService.GetSchema(ctx)
	if err != nil {
		deps.Log.Error("failed to execute schema query", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(records) == 0 {
		deps.Log.Warn("schema is empty, no data in the database")
		return mcp.NewToolResultText("The get-schema tool executed successfully; however, since the database contains no data, no schema information was returned."), nil
	}

	response, err := deps.DBService.RecordsToJSON(records)
	if err != nil {
		deps.Log.Error("failed to format schema results to JSON", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response), nil
}
