package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ReadCypherHandler returns the handler for the read-cypher tool.
func ReadCypherHandler(deps *ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleReadCypher(ctx, request, deps)
	}
}

func handleReadCypher(ctx context.Context, request mcp.CallToolRequest, deps *ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService == nil {
		errMessage := "analytics service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("read-cypher"))

	var args ReadCypherInput
	if err := BindArguments(request, &args); err != nil {
		deps.Log.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Query == "" {
		errMessage := "Query parameter is required and cannot be empty"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.Log.Debug("executing cypher", "query", args.Query)

	// Classify the query by pre-appending EXPLAIN; only read-only statements are allowed here
	queryType, err := deps.DBService.GetQueryType(ctx, args.Query, args.Params)
	if err != nil {
		deps.Log.Error("error while classifying Cypher query", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if queryType != neo4j.StatementTypeReadOnly {
		errMessage := "read-cypher can only run read-only Cypher statements. Write operations (CREATE, MERGE, DELETE, SET, etc...), schema/admin commands and PROFILE queries are rejected."
		deps.Log.Warn("rejected non-read query", "type", queryType, "query", args.Query)
		return mcp.NewToolResultError(errMessage), nil
	}

	records, err := deps.DBService.ExecuteReadQuery(ctx, args.Query, args.Params)
	if err != nil {
		deps.Log.Error("error executing Cypher query", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	response, err := deps.DBService.RecordsToJSON(records)
	if err != nil {
		deps.Log.Error("error formatting query results", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response), nil
}
