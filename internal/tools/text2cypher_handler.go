package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/neo4j-labs/graphrag-mcp/internal/retriever"
)

// Text2CypherHandler returns the handler for the text2cypher tool.
func Text2CypherHandler(deps *ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleText2Cypher(ctx, request, deps)
	}
}

func handleText2Cypher(ctx context.Context, request mcp.CallToolRequest, deps *ToolDependencies) (*mcp.CallToolResult, error) {
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
	if deps.CypherRetriever == nil {
		errMessage := "cypher retriever is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("text2cypher"))

	var args Text2CypherInput
	if err := BindArguments(request, &args); err != nil {
		deps.Log.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Question == "" {
		errMessage := "Question parameter is required and cannot be empty"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	raw, err := deps.CypherRetriever.Search(ctx, args.Question)
	if err != nil {
		deps.Log.Error("cypher generation failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	// The retriever payload shape varies across versions; reduce it to
	// the canonical triple before doing anything with it.
	normalized := retriever.Normalize(raw)

	cypherText := normalized.QueryTextWithFallback()
	if cypherText == "" {
		errMessage := fmt.Sprintf("No Cypher generated for question %q", args.Question)
		deps.Log.Warn(errMessage, "raw", fmt.Sprintf("%v", raw))
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.Log.Info("generated cypher", "question", args.Question, "cypher", cypherText)

	// The generated query is only ever executed in a read-only context.
	queryType, err := deps.DBService.GetQueryType(ctx, cypherText, nil)
	if err != nil {
		deps.Log.Error("error while classifying generated Cypher", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if queryType != neo4j.StatementTypeReadOnly {
		errMessage := "text2cypher generated a non-read-only query; refusing to execute it"
		deps.Log.Warn(errMessage, "type", queryType, "cypher", cypherText)
		return mcp.NewToolResultError(errMessage), nil
	}

	records, err := deps.DBService.ExecuteReadQuery(ctx, cypherText, nil)
	if err != nil {
		deps.Log.Error("error executing generated Cypher", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := Text2CypherResult{
		Input:     args.Question,
		Cypher:    cypherText,
		GraphData: deps.DBService.RecordsToMaps(records),
	}
	if len(normalized.Metadata) > 0 {
		result.Metadata = normalized.Metadata
	}

	response, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		deps.Log.Error("error formatting text2cypher response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
