package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// VectorSearchHandler returns the handler for the vector-search tool.
func VectorSearchHandler(deps *ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleVectorSearch(ctx, request, deps)
	}
}

func handleVectorSearch(ctx context.Context, request mcp.CallToolRequest, deps *ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService == nil {
		errMessage := "analytics service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.RAG == nil {
		errMessage := "RAG pipeline is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("vector-search"))

	var args VectorSearchInput
	if err := BindArguments(request, &args); err != nil {
		deps.Log.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Question == "" {
		errMessage := "Question parameter is required and cannot be empty"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	topK := args.TopK
	if topK <= 0 {
		topK = deps.Config.TopK
	}

	answer, err := deps.RAG.Search(ctx, args.Question, topK)
	if err != nil {
		deps.Log.Error("vector search failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := VectorSearchResult{
		Input:   args.Question,
		Answer:  answer.Answer,
		Matches: answer.Matches,
	}

	response, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		deps.Log.Error("error formatting vector-search response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(response)), nil
}
