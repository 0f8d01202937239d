package tools

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neo4j-labs/graphrag-mcp/internal/retriever"
)

type VectorSearchInput struct {
	Question string `json:"question" jsonschema:"description=The natural language question to answer from the graph"`
	TopK     int32  `json:"top_k,omitempty" jsonschema:"default=5,description=Number of vector matches to retrieve"`
}

// VectorSearchResult is the tool response: the input question, the
// grounded answer and the vector matches it was built from.
type VectorSearchResult struct {
	Input   string            `json:"input"`
	Answer  string            `json:"answer"`
	Matches []retriever.Match `json:"matches"`
}

func VectorSearchSpec() mcp.Tool {
	return mcp.NewTool("vector-search",
		mcp.WithDescription("Answer a natural language question by embedding it, retrieving the closest nodes from the configured vector index, and generating an answer grounded on those matches."),
		mcp.WithInputSchema[VectorSearchInput](),
		mcp.WithTitleAnnotation("Vector Search"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
