package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type Text2CypherInput struct {
	Question string `json:"question" jsonschema:"description=The natural language question to translate into Cypher"`
}

// Text2CypherResult is the tool response: the input question, the
// generated query, the rows it returned and any retriever metadata.
type Text2CypherResult struct {
	Input     string           `json:"input"`
	Cypher    string           `json:"cypher"`
	GraphData []map[string]any `json:"graphData"`
	Metadata  map[string]any   `json:"metadata,omitempty"`
}

func Text2CypherSpec() mcp.Tool {
	return mcp.NewTool("text2cypher",
		mcp.WithDescription("Translate a natural language question into a read-only Cypher query using the live graph schema, execute it, and return the generated query together with its results."),
		mcp.WithInputSchema[Text2CypherInput](),
		mcp.WithTitleAnnotation("Text to Cypher"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
