package llm

//go:generate mockgen -destination=mocks/mock_llm.go -package=mocks github.com/neo4j-labs/graphrag-mcp/internal/llm Client,Embedder

import "context"

// Client defines the minimal interface retrievers use to call an LLM.
type Client interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Embedder converts text into a vector for similarity search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
