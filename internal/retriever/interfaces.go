package retriever

//go:generate mockgen -destination=mocks/mock_retriever.go -package=mocks github.com/neo4j-labs/graphrag-mcp/internal/retriever CypherRetriever,RAGSearcher

import "context"

// CypherRetriever generates Cypher from a natural language question.
// The raw return value is of unknown shape and must go through Normalize.
type CypherRetriever interface {
	Search(ctx context.Context, question string) (any, error)
}

// RAGSearcher answers a question grounded on retrieved graph context.
type RAGSearcher interface {
	Search(ctx context.Context, question string, topK int32) (*Answer, error)
}
