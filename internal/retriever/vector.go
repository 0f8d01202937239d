package retriever

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/neo4j-labs/graphrag-mcp/internal/database"
	"github.com/neo4j-labs/graphrag-mcp/internal/llm"
	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
)

// vectorSearchQuery queries the configured vector index for the nodes
// closest to the embedded question.
const vectorSearchQuery = `
        CALL db.index.vector.queryNodes($index, $k, $embedding)
        YIELD node, score
        RETURN node, score
    `

// Match is one vector index hit: the matched node's properties plus the
// similarity score reported by the index.
type Match struct {
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
	Score      float64        `json:"score"`
}

// VectorRetriever finds graph nodes similar to a question by embedding
// the question and querying a Neo4j vector index.
type VectorRetriever struct {
	db       database.Service
	embedder llm.Embedder
	index    string
	log      *logger.Service
}

// NewVectorRetriever creates a new VectorRetriever over the named index.
func NewVectorRetriever(db database.Service, embedder llm.Embedder, index string, log *logger.Service) (*VectorRetriever, error) {
	if db == nil {
		return nil, fmt.Errorf("database service cannot be nil")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder cannot be nil")
	}
	if index == "" {
		return nil, fmt.Errorf("vector index name cannot be empty")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &VectorRetriever{db: db, embedder: embedder, index: index, log: log}, nil
}

// Search returns the topK closest matches for the question.
func (r *VectorRetriever) Search(ctx context.Context, question string, topK int32) ([]Match, error) {
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}
	if topK <= 0 {
		return nil, fmt.Errorf("top-k must be positive, got %d", topK)
	}

	embedding, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	params := map[string]any{
		"index":     r.index,
		"k":         int64(topK),
		"embedding": toFloat64(embedding),
	}

	records, err := r.db.ExecuteReadQuery(ctx, vectorSearchQuery, params)
	if err != nil {
		return nil, fmt.Errorf("vector index query failed: %w", err)
	}

	matches := make([]Match, 0, len(records))
	for _, record := range records {
		matches = append(matches, recordToMatch(record))
	}

	r.log.Debug("vector search completed", "index", r.index, "top_k", topK, "matches", len(matches))
	return matches, nil
}

// recordToMatch converts one (node, score) record into a Match. Records
// with unexpected value types degrade to empty fields rather than fail.
func recordToMatch(record *neo4j.Record) Match {
	match := Match{Properties: map[string]any{}}

	row := record.AsMap()
	if node, ok := row["node"].(dbtype.Node); ok {
		match.Labels = node.Labels
		match.Properties = node.Props
	}
	if score, ok := row["score"].(float64); ok {
		match.Score = score
	}

	return match
}

// toFloat64 widens the embedding for the Bolt protocol, which carries
// float lists as 64-bit values.
func toFloat64(embedding []float32) []float64 {
	out := make([]float64, len(embedding))
	for i, v := range embedding {
		out[i] = float64(v)
	}
	return out
}
