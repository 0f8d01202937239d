package retriever

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neo4j-labs/graphrag-mcp/internal/llm"
	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
)

const ragSystemPrompt = `You are a helpful assistant answering questions about a knowledge graph.
Use only the provided context to answer. If the context does not contain
the answer, say so instead of guessing.`

// Answer is the output of a RAG search: the generated answer plus the
// retrieved matches it was grounded on.
type Answer struct {
	Answer  string  `json:"answer"`
	Matches []Match `json:"matches"`
}

// GraphRAG is the retrieval-augmented generation pipeline: a vector
// retriever supplies context, the LLM generates a grounded answer.
type GraphRAG struct {
	retriever *VectorRetriever
	llm       llm.Client
	log       *logger.Service
}

// NewGraphRAG creates a new GraphRAG pipeline.
func NewGraphRAG(vectorRetriever *VectorRetriever, llmClient llm.Client, log *logger.Service) (*GraphRAG, error) {
	if vectorRetriever == nil {
		return nil, fmt.Errorf("vector retriever cannot be nil")
	}
	if llmClient == nil {
		return nil, fmt.Errorf("llm client cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &GraphRAG{retriever: vectorRetriever, llm: llmClient, log: log}, nil
}

// Search retrieves the topK closest matches for the question and asks
// the LLM for an answer grounded on them.
func (g *GraphRAG) Search(ctx context.Context, question string, topK int32) (*Answer, error) {
	matches, err := g.retriever.Search(ctx, question, topK)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		g.log.Info("no vector matches for question", "question", question)
		return &Answer{Answer: "No matching data was found in the graph for this question.", Matches: matches}, nil
	}

	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", formatContext(matches), question)
	answer, err := g.llm.CompleteWithSystem(ctx, ragSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("answer generation failed: %w", err)
	}

	return &Answer{Answer: strings.TrimSpace(answer), Matches: matches}, nil
}

// formatContext renders retrieved matches as a compact context block.
func formatContext(matches []Match) string {
	var b strings.Builder
	for i, match := range matches {
		props, err := json.Marshal(match.Properties)
		if err != nil {
			props = []byte("{}")
		}
		fmt.Fprintf(&b, "%d. [%s] %s (score %.3f)\n", i+1, strings.Join(match.Labels, ":"), props, match.Score)
	}
	return b.String()
}
