package retriever

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neo4j-labs/graphrag-mcp/internal/database"
	"github.com/neo4j-labs/graphrag-mcp/internal/llm"
	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
)

const text2cypherSystemPrompt = `You are an expert Neo4j Cypher translator.
Given a graph schema and a natural language question, produce a single
read-only Cypher query that answers the question.

Rules:
- Use only labels, relationship types and properties present in the schema.
- Never use CREATE, MERGE, DELETE, SET, REMOVE or any other write clause.
- Return the query text only, without explanation or markdown fences.`

// Text2CypherRetriever translates natural language questions into Cypher
// using the configured LLM, grounded on the live database schema.
type Text2CypherRetriever struct {
	db  database.Service
	llm llm.Client
	log *logger.Service
}

// NewText2CypherRetriever creates a new Text2CypherRetriever.
func NewText2CypherRetriever(db database.Service, llmClient llm.Client, log *logger.Service) (*Text2CypherRetriever, error) {
	if db == nil {
		return nil, fmt.Errorf("database service cannot be nil")
	}
	if llmClient == nil {
		return nil, fmt.Errorf("llm client cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &Text2CypherRetriever{db: db, llm: llmClient, log: log}, nil
}

// Search generates Cypher for the given question. The returned value is
// deliberately untyped: depending on the model and prompt version the
// payload may be a bare query string, a JSON object or a JSON array.
// Callers funnel it through Normalize.
func (r *Text2CypherRetriever) Search(ctx context.Context, question string) (any, error) {
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}

	schemaRecords, err := r.db.GetSchema(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema for text2cypher: %w", err)
	}
	schemaJSON, err := r.db.RecordsToJSON(schemaRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema for text2cypher: %w", err)
	}

	prompt := fmt.Sprintf("Schema:\n%s\n\nQuestion: %s\n\nCypher query:", schemaJSON, question)

	response, err := r.llm.CompleteWithSystem(ctx, text2cypherSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("cypher generation failed: %w", err)
	}

	raw := decodeModelPayload(response)
	r.log.Debug("text2cypher raw payload", "question", question, "payload", raw)
	return raw, nil
}

// decodeModelPayload turns the model's text response into the loosest
// faithful value. Fenced blocks are unwrapped first; JSON payloads are
// decoded into maps/sequences, anything else stays a plain string.
func decodeModelPayload(response string) any {
	text := stripCodeFences(response)

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		var decoded any
		if err := json.Unmarshal([]byte(text), &decoded); err == nil {
			return decoded
		}
		// Not valid JSON after all, fall through to the raw text.
	}

	return text
}

// stripCodeFences removes a surrounding markdown code fence, including
// an optional language tag such as ```cypher or ```json.
func stripCodeFences(s string) string {
	text := strings.TrimSpace(s)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		// A language tag has no spaces; anything else is content.
		if firstLine == "" || !strings.Contains(firstLine, " ") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
