// Package tools contains the MCP tool specs and handlers exposed by the
// server: read-cypher, text2cypher, vector-search, get-schema and health.
package tools

import (
	"github.com/neo4j-labs/graphrag-mcp/internal/analytics"
	"github.com/neo4j-labs/graphrag-mcp/internal/config"
	"github.com/neo4j-labs/graphrag-mcp/internal/database"
	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
	"github.com/neo4j-labs/graphrag-mcp/internal/retriever"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	Config           *config.Config
	DBService        database.Service
	CypherRetriever  retriever.CypherRetriever
	RAG              retriever.RAGSearcher
	AnalyticsService analytics.Service
	Log              *logger.Service
}
