// Package server wires the MCP server: transports, tool registration,
// and the services the tools depend on.
package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/neo4j-labs/graphrag-mcp/internal/analytics"
	"github.com/neo4j-labs/graphrag-mcp/internal/config"
	"github.com/neo4j-labs/graphrag-mcp/internal/database"
	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
	"github.com/neo4j-labs/graphrag-mcp/internal/retriever"
	"github.com/neo4j-labs/graphrag-mcp/internal/tools"
)

// Version is the server version reported over MCP and by the -v flag.
const Version = "0.3.0"

const httpReadHeaderTimeout = 10 * time.Second

// GraphRAGMCPServer represents the MCP server instance
type GraphRAGMCPServer struct {
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	config     *config.Config
	deps       *tools.ToolDependencies
	log        *logger.Service
}

// NewGraphRAGMCPServer creates a new MCP server instance.
// The config parameter is expected to be already validated.
func NewGraphRAGMCPServer(cfg *config.Config, dbService database.Service, cypherRetriever retriever.CypherRetriever, rag retriever.RAGSearcher, analyticsService analytics.Service, log *logger.Service) *GraphRAGMCPServer {
	s := &GraphRAGMCPServer{
		config: cfg,
		log:    log,
		deps: &tools.ToolDependencies{
			Config:           cfg,
			DBService:        dbService,
			CypherRetriever:  cypherRetriever,
			RAG:              rag,
			AnalyticsService: analyticsService,
			Log:              log,
		},
	}

	s.mcpServer = server.NewMCPServer(
		"graphrag-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithHooks(s.newHooks()),
		server.WithInstructions("This server exposes GraphRAG tooling for a Neo4j database: "+
			"inspect the graph with get-schema, run read-only queries with read-cypher, "+
			"translate questions to Cypher with text2cypher, and answer questions from the "+
			"vector index with vector-search."),
	)

	return s
}

// RegisterTools registers all available MCP tools
func (s *GraphRAGMCPServer) RegisterTools() {
	tools.RegisterAllTools(s.mcpServer, s.deps)
}

// Start initializes and starts the MCP server using the configured transport
func (s *GraphRAGMCPServer) Start() error {
	s.log.Info("starting GraphRAG MCP server", "transport", s.config.TransportMode, "version", Version)

	s.RegisterTools()

	if s.deps.AnalyticsService != nil {
		s.deps.AnalyticsService.EmitEvent(s.deps.AnalyticsService.NewStartupEvent())
		s.deps.AnalyticsService.EmitEvent(s.deps.AnalyticsService.NewEnvReportEvent(s.config.URI))
	}

	switch s.config.TransportMode {
	case config.TransportModeHTTP:
		return s.startHTTP()
	case config.TransportModeStdio:
		s.log.Info("started GraphRAG MCP server, now listening for input")
		return server.ServeStdio(s.mcpServer)
	default:
		return fmt.Errorf("unsupported transport mode: %s", s.config.TransportMode)
	}
}

// startHTTP initializes and starts the HTTP server
func (s *GraphRAGMCPServer) startHTTP() error {
	addr := fmt.Sprintf("%s:%s", s.config.HTTPHost, s.config.HTTPPort)

	// Stateless: each request carries everything needed, no session affinity
	s.httpServer = server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithEndpointPath(s.config.HTTPPath),
		server.WithStateLess(true),
	)

	allowedOrigins := splitOrigins(s.config.HTTPAllowedOrigins)

	mux := http.NewServeMux()
	mux.Handle(s.config.HTTPPath, s.httpServer)

	s.log.Info("started GraphRAG MCP HTTP server", "addr", addr, "path", s.config.HTTPPath)
	s.log.Info("binding to network interface", "host", s.config.HTTPHost)
	if len(allowedOrigins) > 0 {
		s.log.Info("CORS enabled", "allowed_origins", allowedOrigins)
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           chainMiddleware(s.log, s.config.HTTPPath, allowedOrigins, mux),
		ReadHeaderTimeout: httpReadHeaderTimeout,
	}

	return httpServer.ListenAndServe()
}

// Stop gracefully stops the server
func (s *GraphRAGMCPServer) Stop() error {
	s.log.Info("stopping GraphRAG MCP server")
	// The MCP server handles its own lifecycle; database driver cleanup
	// is handled by the caller (main.go).
	return nil
}

// splitOrigins parses the comma-separated allowed-origins setting.
func splitOrigins(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
