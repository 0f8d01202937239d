package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/neo4j-labs/graphrag-mcp/internal/analytics"
	"github.com/neo4j-labs/graphrag-mcp/internal/cli"
	"github.com/neo4j-labs/graphrag-mcp/internal/config"
	"github.com/neo4j-labs/graphrag-mcp/internal/database"
	"github.com/neo4j-labs/graphrag-mcp/internal/llm"
	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
	"github.com/neo4j-labs/graphrag-mcp/internal/retriever"
	"github.com/neo4j-labs/graphrag-mcp/internal/server"
)

// Telemetry collector settings, injected at build time via -ldflags.
// Telemetry stays disabled when either is empty.
var (
	telemetryToken    string
	telemetryEndpoint string
)

func main() {
	// Handle -h/-v and validate pass-through flags before flag.Parse
	cli.HandleArgs(server.Version)

	uri := flag.String("neo4j-uri", "", "Neo4j connection URI")
	username := flag.String("neo4j-username", "", "Database username")
	password := flag.String("neo4j-password", "", "Database password")
	databaseName := flag.String("neo4j-database", "", "Database name")
	vectorIndex := flag.String("vector-index", "", "Vector index queried by vector-search")
	telemetry := flag.String("telemetry", "", "Enable or disable telemetry (true or false)")
	transport := flag.String("transport", "", "Transport mode (stdio or http)")
	httpHost := flag.String("http-host", "", "HTTP host")
	httpPort := flag.String("http-port", "", "HTTP port")
	flag.Parse()

	cfg, err := config.LoadConfig(&config.CLIOverrides{
		URI:           *uri,
		Username:      *username,
		Password:      *password,
		Database:      *databaseName,
		VectorIndex:   *vectorIndex,
		Telemetry:     *telemetry,
		TransportMode: *transport,
		Host:          *httpHost,
		Port:          *httpPort,
	})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Stdio transport owns stdout, so all logging goes to stderr
	logService := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx := context.Background()

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		log.Fatalf("Failed to create Neo4j driver: %v", err)
	}
	defer func() {
		if err := driver.Close(ctx); err != nil {
			logService.Error("error closing Neo4j driver", "error", err)
		}
	}()

	dbService, err := database.NewNeo4jService(driver, cfg.Database, logService)
	if err != nil {
		log.Fatalf("Failed to create database service: %v", err)
	}

	if err := dbService.VerifyConnectivity(ctx); err != nil {
		log.Fatalf("Failed to connect to Neo4j at %s: %v", cfg.URI, err)
	}

	llmClient, err := llm.NewGenAIClient(ctx, cfg.GenAIAPIKey, cfg.ChatModel, cfg.EmbeddingModel)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	text2cypher, err := retriever.NewText2CypherRetriever(dbService, llmClient, logService)
	if err != nil {
		log.Fatalf("Failed to create text2cypher retriever: %v", err)
	}

	vectorRetriever, err := retriever.NewVectorRetriever(dbService, llmClient, cfg.VectorIndex, logService)
	if err != nil {
		log.Fatalf("Failed to create vector retriever: %v", err)
	}

	rag, err := retriever.NewGraphRAG(vectorRetriever, llmClient, logService)
	if err != nil {
		log.Fatalf("Failed to create RAG pipeline: %v", err)
	}

	analyticsService, err := analytics.NewTelemetryService(telemetryToken, telemetryEndpoint, nil, logService)
	if err != nil {
		log.Fatalf("Failed to create telemetry service: %v", err)
	}
	if cfg.Telemetry && telemetryToken != "" && telemetryEndpoint != "" {
		analyticsService.Enable()
	}

	mcpServer := server.NewGraphRAGMCPServer(cfg, dbService, text2cypher, rag, analyticsService, logService)
	defer func() {
		if err := mcpServer.Stop(); err != nil {
			logService.Error("error stopping server", "error", err)
		}
	}()

	// Start the server (this blocks until the server is stopped)
	if err := mcpServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
