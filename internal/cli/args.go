// Package cli pre-processes command-line arguments: it handles help and
// version flags itself and validates pass-through configuration flags
// before the flag package parses them.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// osExit is a variable that can be mocked in tests
var osExit = os.Exit

const helpText = `graphrag-mcp - GraphRAG Model Context Protocol Server for Neo4j

Usage:
  graphrag-mcp [OPTIONS]

Options:
  -h, --help                          Show this help message
  -v, --version                       Show version information
  --neo4j-uri <URI>                   Neo4j connection URI (overrides env var)
  --neo4j-username <USERNAME>         Database username (overrides env var)
  --neo4j-password <PASSWORD>         Database password (overrides env var)
  --neo4j-database <DATABASE>         Database name (overrides env var)
  --vector-index <NAME>               Vector index queried by vector-search (overrides env var)
  --telemetry <true|false>            Enable or disable telemetry (overrides env var)

Required Environment Variables:
  NEO4J_URI       Neo4j database URI
  NEO4J_USERNAME  Database username
  NEO4J_PASSWORD  Database password
  GENAI_API_KEY   API key for the generation and embedding models

Optional Environment Variables:
  NEO4J_DATABASE            Database name (default: neo4j)
  GRAPHRAG_CHAT_MODEL       Generation model (default: gemini-2.0-flash)
  GRAPHRAG_EMBEDDING_MODEL  Embedding model (default: gemini-embedding-001)
  GRAPHRAG_VECTOR_INDEX     Vector index name (default: my_vector_index)
  GRAPHRAG_TOP_K            Default vector matches per search (default: 5)
  GRAPHRAG_TRANSPORT_MODE   Transport mode, stdio or http (default: stdio)
  GRAPHRAG_HTTP_HOST        HTTP host (default: 127.0.0.1)
  GRAPHRAG_HTTP_PORT        HTTP port (default: 8005)
  GRAPHRAG_TELEMETRY        Enable/disable telemetry (default: true)

Examples:
  # Using environment variables
  NEO4J_URI=bolt://localhost:7687 NEO4J_USERNAME=neo4j NEO4J_PASSWORD=password GENAI_API_KEY=... graphrag-mcp

  # Using CLI flags (takes precedence over environment variables)
  graphrag-mcp --neo4j-uri bolt://localhost:7687 --neo4j-username neo4j --neo4j-password password
`

// passThroughFlags are configuration flags handled later by the flag
// package; HandleArgs only checks that each carries a value.
var passThroughFlags = []string{
	"--neo4j-uri",
	"--neo4j-username",
	"--neo4j-password",
	"--neo4j-database",
	"--vector-index",
	"--telemetry",
	"--transport",
	"--http-host",
	"--http-port",
}

// HandleArgs processes command-line arguments for version and help flags.
// It exits the program after displaying the requested information.
// If unknown flags are encountered, it prints an error message and exits.
// Known configuration flags are skipped so the flag package can parse them.
func HandleArgs(version string) {
	if len(os.Args) <= 1 {
		return
	}

	flags := make(map[string]bool)
	var err error
	i := 1 // os.Args[0] is the program name, not a flag

	for i < len(os.Args) {
		arg := os.Args[i]
		switch {
		case arg == "-h" || arg == "--help":
			flags["help"] = true
			i++
		case arg == "-v" || arg == "--version":
			flags["version"] = true
			i++
		case isPassThroughFlag(arg):
			if i+1 >= len(os.Args) {
				err = fmt.Errorf("%s requires a value", arg)
				break
			}
			nextArg := os.Args[i+1]
			if strings.HasPrefix(nextArg, "--") {
				err = fmt.Errorf("%s requires a value (got flag %s instead)", arg, nextArg)
				break
			}
			// Safe to skip flag and value - the flag package handles them
			i += 2
		case arg == "--":
			// Stop processing our flags, let the flag package handle the rest
			i = len(os.Args)
		default:
			err = fmt.Errorf("unknown flag or argument: %s", arg)
			i++
		}
		if err != nil {
			break
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}

	if flags["help"] {
		fmt.Print(helpText)
		osExit(0)
	}

	if flags["version"] {
		fmt.Printf("graphrag-mcp version: %s\n", version)
		osExit(0)
	}
}

func isPassThroughFlag(arg string) bool {
	for _, f := range passThroughFlags {
		if arg == f {
			return true
		}
	}
	return false
}
