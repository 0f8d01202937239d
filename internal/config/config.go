// Package config loads and validates the server configuration from
// environment variables and optional CLI flag overrides.
package config

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
)

type TransportMode string

const (
	TransportModeStdio TransportMode = "stdio"
	TransportModeHTTP  TransportMode = "http"

	// DefaultVectorIndex is the vector index queried when none is configured.
	DefaultVectorIndex = "my_vector_index"
	// DefaultTopK is the default number of vector matches retrieved per search.
	DefaultTopK int32 = 5
	// DefaultChatModel is the generation model used for text2cypher and RAG answers.
	DefaultChatModel = "gemini-2.0-flash"
	// DefaultEmbeddingModel is the embedding model used by the vector retriever.
	DefaultEmbeddingModel = "gemini-embedding-001"
)

// ValidTransportModes defines the allowed transport mode values
var ValidTransportModes = []TransportMode{TransportModeStdio, TransportModeHTTP}

// Config holds the application configuration
type Config struct {
	URI                string
	Username           string
	Password           string
	Database           string
	GenAIAPIKey        string // API key for the LLM and embedding models
	ChatModel          string // Generation model name
	EmbeddingModel     string // Embedding model name
	VectorIndex        string // Name of the Neo4j vector index queried by vector-search
	TopK               int32  // Default number of vector matches per search
	Telemetry          bool   // If false, disables telemetry
	LogLevel           string
	LogFormat          string
	TransportMode      TransportMode // MCP transport mode ("stdio" or "http")
	HTTPPort           string        // HTTP server port
	HTTPHost           string        // HTTP server host (default: "127.0.0.1")
	HTTPPath           string        // HTTP endpoint path (default: "/mcp")
	HTTPAllowedOrigins string        // Comma-separated list of allowed origins ("*" for all)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is required but was nil")
	}

	if c.URI == "" {
		return fmt.Errorf("Neo4j URI is required but was empty")
	}
	if c.Username == "" {
		return fmt.Errorf("Neo4j username is required but was empty")
	}
	if c.Password == "" {
		return fmt.Errorf("Neo4j password is required but was empty")
	}

	// text2cypher and vector-search cannot work without a model API key
	if c.GenAIAPIKey == "" {
		return fmt.Errorf("GenAI API key is required but was empty (set GENAI_API_KEY)")
	}

	// Default to stdio if not provided (keeps Config structs built directly in tests valid)
	if c.TransportMode == "" {
		c.TransportMode = TransportModeStdio
	}

	if !slices.Contains(ValidTransportModes, c.TransportMode) {
		return fmt.Errorf("invalid transport mode '%s', must be one of %v", c.TransportMode, ValidTransportModes)
	}

	if c.TopK <= 0 {
		return fmt.Errorf("top-k must be positive, got %d", c.TopK)
	}

	return nil
}

// CLIOverrides holds optional configuration values from CLI flags
type CLIOverrides struct {
	URI           string
	Username      string
	Password      string
	Database      string
	VectorIndex   string
	Telemetry     string
	TransportMode string
	Port          string
	Host          string
}

// LoadConfig loads configuration from environment variables, applies CLI overrides, and validates.
// CLI flag values take precedence over environment variables.
// Returns an error if required configuration is missing or invalid.
func LoadConfig(cliOverrides *CLIOverrides) (*Config, error) {
	logLevel := GetEnvWithDefault("GRAPHRAG_LOG_LEVEL", "info")
	logFormat := GetEnvWithDefault("GRAPHRAG_LOG_FORMAT", "text")

	// Validate log level and use default if invalid
	if !slices.Contains(logger.ValidLogLevels, logLevel) {
		fmt.Fprintf(os.Stderr, "Warning: invalid GRAPHRAG_LOG_LEVEL '%s', using default 'info'. Valid values: %v\n", logLevel, logger.ValidLogLevels)
		logLevel = "info"
	}

	// Validate log format and use default if invalid
	if !slices.Contains(logger.ValidLogFormats, logFormat) {
		fmt.Fprintf(os.Stderr, "Warning: invalid GRAPHRAG_LOG_FORMAT '%s', using default 'text'. Valid values: %v\n", logFormat, logger.ValidLogFormats)
		logFormat = "text"
	}

	cfg := &Config{
		URI:                GetEnvWithDefault("NEO4J_URI", GetEnv("NEO4J_URL")),
		Username:           GetEnvWithDefault("NEO4J_USERNAME", GetEnv("NEO4J_USER")),
		Password:           GetEnv("NEO4J_PASSWORD"),
		Database:           GetEnvWithDefault("NEO4J_DATABASE", "neo4j"),
		GenAIAPIKey:        GetEnv("GENAI_API_KEY"),
		ChatModel:          GetEnvWithDefault("GRAPHRAG_CHAT_MODEL", DefaultChatModel),
		EmbeddingModel:     GetEnvWithDefault("GRAPHRAG_EMBEDDING_MODEL", DefaultEmbeddingModel),
		VectorIndex:        GetEnvWithDefault("GRAPHRAG_VECTOR_INDEX", DefaultVectorIndex),
		TopK:               ParseInt32(GetEnv("GRAPHRAG_TOP_K"), DefaultTopK),
		Telemetry:          ParseBool(GetEnv("GRAPHRAG_TELEMETRY"), true),
		LogLevel:           logLevel,
		LogFormat:          logFormat,
		TransportMode:      GetTransportModeWithDefault("GRAPHRAG_TRANSPORT_MODE", TransportModeStdio),
		HTTPPort:           GetEnvWithDefault("GRAPHRAG_HTTP_PORT", "8005"),
		HTTPHost:           GetEnvWithDefault("GRAPHRAG_HTTP_HOST", "127.0.0.1"),
		HTTPPath:           GetEnvWithDefault("GRAPHRAG_HTTP_PATH", "/mcp"),
		HTTPAllowedOrigins: GetEnv("GRAPHRAG_HTTP_ALLOWED_ORIGINS"),
	}

	// Apply CLI overrides if provided
	if cliOverrides != nil {
		if cliOverrides.URI != "" {
			cfg.URI = cliOverrides.URI
		}
		if cliOverrides.Username != "" {
			cfg.Username = cliOverrides.Username
		}
		if cliOverrides.Password != "" {
			cfg.Password = cliOverrides.Password
		}
		if cliOverrides.Database != "" {
			cfg.Database = cliOverrides.Database
		}
		if cliOverrides.VectorIndex != "" {
			cfg.VectorIndex = cliOverrides.VectorIndex
		}
		if cliOverrides.Telemetry != "" {
			cfg.Telemetry = ParseBool(cliOverrides.Telemetry, true)
		}
		if cliOverrides.TransportMode != "" {
			cfg.TransportMode = TransportMode(cliOverrides.TransportMode)
		}
		if cliOverrides.Port != "" {
			cfg.HTTPPort = cliOverrides.Port
		}
		if cliOverrides.Host != "" {
			cfg.HTTPHost = cliOverrides.Host
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetEnv returns the value of an environment variable or empty string if not set
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvWithDefault returns the value of an environment variable or a default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetTransportModeWithDefault returns the value of an environment variable or a default value
func GetTransportModeWithDefault(key string, defaultValue TransportMode) TransportMode {
	if value := os.Getenv(key); value != "" {
		return TransportMode(value)
	}
	return defaultValue
}

// ParseBool parses a string to bool using strconv.ParseBool.
// Returns the default value if the string is empty or invalid.
func ParseBool(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: Invalid boolean value %q, using default: %v", value, defaultValue)
		return defaultValue
	}
	return parsed
}

// ParseInt32 parses a string to int32.
// Returns the default value if the string is empty or invalid.
func ParseInt32(value string, defaultValue int32) int32 {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		log.Printf("Warning: Invalid integer value %q, using default: %v", value, defaultValue)
		return defaultValue
	}
	return int32(parsed)
}
