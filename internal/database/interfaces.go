package database

//go:generate mockgen -destination=mocks/mock_database.go -package=mocks github.com/neo4j-labs/graphrag-mcp/internal/database Service

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// QueryExecutor defines the interface for executing Cypher against Neo4j.
type QueryExecutor interface {
	// VerifyConnectivity checks the driver can reach a Neo4j instance.
	VerifyConnectivity(ctx context.Context) error

	// ExecuteReadQuery executes a read-only Cypher query and returns raw records.
	ExecuteReadQuery(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error)

	// GetQueryType classifies a query by prefixing it with EXPLAIN, without executing it.
	GetQueryType(ctx context.Context, cypher string, params map[string]any) (neo4j.StatementType, error)

	// GetSchema retrieves schema information for the configured database.
	GetSchema(ctx context.Context) ([]*neo4j.Record, error)
}

// RecordFormatter defines the interface for materializing Neo4j records.
type RecordFormatter interface {
	// RecordsToMaps converts records to a list of key/value rows.
	RecordsToMaps(records []*neo4j.Record) []map[string]any

	// RecordsToJSON converts records to a JSON string.
	RecordsToJSON(records []*neo4j.Record) (string, error)
}

// Service combines query execution and record formatting.
type Service interface {
	QueryExecutor
	RecordFormatter
}
