// Package database wraps the Neo4j Go driver behind a small service
// interface so that tool handlers can be tested against mocks.
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
)

// schemaQuery is the APOC query used to retrieve comprehensive schema information.
const schemaQuery = `
        CALL apoc.meta.schema()
        YIELD value
        UNWIND keys(value) as key
        WITH key, value[key] as value
        RETURN key, value { .properties, .type, .relationships } as value
    `

// Neo4jService is the concrete implementation of Service
type Neo4jService struct {
	driver   neo4j.DriverWithContext
	database string
	log      *logger.Service
}

// NewNeo4jService creates a new Neo4jService instance
func NewNeo4jService(driver neo4j.DriverWithContext, database string, log *logger.Service) (*Neo4jService, error) {
	if driver == nil {
		return nil, fmt.Errorf("driver cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Neo4jService{
		driver:   driver,
		database: database,
		log:      log,
	}, nil
}

// VerifyConnectivity checks the driver can establish a valid connection with a Neo4j instance
func (s *Neo4jService) VerifyConnectivity(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		s.log.Error("failed to verify database connectivity", "error", err)
		return err
	}
	return nil
}

// ExecuteReadQuery executes a read-only Cypher query and returns raw records
func (s *Neo4jService) ExecuteReadQuery(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	res, err := neo4j.ExecuteQuery(ctx, s.driver, cypher, params, neo4j.EagerResultTransformer, neo4j.ExecuteQueryWithDatabase(s.database), neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		wrappedErr := fmt.Errorf("failed to execute read query: %w", err)
		s.log.Error("error in ExecuteReadQuery", "error", wrappedErr)
		return nil, wrappedErr
	}

	return res.Records, nil
}

// GetQueryType prefixes the provided query with EXPLAIN and returns the query type (e.g. 'r' for read, 'w' for write, 'rw' etc.)
// This allows read-only tools to determine if a query is safe to run in read-only context.
func (s *Neo4jService) GetQueryType(ctx context.Context, cypher string, params map[string]any) (neo4j.StatementType, error) {
	explainedQuery := strings.Join([]string{"EXPLAIN", cypher}, " ")
	res, err := neo4j.ExecuteQuery(ctx, s.driver, explainedQuery, params, neo4j.EagerResultTransformer, neo4j.ExecuteQueryWithDatabase(s.database))
	if err != nil {
		wrappedErr := fmt.Errorf("error during GetQueryType: %w", err)
		s.log.Error("error during GetQueryType", "error", wrappedErr)
		return neo4j.StatementTypeUnknown, wrappedErr
	}

	if res.Summary == nil {
		err := fmt.Errorf("error during GetQueryType: no summary returned for explained query")
		s.log.Error("error during GetQueryType", "error", err)
		return neo4j.StatementTypeUnknown, err
	}

	return res.Summary.StatementType(), nil
}

// GetSchema retrieves schema information for the configured database using APOC
func (s *Neo4jService) GetSchema(ctx context.Context) ([]*neo4j.Record, error) {
	records, err := s.ExecuteReadQuery(ctx, schemaQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve schema: %w", err)
	}
	return records, nil
}

// RecordsToMaps converts Neo4j records to a list of key/value rows,
// the shape returned by materializing query results.
func (s *Neo4jService) RecordsToMaps(records []*neo4j.Record) []map[string]any {
	results := make([]map[string]any, 0, len(records))
	for _, record := range records {
		results = append(results, record.AsMap())
	}
	return results
}

// RecordsToJSON converts Neo4j records to a JSON string
func (s *Neo4jService) RecordsToJSON(records []*neo4j.Record) (string, error) {
	results := s.RecordsToMaps(records)

	formattedResponse, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		wrappedErr := fmt.Errorf("failed to format records as JSON: %w", err)
		s.log.Error("error in RecordsToJSON", "error", wrappedErr)
		return "", wrappedErr
	}

	return string(formattedResponse), nil
}
