package tools_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/mock/gomock"

	analytics "github.com/neo4j-labs/graphrag-mcp/internal/analytics/mocks"
	db "github.com/neo4j-labs/graphrag-mcp/internal/database/mocks"
	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
	retrievermocks "github.com/neo4j-labs/graphrag-mcp/internal/retriever/mocks"
	"github.com/neo4j-labs/graphrag-mcp/internal/tools"
)

func text2cypherRequest(question string) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"question": question,
			},
		},
	}
}

func TestText2CypherHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("text2cypher").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	t.Run("retriever returns a bare query string", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockRetriever := retrievermocks.NewMockCypherRetriever(ctrl)

		mockRetriever.EXPECT().
			Search(gomock.Any(), "who knows Alice?").
			Return("MATCH (a:Person {name: 'Alice'})<-[:KNOWS]-(p) RETURN p.name", nil)
		mockDB.EXPECT().
			GetQueryType(gomock.Any(), "MATCH (a:Person {name: 'Alice'})<-[:KNOWS]-(p) RETURN p.name", gomock.Nil()).
			Return(neo4j.StatementTypeReadOnly, nil)
		mockDB.EXPECT().
			ExecuteReadQuery(gomock.Any(), "MATCH (a:Person {name: 'Alice'})<-[:KNOWS]-(p) RETURN p.name", gomock.Nil()).
			Return([]*neo4j.Record{}, nil)
		mockDB.EXPECT().
			RecordsToMaps(gomock.Any()).
			Return([]map[string]any{{"p.name": "Bob"}})

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  mockRetriever,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest("who knows Alice?"))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		text, ok := result.Content[0].(mcp.TextContent)
		if !ok {
			t.Fatal("Expected text content")
		}
		var payload tools.Text2CypherResult
		if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
			t.Fatalf("Response is not valid JSON: %v", err)
		}
		if payload.Input != "who knows Alice?" {
			t.Errorf("Unexpected input echoed back: %q", payload.Input)
		}
		if !strings.HasPrefix(payload.Cypher, "MATCH") {
			t.Errorf("Unexpected cypher in response: %q", payload.Cypher)
		}
	})

	t.Run("retriever returns a mapping payload", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockRetriever := retrievermocks.NewMockCypherRetriever(ctrl)

		mockRetriever.EXPECT().
			Search(gomock.Any(), "count people").
			Return(map[string]any{
				"cypher": "MATCH (p:Person) RETURN count(p)",
				"model":  "gemini-2.0-flash",
			}, nil)
		mockDB.EXPECT().
			GetQueryType(gomock.Any(), "MATCH (p:Person) RETURN count(p)", gomock.Nil()).
			Return(neo4j.StatementTypeReadOnly, nil)
		mockDB.EXPECT().
			ExecuteReadQuery(gomock.Any(), "MATCH (p:Person) RETURN count(p)", gomock.Nil()).
			Return([]*neo4j.Record{}, nil)
		mockDB.EXPECT().
			RecordsToMaps(gomock.Any()).
			Return([]map[string]any{{"count(p)": int64(3)}})

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  mockRetriever,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest("count people"))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		text := result.Content[0].(mcp.TextContent)
		var payload tools.Text2CypherResult
		if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
			t.Fatalf("Response is not valid JSON: %v", err)
		}
		if payload.Metadata["model"] != "gemini-2.0-flash" {
			t.Errorf("Expected unclaimed mapping keys to surface as metadata, got: %v", payload.Metadata)
		}
	})

	t.Run("cypher recovered from metadata fallback", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockRetriever := retrievermocks.NewMockCypherRetriever(ctrl)

		// No recognized query text key; "cypher" only appears nested in
		// the leftover metadata of a sequence payload.
		mockRetriever.EXPECT().
			Search(gomock.Any(), "list movies").
			Return([]any{
				[]any{},
				map[string]any{"cypher": "MATCH (m:Movie) RETURN m.title"},
			}, nil)
		mockDB.EXPECT().
			GetQueryType(gomock.Any(), "MATCH (m:Movie) RETURN m.title", gomock.Nil()).
			Return(neo4j.StatementTypeReadOnly, nil)
		mockDB.EXPECT().
			ExecuteReadQuery(gomock.Any(), "MATCH (m:Movie) RETURN m.title", gomock.Nil()).
			Return([]*neo4j.Record{}, nil)
		mockDB.EXPECT().
			RecordsToMaps(gomock.Any()).
			Return([]map[string]any{})

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  mockRetriever,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest("list movies"))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Error("Expected success result when cypher is recoverable from metadata")
		}
	})

	t.Run("no cypher generated", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockRetriever := retrievermocks.NewMockCypherRetriever(ctrl)

		mockRetriever.EXPECT().
			Search(gomock.Any(), "nonsense").
			Return(map[string]any{"notes": "could not translate"}, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  mockRetriever,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest("nonsense"))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result when no cypher was generated")
		}
	})

	t.Run("retriever failure", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockRetriever := retrievermocks.NewMockCypherRetriever(ctrl)

		mockRetriever.EXPECT().
			Search(gomock.Any(), "broken").
			Return(nil, errors.New("model unavailable"))

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  mockRetriever,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest("broken"))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for retriever failure")
		}
	})

	t.Run("generated cypher is not read-only", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockRetriever := retrievermocks.NewMockCypherRetriever(ctrl)

		mockRetriever.EXPECT().
			Search(gomock.Any(), "delete everything").
			Return("MATCH (n) DETACH DELETE n", nil)
		mockDB.EXPECT().
			GetQueryType(gomock.Any(), "MATCH (n) DETACH DELETE n", gomock.Nil()).
			Return(neo4j.StatementTypeWriteOnly, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  mockRetriever,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest("delete everything"))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for write query")
		}
	})

	t.Run("empty question", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockRetriever := retrievermocks.NewMockCypherRetriever(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  mockRetriever,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest(""))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for empty question")
		}
	})

	t.Run("nil cypher retriever", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  nil,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest("anything"))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil retriever")
		}
	})

	t.Run("query execution failure", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockRetriever := retrievermocks.NewMockCypherRetriever(ctrl)

		mockRetriever.EXPECT().
			Search(gomock.Any(), "who knows Alice?").
			Return("MATCH (n) RETURN n", nil)
		mockDB.EXPECT().
			GetQueryType(gomock.Any(), "MATCH (n) RETURN n", gomock.Nil()).
			Return(neo4j.StatementTypeReadOnly, nil)
		mockDB.EXPECT().
			ExecuteReadQuery(gomock.Any(), "MATCH (n) RETURN n", gomock.Nil()).
			Return(nil, errors.New("connection reset"))

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			CypherRetriever:  mockRetriever,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := tools.Text2CypherHandler(deps)
		result, err := handler(context.Background(), text2cypherRequest("who knows Alice?"))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for execution failure")
		}
	})
}
