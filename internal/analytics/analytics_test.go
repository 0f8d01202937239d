package analytics_test

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo4j-labs/graphrag-mcp/internal/analytics"
	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
)

type MockHTTPClient struct {
	PostFunc func(url, contentType string, body io.Reader) (*http.Response, error)
}

func (m *MockHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	if m.PostFunc != nil {
		return m.PostFunc(url, contentType, body)
	}
	return nil, nil
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Body:       io.NopCloser(strings.NewReader("1")),
	}
}

func TestTelemetryService(t *testing.T) {
	log := logger.New("debug", "text", os.Stderr)

	t.Run("EmitEvent sends event when enabled", func(t *testing.T) {
		called := false
		mockClient := &MockHTTPClient{
			PostFunc: func(url, contentType string, body io.Reader) (*http.Response, error) {
				called = true
				assert.Equal(t, "http://localhost/track", url)
				assert.Equal(t, "application/json; charset=utf-8", contentType)

				var events []analytics.TrackEvent
				payload, _ := io.ReadAll(body)
				require.NoError(t, json.Unmarshal(payload, &events))
				require.Len(t, events, 1)
				assert.Equal(t, "GRAPHRAG_MCP_STARTUP", events[0].Event)

				return okResponse(), nil
			},
		}

		service, err := analytics.NewTelemetryService("test_token", "http://localhost", mockClient, log)
		require.NoError(t, err)
		service.Enable()

		service.EmitEvent(service.NewStartupEvent())
		assert.True(t, called)
	})

	t.Run("service starts disabled", func(t *testing.T) {
		mockClient := &MockHTTPClient{
			PostFunc: func(url, contentType string, body io.Reader) (*http.Response, error) {
				t.Error("No event should be delivered while disabled")
				return okResponse(), nil
			},
		}

		service, err := analytics.NewTelemetryService("test_token", "http://localhost", mockClient, log)
		require.NoError(t, err)

		service.EmitEvent(service.NewStartupEvent())
	})

	t.Run("Disable stops delivery after Enable", func(t *testing.T) {
		calls := 0
		mockClient := &MockHTTPClient{
			PostFunc: func(url, contentType string, body io.Reader) (*http.Response, error) {
				calls++
				return okResponse(), nil
			},
		}

		service, err := analytics.NewTelemetryService("test_token", "http://localhost", mockClient, log)
		require.NoError(t, err)

		service.Enable()
		service.EmitEvent(service.NewStartupEvent())
		service.Disable()
		service.EmitEvent(service.NewStartupEvent())

		assert.Equal(t, 1, calls)
	})

	t.Run("nil logger is rejected", func(t *testing.T) {
		_, err := analytics.NewTelemetryService("test_token", "http://localhost", nil, nil)
		assert.Error(t, err)
	})
}

func TestTrackEvents(t *testing.T) {
	log := logger.New("debug", "text", os.Stderr)

	service, err := analytics.NewTelemetryService("test_token", "http://localhost", &MockHTTPClient{}, log)
	require.NoError(t, err)

	t.Run("tool event carries the tool name", func(t *testing.T) {
		event := service.NewToolsEvent("read-cypher")
		assert.Equal(t, "GRAPHRAG_MCP_TOOL_USED", event.Event)

		payload, err := json.Marshal(event)
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"tool_used":"read-cypher"`)
	})

	t.Run("env report flags Aura URIs", func(t *testing.T) {
		event := service.NewEnvReportEvent("neo4j+s://abc123.databases.neo4j.io")
		assert.Equal(t, "GRAPHRAG_MCP_ENV_REPORT", event.Event)

		payload, err := json.Marshal(event)
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"aura":true`)
	})

	t.Run("env report for self-hosted URIs", func(t *testing.T) {
		event := service.NewEnvReportEvent("bolt://localhost:7687")

		payload, err := json.Marshal(event)
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"aura":false`)
	})
}
