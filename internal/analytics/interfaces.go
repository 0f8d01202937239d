package analytics

import (
	"io"
	"net/http"
)

//go:generate mockgen -destination=mocks/mock_analytics.go -package=mocks github.com/neo4j-labs/graphrag-mcp/internal/analytics Service,HTTPClient

// Service abstracts telemetry event creation and emission.
type Service interface {
	Disable()
	Enable()
	EmitEvent(event TrackEvent)
	NewStartupEvent() TrackEvent
	NewToolsEvent(toolUsed string) TrackEvent
	NewEnvReportEvent(dbURI string) TrackEvent
}

// HTTPClient is the transport used to deliver events; a plain interface
// so tests can intercept delivery.
type HTTPClient interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
}
