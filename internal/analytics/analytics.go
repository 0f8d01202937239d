// Package analytics handles anonymous usage telemetry for the server.
// Events are delivered to a MixPanel-compatible /track endpoint and the
// whole package is a no-op unless telemetry is enabled in config.
package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neo4j-labs/graphrag-mcp/internal/logger"
)

// TelemetryService is the concrete implementation of Service.
type TelemetryService struct {
	token       string
	endpoint    string
	distinctID  string
	startupTime int64
	disabled    bool
	httpClient  HTTPClient
	log         *logger.Service
}

// defaultHTTPClient delivers events with net/http.
type defaultHTTPClient struct{}

func (defaultHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return http.Post(url, contentType, body)
}

// NewTelemetryService creates a telemetry service. The service starts
// disabled; callers enable it once config confirms telemetry is on.
func NewTelemetryService(token, endpoint string, httpClient HTTPClient, log *logger.Service) (*TelemetryService, error) {
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	distinctID, err := uuid.NewV6()
	if err != nil {
		return nil, fmt.Errorf("error while generating distinct id for telemetry: %w", err)
	}
	if httpClient == nil {
		httpClient = defaultHTTPClient{}
	}

	return &TelemetryService{
		token:       token,
		endpoint:    endpoint,
		distinctID:  distinctID.String(),
		startupTime: time.Now().Unix(),
		disabled:    true,
		httpClient:  httpClient,
		log:         log,
	}, nil
}

// Enable turns event delivery on.
func (s *TelemetryService) Enable() {
	s.disabled = false
}

// Disable turns event delivery off.
func (s *TelemetryService) Disable() {
	s.disabled = true
}

// EmitEvent delivers a single event. Failures are logged and swallowed;
// telemetry must never affect tool execution.
func (s *TelemetryService) EmitEvent(event TrackEvent) {
	if s.disabled {
		return
	}

	if err := s.sendTrackEvents([]TrackEvent{event}); err != nil {
		s.log.Debug("telemetry delivery failed", "event", event.Event, "error", err)
	}
}

func (s *TelemetryService) sendTrackEvents(events []TrackEvent) error {
	b, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("error while marshalling track events: %w", err)
	}

	url := strings.TrimRight(s.endpoint, "/") + "/track"
	resp, err := s.httpClient.Post(url, "application/json; charset=utf-8", bytes.NewBuffer(b))
	if err != nil {
		return fmt.Errorf("error while emitting telemetry: %w", err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telemetry endpoint returned status %s", resp.Status)
	}

	return nil
}
