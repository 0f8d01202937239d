package analytics

import (
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
)

const eventNamePrefix = "GRAPHRAG_MCP"

// baseProperties are the base properties attached to a track event.
// DistinctID distinguishes executions rather than users; InsertID is
// used by the collector to deduplicate messages.
type baseProperties struct {
	Token      string `json:"token"`
	Time       int64  `json:"time"`
	DistinctID string `json:"distinct_id"`
	InsertID   string `json:"$insert_id"`
	Uptime     int64  `json:"uptime"`
}

type envReportProperties struct {
	baseProperties
	OS     string `json:"os"`
	OSArch string `json:"os_arch"`
	Aura   bool   `json:"aura"`
}

type toolsProperties struct {
	baseProperties
	ToolUsed string `json:"tool_used"`
}

// TrackEvent is one telemetry event in the collector's wire format.
type TrackEvent struct {
	Event      string `json:"event"`
	Properties any    `json:"properties"`
}

// NewStartupEvent reports a server start.
func (s *TelemetryService) NewStartupEvent() TrackEvent {
	return TrackEvent{
		Event:      strings.Join([]string{eventNamePrefix, "STARTUP"}, "_"),
		Properties: s.baseProperties(),
	}
}

// NewToolsEvent reports one tool invocation.
func (s *TelemetryService) NewToolsEvent(toolUsed string) TrackEvent {
	return TrackEvent{
		Event: strings.Join([]string{eventNamePrefix, "TOOL_USED"}, "_"),
		Properties: toolsProperties{
			baseProperties: s.baseProperties(),
			ToolUsed:       toolUsed,
		},
	}
}

// NewEnvReportEvent reports the runtime environment.
func (s *TelemetryService) NewEnvReportEvent(dbURI string) TrackEvent {
	return TrackEvent{
		Event: strings.Join([]string{eventNamePrefix, "ENV_REPORT"}, "_"),
		Properties: envReportProperties{
			baseProperties: s.baseProperties(),
			OS:             runtime.GOOS,
			OSArch:         runtime.GOARCH,
			Aura:           strings.Contains(dbURI, "databases.neo4j.io"),
		},
	}
}

func (s *TelemetryService) baseProperties() baseProperties {
	return baseProperties{
		Token:      s.token,
		DistinctID: s.distinctID,
		Time:       time.Now().UnixMilli(),
		InsertID:   newInsertID(),
		Uptime:     time.Now().Unix() - s.startupTime,
	}
}

func newInsertID() string {
	insertID, err := uuid.NewV6()
	if err != nil {
		return ""
	}
	return insertID.String()
}
