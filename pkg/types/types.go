package types

import (
	"time"
)

// Alert is a raw alert submission. The payload is kept as-is so that
// source specific fields survive untouched until normalization.
type Alert struct {
	Identifier string         `json:"identifier"`
	Host       string         `json:"host"`
	Payload    map[string]any `json:"payload"`

	ReceivedAt time.Time `json:"receivedAt"`
	SourceIP   string    `json:"sourceIP,omitempty"`
}

// Source returns the source tag of the alert, or an empty string if the
// payload carries none.
func (a Alert) Source() string {
	if s, ok := a.Payload["source"].(string); ok {
		return s
	}
	return ""
}

type Metadata struct {
	ReceivedAt time.Time `json:"received_at"`
	SourceIP   string    `json:"source_ip,omitempty"`
}

const (
	OutcomeStored     string = "stored"
	OutcomeSuppressed string = "suppressed"
	OutcomeStorm      string = "storm"
)

// ProcessedAlert is the canonical shape every source is normalized into,
// enriched with ownership and maintenance information.
type ProcessedAlert struct {
	Source      string    `json:"source"`
	Host        string    `json:"host"`
	Message     string    `json:"message"`
	Severity    string    `json:"severity"`
	Team        string    `json:"team"`
	Owner       string    `json:"owner"`
	Maintenance bool      `json:"maintenance"`
	Timestamp   time.Time `json:"timestamp"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
