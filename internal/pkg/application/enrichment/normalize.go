package enrichment

import (
	"errors"
	"fmt"

	"github.com/alertops/alert-mgmt/pkg/types"
)

var ErrUnknownSource = errors.New("unknown alert source")

const (
	SourceRest      string = "rest"
	SourceGrafana   string = "grafana"
	SourceGrafanaV2 string = "grafanav2"
)

// sentinels used when a grafanav2 webhook lacks an expected field
const (
	HostNotFound      string = "host_not_found"
	MessageNotDefined string = "message_not_defined"
	StatusNotDefined  string = "status_not_defined"
)

// MapperFunc maps one raw source payload onto the canonical alert
// shape. Mappers only fill source, host, message and severity; the
// enrichment service owns the rest.
type MapperFunc func(raw map[string]any) types.ProcessedAlert

// Registry holds one mapper per known source tag. Adding support for a
// new alert source is registering a new mapper, nothing else.
type Registry map[string]MapperFunc

func DefaultRegistry() Registry {
	return Registry{
		SourceRest:      mapRest,
		SourceGrafana:   mapGrafana,
		SourceGrafanaV2: mapGrafanaV2,
	}
}

// SourceOf returns the payload's source tag. Grafana v2 webhooks do not
// tag themselves, so payloads without a tag are treated as grafanav2.
func SourceOf(raw map[string]any) string {
	if s, ok := raw["source"].(string); ok && s != "" {
		return s
	}
	return SourceGrafanaV2
}

func (r Registry) Normalize(raw map[string]any) (types.ProcessedAlert, error) {
	source := SourceOf(raw)

	mapper, ok := r[source]
	if !ok {
		return types.ProcessedAlert{}, fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}

	return mapper(raw), nil
}

func mapRest(raw map[string]any) types.ProcessedAlert {
	return types.ProcessedAlert{
		Source:   SourceRest,
		Host:     str(raw, "host", ""),
		Message:  str(raw, "message", ""),
		Severity: str(raw, "severity", ""),
	}
}

func mapGrafana(raw map[string]any) types.ProcessedAlert {
	return types.ProcessedAlert{
		Source:   SourceGrafana,
		Host:     str(raw, "host", ""),
		Message:  str(raw, "description", ""),
		Severity: str(raw, "level", ""),
	}
}

func mapGrafanaV2(raw map[string]any) types.ProcessedAlert {
	host := HostNotFound
	if labels, ok := raw["commonLabels"].(map[string]any); ok {
		host = str(labels, "instance", HostNotFound)
	}

	return types.ProcessedAlert{
		Source:   SourceGrafanaV2,
		Host:     host,
		Message:  str(raw, "message", MessageNotDefined),
		Severity: str(raw, "status", StatusNotDefined),
	}
}

func str(raw map[string]any, key, fallback string) string {
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
