package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alertops/alert-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-mgmt/enrichment")

const unknown string = "unknown"

//go:generate moq -rm -out processedrepository_mock.go . ProcessedAlertRepository
type ProcessedAlertRepository interface {
	AddProcessedAlert(ctx context.Context, alert types.ProcessedAlert) error
}

type Enrichment interface {
	RegisterTopicMessageHandler(ctx context.Context) error
	Process(ctx context.Context, raw map[string]any) (types.ProcessedAlert, error)
}

type service struct {
	storage   ProcessedAlertRepository
	messenger messaging.MsgContext
	registry  Registry
	hosts     HostRegistry
	now       func() time.Time
}

func New(storage ProcessedAlertRepository, messenger messaging.MsgContext, registry Registry, hosts HostRegistry) Enrichment {
	return newService(storage, messenger, registry, hosts, func() time.Time { return time.Now().UTC() })
}

func newService(storage ProcessedAlertRepository, messenger messaging.MsgContext, registry Registry, hosts HostRegistry, now func() time.Time) *service {
	return &service{
		storage:   storage,
		messenger: messenger,
		registry:  registry,
		hosts:     hosts,
		now:       now,
	}
}

func (s *service) RegisterTopicMessageHandler(ctx context.Context) error {
	return s.messenger.RegisterTopicMessageHandler("alerts.#", NewAlertSubmittedHandler(s))
}

// Process normalizes one raw alert into the canonical shape, joins in
// ownership and maintenance state for the host and persists the result.
// The timestamp on the stored record is processing time, not the time
// the alert originated.
func (s *service) Process(ctx context.Context, raw map[string]any) (types.ProcessedAlert, error) {
	alert, err := s.registry.Normalize(raw)
	if err != nil {
		return types.ProcessedAlert{}, err
	}

	now := s.now()

	if info, ok := s.hosts.TeamOwner(ctx, alert.Host); ok {
		alert.Team = info.Team
		alert.Owner = info.Owner
	} else {
		alert.Team = unknown
		alert.Owner = unknown
	}

	if w, ok := s.hosts.Maintenance(ctx, alert.Host); ok {
		alert.Maintenance = w.Contains(now)
	}

	alert.Timestamp = now

	err = s.storage.AddProcessedAlert(ctx, alert)
	if err != nil {
		return alert, fmt.Errorf("could not store processed alert: %w", err)
	}

	return alert, nil
}

// NewAlertSubmittedHandler consumes raw alerts off the bus, one message
// at a time. A message that cannot be processed is logged and skipped
// so that it never halts processing of subsequent messages.
func NewAlertSubmittedHandler(svc Enrichment) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "process-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		raw := map[string]any{}

		err = json.Unmarshal(itm.Body(), &raw)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		alert, err := svc.Process(ctx, raw)
		if err != nil {
			if errors.Is(err, ErrUnknownSource) {
				log.Error("could not normalize alert", "body", string(itm.Body()), "err", err.Error())
				return
			}
			log.Error("could not process alert", "host", alert.Host, "err", err.Error())
			return
		}

		log.Debug("processed alert", "source", alert.Source, "host", alert.Host)
	}
}
