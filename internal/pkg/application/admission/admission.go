package admission

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alertops/alert-mgmt/pkg/types"
)

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository
type AlertRepository interface {
	UpsertAlert(ctx context.Context, alert types.Alert) error
	AppendSuppressed(ctx context.Context, alert types.Alert, reason string) error
	AppendStorm(ctx context.Context, alert types.Alert, reason string) error
}

//go:generate moq -rm -out admission_mock.go . Admission
type Admission interface {
	Ingest(ctx context.Context, alert types.Alert) (Decision, error)
}

type service struct {
	mu      sync.Mutex
	policy  *Policy
	storage AlertRepository
	now     func() time.Time
}

func New(storage AlertRepository, config *Config) Admission {
	return newService(storage, config, func() time.Time { return time.Now().UTC() })
}

func newService(storage AlertRepository, config *Config, now func() time.Time) *service {
	if config == nil {
		config = DefaultConfig()
	}

	return &service{
		policy:  NewPolicy(config),
		storage: storage,
		now:     now,
	}
}

// Ingest classifies one alert and writes it to the store matching the
// decision. Classification and store write happen under a single lock
// so that concurrent alerts for the same host are serialized.
//
// A store failure is returned to the caller together with the decision
// that was made. The counters have already seen the event by then,
// which is correct: the alert did occur, only its persistence failed.
func (s *service) Ingest(ctx context.Context, alert types.Alert) (Decision, error) {
	if alert.Identifier == "" {
		return Decision{}, fmt.Errorf("no identifier is set on alert")
	}
	if alert.Host == "" {
		return Decision{}, fmt.Errorf("no host is set on alert")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if alert.ReceivedAt.IsZero() {
		alert.ReceivedAt = now
	}

	decision := s.policy.Evaluate(alert.Host, now)

	var err error

	switch decision.Outcome {
	case types.OutcomeSuppressed:
		err = s.storage.AppendSuppressed(ctx, alert, decision.Reason)
	case types.OutcomeStorm:
		err = s.storage.AppendStorm(ctx, alert, decision.Reason)
	default:
		err = s.storage.UpsertAlert(ctx, alert)
	}

	if err != nil {
		return decision, fmt.Errorf("could not store alert: %w", err)
	}

	return decision, nil
}
