package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alertops/alert-mgmt/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertAlert stores an admitted alert. A repeated identifier replaces
// the previous submission instead of adding a second row.
func (s *Storage) UpsertAlert(ctx context.Context, alert types.Alert) error {
	payload, err := json.Marshal(alert.Payload)
	if err != nil {
		return fmt.Errorf("could not marshal alert payload: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO alerts (identifier, host, payload, source_ip, received_at)
		VALUES (@identifier, @host, @payload, @source_ip, @received_at)
		ON CONFLICT (identifier) DO UPDATE SET
			host = EXCLUDED.host,
			payload = EXCLUDED.payload,
			source_ip = EXCLUDED.source_ip,
			received_at = EXCLUDED.received_at,
			modified_on = CURRENT_TIMESTAMP;
	`, pgx.NamedArgs{
		"identifier":  alert.Identifier,
		"host":        alert.Host,
		"payload":     string(payload),
		"source_ip":   alert.SourceIP,
		"received_at": alert.ReceivedAt,
	})
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}

	return nil
}

func (s *Storage) AppendSuppressed(ctx context.Context, alert types.Alert, reason string) error {
	return s.append(ctx, "suppressed_alerts", alert, reason)
}

func (s *Storage) AppendStorm(ctx context.Context, alert types.Alert, reason string) error {
	return s.append(ctx, "storm_alerts", alert, reason)
}

func (s *Storage) append(ctx context.Context, table string, alert types.Alert, reason string) error {
	payload, err := json.Marshal(alert.Payload)
	if err != nil {
		return fmt.Errorf("could not marshal alert payload: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, identifier, host, reason, payload, received_at)
		VALUES (@id, @identifier, @host, @reason, @payload, @received_at);
	`, table)

	_, err = s.pool.Exec(ctx, query, pgx.NamedArgs{
		"id":          uuid.NewString(),
		"identifier":  alert.Identifier,
		"host":        alert.Host,
		"reason":      reason,
		"payload":     string(payload),
		"received_at": alert.ReceivedAt,
	})
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}

	return nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	condition.severityExpr = "payload->>'severity'"

	var host, sourceIP string
	var payload []byte
	var receivedAt time.Time

	query := fmt.Sprintf(`
		SELECT host, payload, source_ip, received_at
		FROM alerts
		WHERE %s;
	`, condition.Where())

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).Scan(&host, &payload, &sourceIP, &receivedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	alert := types.Alert{
		Identifier: condition.Identifier,
		Host:       host,
		SourceIP:   sourceIP,
		ReceivedAt: receivedAt,
	}

	err = json.Unmarshal(payload, &alert.Payload)
	if err != nil {
		return types.Alert{}, fmt.Errorf("could not unmarshal alert payload: %w", err)
	}

	return alert, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	// severity is not a column on this table, it lives in the payload
	condition.severityExpr = "payload->>'severity'"

	query := fmt.Sprintf(`
		SELECT identifier, host, payload, source_ip, received_at, count(*) OVER () AS total
		FROM alerts
		WHERE %s
		ORDER BY %s %s
		OFFSET %d LIMIT %d;
	`, condition.Where(), condition.SortBy(), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Alert]{}, errors.Join(ErrQueryRow, err)
	}

	var identifier, host, sourceIP string
	var payload []byte
	var receivedAt time.Time
	var total int64

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{&identifier, &host, &payload, &sourceIP, &receivedAt, &total}, func() error {
		alert := types.Alert{
			Identifier: identifier,
			Host:       host,
			SourceIP:   sourceIP,
			ReceivedAt: receivedAt,
		}

		err := json.Unmarshal(payload, &alert.Payload)
		if err != nil {
			return err
		}

		alerts = append(alerts, alert)
		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
