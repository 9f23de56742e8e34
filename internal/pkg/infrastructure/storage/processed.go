package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alertops/alert-mgmt/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddProcessedAlert(ctx context.Context, alert types.ProcessedAlert) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO processed_alerts (id, source, host, message, severity, team, owner, maintenance, timestamp)
		VALUES (@id, @source, @host, @message, @severity, @team, @owner, @maintenance, @timestamp);
	`, pgx.NamedArgs{
		"id":          uuid.NewString(),
		"source":      alert.Source,
		"host":        alert.Host,
		"message":     alert.Message,
		"severity":    alert.Severity,
		"team":        alert.Team,
		"owner":       alert.Owner,
		"maintenance": alert.Maintenance,
		"timestamp":   alert.Timestamp,
	})
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}

	return nil
}

func (s *Storage) QueryProcessedAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ProcessedAlert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "timestamp"
		condition.sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT source, host, message, severity, team, owner, maintenance, timestamp, count(*) OVER () AS total
		FROM processed_alerts
		WHERE %s
		ORDER BY %s %s
		OFFSET %d LIMIT %d;
	`, condition.Where(), condition.SortBy(), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.ProcessedAlert]{}, errors.Join(ErrQueryRow, err)
	}

	var source, host, message, severity, team, owner string
	var maintenance bool
	var timestamp time.Time
	var total int64

	alerts := make([]types.ProcessedAlert, 0)

	_, err = pgx.ForEachRow(rows, []any{&source, &host, &message, &severity, &team, &owner, &maintenance, &timestamp, &total}, func() error {
		alerts = append(alerts, types.ProcessedAlert{
			Source:      source,
			Host:        host,
			Message:     message,
			Severity:    severity,
			Team:        team,
			Owner:       owner,
			Maintenance: maintenance,
			Timestamp:   timestamp,
		})
		return nil
	})
	if err != nil {
		return types.Collection[types.ProcessedAlert]{}, err
	}

	return types.Collection[types.ProcessedAlert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
