package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alertops/alert-mgmt/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func TestUpsertAlertReplacesOnSameIdentifier(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	identifier := uuid.NewString()

	first := types.Alert{
		Identifier: identifier,
		Host:       "host-1",
		Payload:    map[string]any{"identifier": identifier, "host": "host-1", "severity": "WARNING"},
		ReceivedAt: time.Now().UTC(),
	}
	err := s.UpsertAlert(ctx, first)
	is.NoErr(err)

	second := first
	second.Payload = map[string]any{"identifier": identifier, "host": "host-1", "severity": "CRITICAL"}
	err = s.UpsertAlert(ctx, second)
	is.NoErr(err)

	stored, err := s.GetAlert(ctx, WithIdentifier(identifier))
	is.NoErr(err)
	is.Equal(stored.Payload["severity"], "CRITICAL")

	c, err := s.QueryAlerts(ctx, WithIdentifier(identifier))
	is.NoErr(err)
	is.Equal(c.TotalCount, uint64(1))
}

func TestGetUnknownAlertReturnsNotFound(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, err := s.GetAlert(ctx, WithIdentifier("no-such-alert"))
	is.Equal(err, ErrAlertNotFound)
}

func TestAppendSuppressedDoesNotDeduplicate(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	alert := types.Alert{
		Identifier: uuid.NewString(),
		Host:       "host-2",
		Payload:    map[string]any{"host": "host-2"},
		ReceivedAt: time.Now().UTC(),
	}

	err := s.AppendSuppressed(ctx, alert, "Host suppressed")
	is.NoErr(err)
	err = s.AppendSuppressed(ctx, alert, "Host suppressed")
	is.NoErr(err)

	var count int64
	err = s.pool.QueryRow(ctx, "SELECT count(*) FROM suppressed_alerts WHERE identifier = $1", alert.Identifier).Scan(&count)
	is.NoErr(err)
	is.Equal(count, int64(2))
}

func TestQueryAlertsFiltersOnPayloadSeverity(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	host := uuid.NewString()

	warning := uuid.NewString()
	err := s.UpsertAlert(ctx, types.Alert{
		Identifier: warning,
		Host:       host,
		Payload:    map[string]any{"identifier": warning, "host": host, "severity": "WARNING"},
		ReceivedAt: time.Now().UTC(),
	})
	is.NoErr(err)

	critical := uuid.NewString()
	err = s.UpsertAlert(ctx, types.Alert{
		Identifier: critical,
		Host:       host,
		Payload:    map[string]any{"identifier": critical, "host": host, "severity": "CRITICAL"},
		ReceivedAt: time.Now().UTC(),
	})
	is.NoErr(err)

	c, err := s.QueryAlerts(ctx, WithHost(host), WithSeverity("CRITICAL"))
	is.NoErr(err)
	is.Equal(c.Count, uint64(1))
	is.Equal(c.Data[0].Identifier, critical)
}

func TestQueryProcessedAlertsFiltersOnSeverity(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	host := uuid.NewString()

	for _, severity := range []string{"WARNING", "ERROR"} {
		err := s.AddProcessedAlert(ctx, types.ProcessedAlert{
			Source:    "rest",
			Host:      host,
			Message:   "cpu pressure",
			Severity:  severity,
			Team:      "infra",
			Owner:     "alice",
			Timestamp: time.Now().UTC(),
		})
		is.NoErr(err)
	}

	c, err := s.QueryProcessedAlerts(ctx, WithHost(host), WithSeverity("ERROR"))
	is.NoErr(err)
	is.Equal(c.Count, uint64(1))
	is.Equal(c.Data[0].Severity, "ERROR")
}

func TestAddAndQueryProcessedAlerts(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	host := uuid.NewString()

	err := s.AddProcessedAlert(ctx, types.ProcessedAlert{
		Source:      "grafana",
		Host:        host,
		Message:     "disk almost full",
		Severity:    "ERROR",
		Team:        "infra",
		Owner:       "alice",
		Maintenance: false,
		Timestamp:   time.Now().UTC(),
	})
	is.NoErr(err)

	c, err := s.QueryProcessedAlerts(ctx, WithHost(host))
	is.NoErr(err)
	is.Equal(c.Count, uint64(1))
	is.Equal(c.Data[0].Team, "infra")
}
