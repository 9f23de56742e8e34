package admission

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alertops/alert-mgmt/pkg/types"
	"github.com/matryer/is"
)

func testService(repo *AlertRepositoryMock) (*service, *time.Time) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newService(repo, DefaultConfig(), func() time.Time { return now })
	return svc, &now
}

func newRepoMock() *AlertRepositoryMock {
	return &AlertRepositoryMock{
		UpsertAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return nil
		},
		AppendSuppressedFunc: func(ctx context.Context, alert types.Alert, reason string) error {
			return nil
		},
		AppendStormFunc: func(ctx context.Context, alert types.Alert, reason string) error {
			return nil
		},
	}
}

func alertFor(host string, n int) types.Alert {
	return types.Alert{
		Identifier: fmt.Sprintf("%s-%d", host, n),
		Host:       host,
		Payload:    map[string]any{"identifier": fmt.Sprintf("%s-%d", host, n), "host": host},
	}
}

func TestIngestStoresAdmittedAlerts(t *testing.T) {
	is := is.New(t)
	repo := newRepoMock()
	svc, _ := testService(repo)

	d, err := svc.Ingest(context.Background(), alertFor("host-1", 1))
	is.NoErr(err)
	is.Equal(d.Outcome, types.OutcomeStored)
	is.Equal(1, len(repo.UpsertAlertCalls()))
}

func TestIngestRequiresIdentifierAndHost(t *testing.T) {
	is := is.New(t)
	repo := newRepoMock()
	svc, _ := testService(repo)

	_, err := svc.Ingest(context.Background(), types.Alert{Host: "host-1"})
	is.True(err != nil)

	_, err = svc.Ingest(context.Background(), types.Alert{Identifier: "a-1"})
	is.True(err != nil)

	is.Equal(0, len(repo.UpsertAlertCalls()))
}

func TestIngestRoutesTrippingAlertToSuppressedStore(t *testing.T) {
	is := is.New(t)
	repo := newRepoMock()
	svc, now := testService(repo)

	for i := 1; i <= 3; i++ {
		d, err := svc.Ingest(context.Background(), alertFor("host-1", i))
		is.NoErr(err)
		is.Equal(d.Outcome, types.OutcomeStored)
		*now = now.Add(2 * time.Second)
	}

	d, err := svc.Ingest(context.Background(), alertFor("host-1", 4))
	is.NoErr(err)
	is.Equal(d.Outcome, types.OutcomeSuppressed)
	is.Equal(d.Reason, ReasonThresholdReached)

	is.Equal(3, len(repo.UpsertAlertCalls()))
	is.Equal(1, len(repo.AppendSuppressedCalls()))
	is.Equal(repo.AppendSuppressedCalls()[0].Reason, ReasonThresholdReached)
}

func TestIngestRoutesStormAlertsToStormStore(t *testing.T) {
	is := is.New(t)
	repo := newRepoMock()
	svc, _ := testService(repo)

	for i := 1; i <= 5; i++ {
		_, err := svc.Ingest(context.Background(), alertFor(fmt.Sprintf("host-%d", i), 1))
		is.NoErr(err)
	}

	d, err := svc.Ingest(context.Background(), alertFor("host-6", 1))
	is.NoErr(err)
	is.Equal(d.Outcome, types.OutcomeStorm)
	is.Equal(1, len(repo.AppendStormCalls()))
}

func TestIngestStampsReceivedAt(t *testing.T) {
	is := is.New(t)
	repo := newRepoMock()
	svc, now := testService(repo)

	_, err := svc.Ingest(context.Background(), alertFor("host-1", 1))
	is.NoErr(err)
	is.Equal(repo.UpsertAlertCalls()[0].Alert.ReceivedAt, *now)
}

func TestIngestReturnsStorageFailuresToTheCaller(t *testing.T) {
	is := is.New(t)

	storeErr := errors.New("disk full")
	repo := newRepoMock()
	repo.UpsertAlertFunc = func(ctx context.Context, alert types.Alert) error {
		return storeErr
	}
	svc, _ := testService(repo)

	d, err := svc.Ingest(context.Background(), alertFor("host-1", 1))
	is.True(errors.Is(err, storeErr))
	is.Equal(d.Outcome, types.OutcomeStored)
}
