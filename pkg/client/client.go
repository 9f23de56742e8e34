package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-mgmt-client")

// Result is the admission decision the endpoint took for a submission.
// Status is one of stored, suppressed or storm.
type Result struct {
	Status     string `json:"status"`
	Identifier string `json:"identifier,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type AlertClient interface {
	SubmitAlert(ctx context.Context, payload map[string]any) (Result, error)
}

type alertClient struct {
	url    string
	apiKey string
}

func New(url, apiKey string) AlertClient {
	return &alertClient{
		url:    url,
		apiKey: apiKey,
	}
}

func (c *alertClient) SubmitAlert(ctx context.Context, payload map[string]any) (Result, error) {
	var err error
	ctx, span := tracer.Start(ctx, "submit-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(payload)
	if err != nil {
		err = fmt.Errorf("failed to marshal alert payload: %w", err)
		return Result{}, err
	}

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/v0/alerts", bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return Result{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to submit alert: %w", err)
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
		err = fmt.Errorf("alert submission failed with status code %d", resp.StatusCode)
		return Result{}, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return Result{}, err
	}

	result := Result{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return Result{}, err
	}

	return result, nil
}
