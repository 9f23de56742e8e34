package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/alertops/alert-mgmt/internal/pkg/application/admission"
	"github.com/alertops/alert-mgmt/internal/pkg/infrastructure/storage"
	"github.com/alertops/alert-mgmt/internal/pkg/presentation/api/auth"
	"github.com/alertops/alert-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("alert-mgmt/api")

type Config struct {
	APIKey       string
	APIKeyHeader string
	Sources      []string
}

func DefaultSources() []string {
	return []string{"rest", "grafana", "grafanav2"}
}

// AlertStore is the read side of the API, backed by the alert storage.
type AlertStore interface {
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	QueryProcessedAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ProcessedAlert], error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, adm admission.Admission, messenger messaging.MsgContext, store AlertStore, cfg Config) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator := auth.NewAPIKeyAuthenticator(ctx, log, cfg.APIKeyHeader, cfg.APIKey)

	sources := cfg.Sources
	if len(sources) == 0 {
		sources = DefaultSources()
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/alerts", func(r chi.Router) {
				r.Post("/", receiveAlertHandler(log, adm))
				r.Get("/", queryAlertsHandler(log, store))
				r.Get("/processed", queryProcessedAlertsHandler(log, store))
				r.Post("/{source}", intakeAlertHandler(log, messenger, sources))
			})
		})
	})

	return router, nil
}

type alertResponse struct {
	Status     string `json:"status"`
	Identifier string `json:"identifier,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func receiveAlertHandler(log *slog.Logger, adm admission.Admission) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "receive-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		payload := map[string]any{}
		err = json.Unmarshal(body, &payload)
		if err != nil {
			requestLogger.Debug("invalid json payload", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		identifier, _ := payload["identifier"].(string)
		host, _ := payload["host"].(string)

		if identifier == "" || host == "" {
			requestLogger.Debug("missing identifier or host in payload")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		now := time.Now().UTC()
		sourceIP := sourceIPFromRequest(r)

		payload["_metadata"] = types.Metadata{
			ReceivedAt: now,
			SourceIP:   sourceIP,
		}

		decision, err := adm.Ingest(ctx, types.Alert{
			Identifier: identifier,
			Host:       host,
			Payload:    payload,
			ReceivedAt: now,
			SourceIP:   sourceIP,
		})
		if err != nil {
			requestLogger.Error("unable to ingest alert", "identifier", identifier, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		response := alertResponse{Status: decision.Outcome, Reason: decision.Reason}

		statusCode := http.StatusOK
		if decision.Outcome == types.OutcomeStorm {
			statusCode = http.StatusTooManyRequests
		}
		if decision.Outcome == types.OutcomeStored {
			response.Identifier = identifier
		}

		b, err := json.Marshal(response)
		if err != nil {
			requestLogger.Error("unable to marshal response", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(b)
	}
}

func intakeAlertHandler(log *slog.Logger, messenger messaging.MsgContext, sources []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "intake-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		source := chi.URLParam(r, "source")
		if !slices.Contains(sources, source) {
			requestLogger.Debug("unknown alert source", "source", source)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		payload := map[string]any{}
		err = json.Unmarshal(body, &payload)
		if err != nil {
			requestLogger.Debug("invalid json payload", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		payload["source"] = source

		b, err := json.Marshal(payload)
		if err != nil {
			requestLogger.Error("unable to marshal payload", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = messenger.PublishOnTopic(ctx, &types.AlertSubmitted{Source: source, Payload: b})
		if err != nil {
			requestLogger.Error("unable to publish alert", "source", source, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"status":"accepted"}`))
	}
}

func queryAlertsHandler(log *slog.Logger, store AlertStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := store.QueryAlerts(ctx, conditionsFromQuery(r)...)
		if err != nil {
			requestLogger.Error("unable to query alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, requestLogger, collection)
	}
}

func queryProcessedAlertsHandler(log *slog.Logger, store AlertStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-processed-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := store.QueryProcessedAlerts(ctx, conditionsFromQuery(r)...)
		if err != nil {
			requestLogger.Error("unable to query processed alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeCollection(w, requestLogger, collection)
	}
}

func conditionsFromQuery(r *http.Request) []storage.ConditionFunc {
	conditions := make([]storage.ConditionFunc, 0)

	if host := r.URL.Query().Get("host"); host != "" {
		conditions = append(conditions, storage.WithHost(host))
	}

	if severity := r.URL.Query().Get("severity"); severity != "" {
		conditions = append(conditions, storage.WithSeverity(severity))
	}

	if offset := r.URL.Query().Get("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			conditions = append(conditions, storage.WithOffset(n))
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			conditions = append(conditions, storage.WithLimit(n))
		}
	}

	return conditions
}

type collectionResponse[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}

func writeCollection[T any](w http.ResponseWriter, log *slog.Logger, c types.Collection[T]) {
	b, err := json.Marshal(collectionResponse[T]{
		Data:       c.Data,
		Count:      c.Count,
		Offset:     c.Offset,
		Limit:      c.Limit,
		TotalCount: c.TotalCount,
	})
	if err != nil {
		log.Error("unable to marshal response", "err", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func sourceIPFromRequest(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
