package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
)

const DefaultHeaderName string = "X-API-Key"

// NewAPIKeyAuthenticator returns a middleware that rejects any request
// whose api key header does not match the shared secret. The header
// name is configurable; an empty name falls back to X-API-Key.
func NewAPIKeyAuthenticator(ctx context.Context, log *slog.Logger, headerName, apiKey string) func(http.Handler) http.Handler {
	if headerName == "" {
		headerName = DefaultHeaderName
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(headerName)

			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				log.Debug("request rejected", "reason", "invalid api key", "path", r.URL.Path)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
