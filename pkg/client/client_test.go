package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestSubmitAlert(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/api/v0/alerts")
		is.Equal(r.Header.Get("X-API-Key"), "secret")

		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"status":"stored","identifier":"a1"}`))
	}))
	defer server.Close()

	c := New(server.URL, "secret")

	result, err := c.SubmitAlert(context.Background(), map[string]any{"identifier": "a1", "host": "h1"})
	is.NoErr(err)
	is.Equal(result.Status, "stored")
	is.Equal(result.Identifier, "a1")
}

func TestSubmitAlertStorm(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"status":"storm","reason":"Rate limit exceeded"}`))
	}))
	defer server.Close()

	c := New(server.URL, "secret")

	result, err := c.SubmitAlert(context.Background(), map[string]any{"identifier": "a1", "host": "h1"})
	is.NoErr(err)
	is.Equal(result.Status, "storm")
	is.Equal(result.Reason, "Rate limit exceeded")
}

func TestSubmitAlertBadAuthIsAnError(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New(server.URL, "wrong")

	_, err := c.SubmitAlert(context.Background(), map[string]any{"identifier": "a1", "host": "h1"})
	is.True(err != nil)
}
