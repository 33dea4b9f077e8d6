// file: internals/features/notifications/outbox/service/notifier_test.go
package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPNotifierSend(t *testing.T) {
	var gotReq sendRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/send", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(DispatchResult{SuccessCount: 2, FailureCount: 1})
	}))
	defer srv.Close()

	n := NewHTTPNotifier(srv.URL, "secret-key")
	result, err := n.Send(context.Background(), "email",
		[]string{"a@temple.org", "b@temple.org", "c@temple.org"},
		"Aarti delayed", "Morning Aarti moved to 07:00")

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "email", gotReq.Channel)
	assert.Len(t, gotReq.Recipients, 3)
	assert.Equal(t, "Aarti delayed", gotReq.Subject)
}

func TestHTTPNotifierNonJSONSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	n := NewHTTPNotifier(srv.URL, "")
	result, err := n.Send(context.Background(), "sms", []string{"+911234567890"}, "", "test")

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestHTTPNotifierErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := NewHTTPNotifier(srv.URL, "")
	_, err := n.Send(context.Background(), "push", []string{"device-1"}, "", "test")
	assert.Error(t, err)
}

func TestHTTPNotifierUnconfigured(t *testing.T) {
	n := NewHTTPNotifier("", "")
	_, err := n.Send(context.Background(), "email", []string{"a@temple.org"}, "", "test")
	assert.Error(t, err)
}
