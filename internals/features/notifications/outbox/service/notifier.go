// file: internals/features/notifications/outbox/service/notifier.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DispatchResult is the delivery summary returned by the notification API.
type DispatchResult struct {
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
}

// Notifier sends one notification to a set of recipients over one channel.
// A recipient is either a concrete address or an audience scope token
// ("scope:series-subscribers:<id>", "scope:temple-community:<id>") that the
// notification API expands into addresses on its side.
// Implementations must be safe for concurrent use.
type Notifier interface {
	Send(ctx context.Context, channel string, recipients []string, subject, body string) (DispatchResult, error)
}

// HTTPNotifier posts dispatch requests to the external notification API.
type HTTPNotifier struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewHTTPNotifier(baseURL, apiKey string) *HTTPNotifier {
	return &HTTPNotifier{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	Channel    string   `json:"channel"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject,omitempty"`
	Body       string   `json:"body"`
}

func (n *HTTPNotifier) Send(ctx context.Context, channel string, recipients []string, subject, body string) (DispatchResult, error) {
	var result DispatchResult
	if n.BaseURL == "" {
		return result, fmt.Errorf("notifier: NOTIFY_API_URL is not configured")
	}

	payload, err := json.Marshal(sendRequest{
		Channel:    channel,
		Recipients: recipients,
		Subject:    subject,
		Body:       body,
	})
	if err != nil {
		return result, fmt.Errorf("notifier: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.BaseURL+"/v1/send", bytes.NewReader(payload))
	if err != nil {
		return result, fmt.Errorf("notifier: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.APIKey)
	}

	client := n.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return result, fmt.Errorf("notifier: send: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, fmt.Errorf("notifier: API returned %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		// tolerate APIs that answer 200 with a non-JSON body
		result = DispatchResult{SuccessCount: len(recipients)}
	}
	return result, nil
}
