// Package client provides a thin HTTP client for the evacuation
// trigger endpoints, intended for operator tooling that fires a
// broadcast over the network instead of in-process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a trigger call. Failures surface immediately;
// there is no retry.
const DefaultTimeout = 5 * time.Second

// EvacuationClient triggers broadcasts against a running service.
type EvacuationClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*EvacuationClient)

// WithTimeout overrides the default trigger timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *EvacuationClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *EvacuationClient) {
		c.httpClient = httpClient
	}
}

// New builds a client for the given base URL and bearer token.
func New(baseURL, token string, opts ...Option) *EvacuationClient {
	c := &EvacuationClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TriggerResult mirrors the trigger endpoint response.
type TriggerResult struct {
	Status     string `json:"status"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Priority   string `json:"priority"`
	Recipients int    `json:"recipients"`
}

// Trigger fires the evacuation broadcast for a category. level may be
// empty to accept the server-side default priority.
func (c *EvacuationClient) Trigger(ctx context.Context, category, level string) (*TriggerResult, error) {
	payload := map[string]string{}
	if level != "" {
		payload["level"] = level
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/evacuation/%s", c.baseURL, category)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trigger %s: %w", category, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("trigger %s: unexpected status %d: %s", category, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var envelope struct {
		Data TriggerResult `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("trigger %s: decode response: %w", category, err)
	}
	return &envelope.Data, nil
}
