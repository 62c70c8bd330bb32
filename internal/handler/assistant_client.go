package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"
)

// AssistantPoster posts JSON payloads to the assistant reply service.
type AssistantPoster interface {
	PostJSON(ctx context.Context, path string, payload any, requestID string) (map[string]any, error)
}

// AssistantClient talks to the assistant reply service over HTTP.
type AssistantClient struct {
	client  *http.Client
	baseURL string
}

// NewAssistantClient builds a client for baseURL. Without an explicit http
// client it tries an ID token client for the service audience and falls back
// to a plain client when no Google credentials are available.
func NewAssistantClient(client *http.Client, baseURL string) (*AssistantClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("assistant base url must not be empty")
	}
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), baseURL)
		if err != nil {
			client = &http.Client{Timeout: 10 * time.Second}
		} else {
			client = idc
		}
	}
	return &AssistantClient{client: client, baseURL: baseURL}, nil
}

// PostJSON posts the payload and returns the "data" object of the reply.
func (c *AssistantClient) PostJSON(ctx context.Context, path string, payload any, requestID string) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("assistant error: %s", extractAssistantError(resp.Body))
	}

	var assistantResp struct {
		Data  map[string]any `json:"data"`
		Error string         `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&assistantResp); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode assistant response: %w", err)
	}
	if assistantResp.Error != "" {
		return nil, fmt.Errorf("assistant error: %s", assistantResp.Error)
	}
	return assistantResp.Data, nil
}

func extractAssistantError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "assistant returned an error"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}

var _ AssistantPoster = (*AssistantClient)(nil)
