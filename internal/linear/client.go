/*-------------------------------------------------------------------------
 *
 * Linear MCP - Linear API Client
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

// Package linear is the GraphQL client for the Linear API. It issues
// plain HTTP POST requests with typed result structs; every query is
// sent exactly once, and failures are returned to the caller unmodified.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the public Linear GraphQL endpoint.
	DefaultEndpoint = "https://api.linear.app/graphql"

	// DefaultTimeout bounds a single API round trip.
	DefaultTimeout = 30 * time.Second
)

// ErrNotFound reports that the backend affirmatively answered "no such
// record" for an identified entity.
var ErrNotFound = errors.New("record not found")

// APIError is a transport or query failure reported by the Linear API.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("linear API error (status %d): %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("linear API error (status %d)", e.StatusCode)
}

// Client talks to the Linear GraphQL API. A single Client is shared by
// all request handlers; it holds no per-request state.
type Client struct {
	endpoint   string
	apiKey     string
	pageSize   int
	httpClient *http.Client
}

// NewClient creates a Linear API client. An empty endpoint selects
// DefaultEndpoint and a zero timeout selects DefaultTimeout.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetPageSize overrides the page size used when a fetch does not name
// one. Non-positive values leave the built-in default in place.
func (c *Client) SetPageSize(n int) {
	if n > 0 {
		c.pageSize = n
	}
}

// IsConfigured returns whether the client has an API key to send.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlErrorEntry struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage     `json:"data"`
	Errors []graphqlErrorEntry `json:"errors,omitempty"`
}

// execute posts one GraphQL query and decodes the data payload into out.
// GraphQL-level errors and non-200 statuses both surface as *APIError.
func (c *Client) execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	reqBody := graphqlRequest{
		Query:     query,
		Variables: variables,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	// Personal API keys go in Authorization as-is, without a Bearer prefix.
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to close HTTP response body: %v\n", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope graphqlResponse
		if err := json.Unmarshal(body, &envelope); err == nil {
			for _, e := range envelope.Errors {
				apiErr.Messages = append(apiErr.Messages, e.Message)
			}
		}
		if len(apiErr.Messages) == 0 {
			apiErr.Messages = []string{strings.TrimSpace(string(body))}
		}
		return apiErr
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		for _, e := range envelope.Errors {
			apiErr.Messages = append(apiErr.Messages, e.Message)
		}
		return apiErr
	}

	if out != nil {
		if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
			return fmt.Errorf("empty data payload in response")
		}
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode data payload: %w", err)
		}
	}

	return nil
}
