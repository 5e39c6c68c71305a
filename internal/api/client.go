// Package api is the HTTP client for the Cinevo REST API. Each call is a
// single request with no retry, timeout, or caching policy; responses use
// the envelope {success, message, results, pageInfo}.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// Client issues requests against a fixed base URL, optionally with a bearer
// token. Derive an authenticated client via WithToken.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string
}

// New creates an unauthenticated Cinevo API client.
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// WithToken returns a copy of the client that sends
// "Authorization: Bearer <token>" on every request.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// envelope is the parsed response envelope.
type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Results  json.RawMessage `json:"results"`
	PageInfo *model.PageInfo `json:"pageInfo"`

	// TransactionID rides next to the envelope fields on payment creation.
	TransactionID string `json:"transactionId"`
}

// do performs an HTTP request and returns the parsed envelope. A transport
// failure comes back as a wrapped error; success:false comes back as *Error
// alongside the envelope so callers can still read the message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("HTTP request", "method", method, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("HTTP response", "status", resp.StatusCode, "bytes", len(respBody))

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}

	if !env.Success {
		return &env, &Error{Status: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

// results unmarshals the envelope's results field into out.
func results(env *envelope, out any) error {
	if len(env.Results) == 0 {
		return fmt.Errorf("response missing results")
	}
	if err := json.Unmarshal(env.Results, out); err != nil {
		return fmt.Errorf("parse results: %w", err)
	}
	return nil
}
