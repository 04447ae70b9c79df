// Package snipeit is a thin client for the Snipe-IT v1 REST API. It exposes
// resource-scoped sub-clients (Assets, Consumables) and classifies API faults
// into a small error taxonomy (NotFoundError, AuthenticationError,
// ValidationError, Error).
package snipeit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

const apiBase = "/api/v1"

// Client talks to one Snipe-IT instance.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client

	assets      *AssetsService
	consumables *ConsumablesService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New returns a client for the given base URL and API token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.assets = &AssetsService{client: c}
	c.consumables = &ConsumablesService{client: c}
	return c
}

// Assets returns the hardware sub-client.
func (c *Client) Assets() *AssetsService { return c.assets }

// Consumables returns the consumables sub-client.
func (c *Client) Consumables() *ConsumablesService { return c.consumables }

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

// apiResponse probes for Snipe-IT's mutation envelope. GET endpoints return
// the entity directly; mutations wrap it as {status, messages, payload}.
type apiResponse struct {
	Status   string          `json:"status"`
	Messages json.RawMessage `json:"messages"`
	Payload  json.RawMessage `json:"payload"`
}

// page is the shape of list endpoints.
type page[T any] struct {
	Total int `json:"total"`
	Rows  []T `json:"rows"`
}

// do performs one API request and decodes the response into out (when
// non-nil), unwrapping the mutation envelope if present.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(buf)
	}

	u := c.baseURL + apiBase + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: fmt.Sprintf("read response: %v", err)}
	}

	if err := statusError(resp.StatusCode, raw); err != nil {
		return err
	}

	var probe apiResponse
	if err := json.Unmarshal(raw, &probe); err == nil && probe.Status == "error" {
		return envelopeError(probe.Messages)
	}

	if out == nil {
		return nil
	}
	if probe.Payload != nil && string(probe.Payload) != "null" {
		raw = probe.Payload
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// download performs a GET that returns a document body rather than JSON and
// returns the raw bytes.
func (c *Client) download(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiBase+path, reqBody)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("read response: %v", err)}
	}
	if err := statusError(resp.StatusCode, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// statusError maps a non-2xx HTTP status into the error taxonomy.
func statusError(code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}
	msg := messageFromBody(body)
	switch code {
	case http.StatusNotFound:
		return &NotFoundError{Message: msg}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthenticationError{Message: msg}
	case http.StatusUnprocessableEntity:
		return &ValidationError{Message: msg}
	default:
		return &Error{StatusCode: code, Message: msg}
	}
}

// envelopeError maps a 200-with-error mutation envelope into the taxonomy.
// Snipe-IT reports missing entities and payload rejections this way.
func envelopeError(messages json.RawMessage) error {
	msg := messageFromBody(messages)
	if strings.Contains(strings.ToLower(msg), "not found") || strings.Contains(strings.ToLower(msg), "does not exist") {
		return &NotFoundError{Message: msg}
	}
	return &ValidationError{Message: msg}
}

// messageFromBody extracts a human-readable message from an API body. The
// messages field may be a plain string or a field-name -> []string map.
func messageFromBody(body []byte) string {
	if len(body) == 0 {
		return "no response body"
	}

	var envelope struct {
		Messages json.RawMessage `json:"messages"`
		Error    string          `json:"error"`
	}
	raw := json.RawMessage(body)
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Messages != nil {
			raw = envelope.Messages
		}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		parts := make([]string, 0, len(fields))
		for name, msgs := range fields {
			parts = append(parts, name+": "+strings.Join(msgs, "; "))
		}
		if len(parts) > 0 {
			sort.Strings(parts)
			return strings.Join(parts, "; ")
		}
	}

	return string(raw)
}
