// Package api is a thin client for the storefront backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kraitsura/storefront/pkg/model"
)

// DefaultTimeout bounds every request.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is read for the message.
const maxErrorBody = 64 * 1024

// Client calls the backend's JSON endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient returns a client for baseURL. A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that sends a bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Message)
}

// ChatTurn is one entry of a chat history.
type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// ChatPart is a text fragment of a chat turn.
type ChatPart struct {
	Text string `json:"text"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history,omitempty"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// Products fetches the catalog.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Chat sends a message to the chat relay and returns the reply text.
func (c *Client) Chat(ctx context.Context, message string, history []ChatTurn) (string, error) {
	var resp ChatResponse
	req := ChatRequest{Message: message, History: history}
	if err := c.do(ctx, http.MethodPost, "/api/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(data, &payload)
		return &StatusError{Code: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
