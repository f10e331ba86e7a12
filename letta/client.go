// Package letta is a minimal REST client for a Letta-compatible agent server.
//
// The server owns the hard parts: agent memory, model routing, embedding
// selection, and tool execution. This package only moves JSON over HTTP:
// create an agent with memory blocks, send it messages, read or overwrite a
// block by label, register tools, and attach document sources.
package letta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mudler/xlog"
)

// Defaults for client construction.
const (
	// DefaultBaseURL targets a locally running server (`letta server`).
	DefaultBaseURL = "http://localhost:8283"

	// CloudBaseURL is used when only a token is configured.
	CloudBaseURL = "https://api.letta.com"

	// DefaultTimeout bounds each request; agent turns can be slow when the
	// server chains tool calls.
	DefaultTimeout = 120 * time.Second

	// DefaultMaxRetries caps retries for 429/5xx responses.
	DefaultMaxRetries = 3
)

const defaultUserAgent = "scribe-go"

// Client talks to one agent server. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries uint64
	userAgent  string

	// Service groups, mirroring the server's resource layout.
	Agents   *AgentsService
	Messages *MessagesService
	Blocks   *BlocksService
	Tools    *ToolsService
	Sources  *SourcesService
}

// New creates a Client from the given options. With no options it targets a
// local server at DefaultBaseURL; with only WithToken it targets the hosted
// service.
func New(opts ...Option) *Client {
	resolved := resolveOptions(opts)

	c := &Client{
		baseURL:    strings.TrimRight(resolved.baseURL, "/"),
		token:      resolved.token,
		httpClient: resolved.httpClient,
		maxRetries: resolved.maxRetries,
		userAgent:  resolved.userAgent,
	}
	c.Agents = &AgentsService{client: c}
	c.Messages = &MessagesService{client: c}
	c.Blocks = &BlocksService{client: c}
	c.Tools = &ToolsService{client: c}
	c.Sources = &SourcesService{client: c}
	return c
}

// BaseURL returns the resolved server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one JSON request and decodes the response into out (unless out is
// nil). Transient failures (429, 5xx, transport errors) are retried with
// exponential backoff; everything else surfaces immediately as *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("letta: marshal request: %w", err)
		}
	}

	op := func() error {
		return c.doOnce(ctx, method, path, body, "application/json", out)
	}
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	return backoff.Retry(op, bo)
}

// doOnce performs a single HTTP round trip. Non-retryable failures are
// wrapped in backoff.Permanent so the retry loop stops immediately.
func (c *Client) doOnce(ctx context.Context, method, path string, body []byte, contentType string, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("letta: build request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	xlog.Debug("letta request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return fmt.Errorf("letta: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		if retryable(resp.StatusCode) {
			xlog.Warn("letta transient failure", "status", resp.StatusCode, "path", path)
			return apiErr
		}
		return backoff.Permanent(apiErr)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return backoff.Permanent(fmt.Errorf("letta: decode response: %w", err))
	}
	return nil
}

// decodeError builds an *APIError from an error response body. The server
// reports either {"detail": "..."} or {"error": {"code": ..., "message": ...}};
// an undecodable body still yields a status-only error.
func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var envelope struct {
		Detail string `json:"detail"`
		Error  struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		switch {
		case envelope.Error.Message != "":
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		case envelope.Detail != "":
			apiErr.Message = envelope.Detail
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
