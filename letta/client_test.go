package letta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Construction ---

func TestNew_DefaultsToLocalServer(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestNew_TokenTargetsCloud(t *testing.T) {
	c := New(WithToken("sk-let-test"))
	assert.Equal(t, CloudBaseURL, c.BaseURL())
}

func TestNew_ExplicitBaseURLWinsOverToken(t *testing.T) {
	c := New(WithToken("sk-let-test"), WithBaseURL("http://10.0.0.5:8283/"))
	assert.Equal(t, "http://10.0.0.5:8283", c.BaseURL())
}

func TestNew_ServicesWired(t *testing.T) {
	c := New()
	require.NotNil(t, c.Agents)
	require.NotNil(t, c.Messages)
	require.NotNil(t, c.Blocks)
	require.NotNil(t, c.Tools)
	require.NotNil(t, c.Sources)
}

// --- Headers ---

func TestDo_SendsAuthAndContentHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"id":"agent-1","name":"writer"}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithToken("sk-let-test"))
	_, err := c.Agents.Create(context.Background(), CreateAgentRequest{Name: "writer"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-let-test", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, defaultUserAgent, got.Get("User-Agent"))
}

// --- Retry behavior ---

func TestDo_RetriesOn500ThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithMaxRetries(2))
	agents, err := c.Agents.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, agents)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDo_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"detail":"bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithMaxRetries(5))
	_, err := c.Agents.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "bad request", apiErr.Message)
}

func TestDo_ContextCancellationStopsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := New(WithBaseURL(srv.URL), WithMaxRetries(20))
	_, err := c.Agents.List(ctx)
	require.Error(t, err)
}

// --- Error decoding ---

func TestDecodeError_DetailEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"agent not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Agents.Retrieve(context.Background(), "agent-missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "agent not found")
}

func TestDecodeError_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":"auth_failed","message":"invalid token"}}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Agents.List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "auth_failed", apiErr.Code)
	assert.Equal(t, "invalid token", apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestDecodeError_OpaqueBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream fell over"))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithMaxRetries(1))
	_, err := c.Agents.List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream fell over", apiErr.Message)
}
