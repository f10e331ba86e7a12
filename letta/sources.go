package letta

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
)

// SourcesService manages document sources: server-side collections of files
// embedded into archival memory and attachable to agents.
type SourcesService struct {
	client *Client
}

// Create makes a new empty source.
func (s *SourcesService) Create(ctx context.Context, req CreateSourceRequest) (*Source, error) {
	var source Source
	if err := s.client.do(ctx, http.MethodPost, "/v1/sources/", req, &source); err != nil {
		return nil, fmt.Errorf("create source %q: %w", req.Name, err)
	}
	return &source, nil
}

// Upload streams one file into the source. The server embeds it
// asynchronously; the returned job reports ingestion status.
func (s *SourcesService) Upload(ctx context.Context, sourceID, filename string, r io.Reader) (*UploadJob, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("upload to source %s: %w", sourceID, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("upload to source %s: %w", sourceID, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload to source %s: %w", sourceID, err)
	}

	var job UploadJob
	path := "/v1/sources/" + url.PathEscape(sourceID) + "/upload"
	op := func() error {
		return s.client.doOnce(ctx, http.MethodPost, path, buf.Bytes(), mw.FormDataContentType(), &job)
	}
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.client.maxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, fmt.Errorf("upload %q to source %s: %w", filename, sourceID, err)
	}
	return &job, nil
}

// Attach links the source to an agent so its documents become retrievable
// from the agent's archival memory.
func (s *SourcesService) Attach(ctx context.Context, agentID, sourceID string) error {
	path := "/v1/agents/" + url.PathEscape(agentID) + "/sources/attach/" + url.PathEscape(sourceID)
	if err := s.client.do(ctx, http.MethodPatch, path, nil, nil); err != nil {
		return fmt.Errorf("attach source %s to agent %s: %w", sourceID, agentID, err)
	}
	return nil
}
