package scribe

import (
	"context"

	"github.com/scribekit/scribe/internal/schema"
	"github.com/scribekit/scribe/letta"
)

// RegisterTool registers a custom tool on the server with a JSON schema
// derived from the Go struct type T, and enables it for agents the assistant
// creates afterwards.
func RegisterTool[T any](ctx context.Context, a *Assistant, name, description string) (*letta.Tool, error) {
	tool, err := a.client.Tools.Upsert(ctx, letta.CreateToolRequest{
		Name:        name,
		Description: description,
		JSONSchema:  schema.Generate[T](),
	})
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.opts.tools = append(a.opts.tools, name)
	a.mu.Unlock()

	return tool, nil
}
