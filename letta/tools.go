package letta

import (
	"context"
	"fmt"
	"net/http"
)

// ToolsService registers custom tools the server can hand to agents.
type ToolsService struct {
	client *Client
}

// Upsert creates the tool or updates it in place when a tool with the same
// name already exists.
func (s *ToolsService) Upsert(ctx context.Context, req CreateToolRequest) (*Tool, error) {
	var tool Tool
	if err := s.client.do(ctx, http.MethodPut, "/v1/tools/", req, &tool); err != nil {
		return nil, fmt.Errorf("upsert tool %q: %w", req.Name, err)
	}
	return &tool, nil
}

// List returns all registered tools.
func (s *ToolsService) List(ctx context.Context) ([]Tool, error) {
	var tools []Tool
	if err := s.client.do(ctx, http.MethodGet, "/v1/tools/", nil, &tools); err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return tools, nil
}
