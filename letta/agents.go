package letta

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// AgentsService manages agent lifecycles on the server.
type AgentsService struct {
	client *Client
}

// Create instantiates a new agent with the given name, memory blocks, model,
// embedding, and tool names. The server assigns the ID.
func (s *AgentsService) Create(ctx context.Context, req CreateAgentRequest) (*Agent, error) {
	var agent Agent
	if err := s.client.do(ctx, http.MethodPost, "/v1/agents/", req, &agent); err != nil {
		return nil, fmt.Errorf("create agent %q: %w", req.Name, err)
	}
	return &agent, nil
}

// Retrieve fetches an agent's state by ID.
func (s *AgentsService) Retrieve(ctx context.Context, agentID string) (*Agent, error) {
	var agent Agent
	path := "/v1/agents/" + url.PathEscape(agentID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &agent); err != nil {
		return nil, fmt.Errorf("retrieve agent %s: %w", agentID, err)
	}
	return &agent, nil
}

// List returns all agents visible to the caller.
func (s *AgentsService) List(ctx context.Context) ([]Agent, error) {
	var agents []Agent
	if err := s.client.do(ctx, http.MethodGet, "/v1/agents/", nil, &agents); err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

// Delete removes an agent and all of its server-side state.
func (s *AgentsService) Delete(ctx context.Context, agentID string) error {
	path := "/v1/agents/" + url.PathEscape(agentID)
	if err := s.client.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete agent %s: %w", agentID, err)
	}
	return nil
}
