package letta

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// MessagesService sends user messages to agents and returns the response
// batch produced by the agent's turn.
type MessagesService struct {
	client *Client
}

type createMessagesRequest struct {
	Messages []MessageCreate `json:"messages"`
}

// Create sends messages to the agent and waits for the full turn to finish.
// The returned batch holds every message the turn produced (reasoning, tool
// calls, the assistant reply) plus the server's usage statistics.
func (s *MessagesService) Create(ctx context.Context, agentID string, messages []MessageCreate) (*MessagesResponse, error) {
	var resp MessagesResponse
	path := "/v1/agents/" + url.PathEscape(agentID) + "/messages"
	req := createMessagesRequest{Messages: messages}
	if err := s.client.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("send messages to agent %s: %w", agentID, err)
	}
	return &resp, nil
}

// CreateText is a convenience wrapper sending a single user message.
func (s *MessagesService) CreateText(ctx context.Context, agentID, content string) (*MessagesResponse, error) {
	return s.Create(ctx, agentID, []MessageCreate{{Role: RoleUser, Content: content}})
}
