package letta

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// BlocksService reads and overwrites an agent's core memory blocks by label.
type BlocksService struct {
	client *Client
}

func blockPath(agentID, label string) string {
	return "/v1/agents/" + url.PathEscape(agentID) + "/core-memory/blocks/" + url.PathEscape(label)
}

// Retrieve fetches the block with the given label.
func (s *BlocksService) Retrieve(ctx context.Context, agentID, label string) (*Block, error) {
	var block Block
	if err := s.client.do(ctx, http.MethodGet, blockPath(agentID, label), nil, &block); err != nil {
		return nil, fmt.Errorf("retrieve block %q: %w", label, err)
	}
	return &block, nil
}

// Modify overwrites the block's value wholesale. There is no merge or
// version check; the last write wins.
func (s *BlocksService) Modify(ctx context.Context, agentID, label string, req ModifyBlockRequest) (*Block, error) {
	var block Block
	if err := s.client.do(ctx, http.MethodPatch, blockPath(agentID, label), req, &block); err != nil {
		return nil, fmt.Errorf("modify block %q: %w", label, err)
	}
	return &block, nil
}
