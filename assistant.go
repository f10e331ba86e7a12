package scribe

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mudler/xlog"
	"github.com/shopspring/decimal"

	"github.com/scribekit/scribe/internal/pricing"
	"github.com/scribekit/scribe/letta"
	"github.com/scribekit/scribe/transcript"
)

// completionNotice stands in for the assistant text when the server's batch
// carries no content at all.
const completionNotice = "writing complete"

// Assistant drives a remote writing agent. All state of consequence lives on
// the server; the assistant holds the client, the agent handle, and local
// bookkeeping (usage, transcript).
type Assistant struct {
	client  *letta.Client
	opts    assistantOptions
	tracker *pricing.Tracker

	mu    sync.Mutex
	agent *letta.Agent
	trans *transcript.Transcript
}

// New creates an Assistant from the given options. The agent itself is not
// created until CreateAgent is called.
func New(opts ...Option) *Assistant {
	resolved := resolveOptions(opts)

	c := resolved.client
	if c == nil {
		var lopts []letta.Option
		if resolved.baseURL != "" {
			lopts = append(lopts, letta.WithBaseURL(resolved.baseURL))
		}
		if resolved.token != "" {
			lopts = append(lopts, letta.WithToken(resolved.token))
		}
		lopts = append(lopts, resolved.clientOpts...)
		c = letta.New(lopts...)
	}

	return &Assistant{
		client:  c,
		opts:    resolved,
		tracker: pricing.NewTracker(resolved.pricing),
		trans:   transcript.New(),
	}
}

// CreateAgent creates the writing agent on the server with the persona,
// writing_skills, and current_project memory blocks. An empty name gets a
// generated one; an empty style falls back to the configured default.
func (a *Assistant) CreateAgent(ctx context.Context, name, style string) (*letta.Agent, error) {
	if a.opts.presetErr != nil {
		return nil, a.opts.presetErr
	}
	if style == "" {
		style = a.opts.style
	}
	if name == "" {
		name = DefaultAgentName + "-" + uuid.NewString()[:8]
	}

	persona, err := personaValue(style)
	if err != nil {
		return nil, err
	}

	// RegisterTool may grow the tool list concurrently; snapshot it.
	a.mu.Lock()
	tools := make([]string, len(a.opts.tools))
	copy(tools, a.opts.tools)
	a.mu.Unlock()

	agent, err := a.client.Agents.Create(ctx, letta.CreateAgentRequest{
		Name: name,
		MemoryBlocks: []letta.CreateBlock{
			{Label: BlockPersona, Description: personaDescription, Value: persona},
			{Label: BlockWritingSkills, Description: skillsDescription, Value: writingSkillsValue},
			{Label: BlockProject, Description: projectDescription, Value: "writing project"},
		},
		Model:     a.opts.model,
		Embedding: a.opts.embedding,
		Tools:     tools,
	})
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.agent = agent
	a.trans.AgentID = agent.ID
	a.mu.Unlock()

	xlog.Info("writing agent created", "name", agent.Name, "id", agent.ID, "model", a.opts.model)
	return agent, nil
}

// Agent returns the created agent handle, or nil before CreateAgent.
func (a *Assistant) Agent() *letta.Agent {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.agent
}

// Client returns the underlying letta client.
func (a *Assistant) Client() *letta.Client {
	return a.client
}

// Transcript returns the session transcript recorded so far.
func (a *Assistant) Transcript() *transcript.Transcript {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.trans
}

// Usage is a snapshot of accumulated token usage and estimated cost.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
	StepCount        int64
	Cost             decimal.Decimal
}

// Usage returns the accumulated usage across all operations.
func (a *Assistant) Usage() Usage {
	u := a.tracker.TotalUsage()
	return Usage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
		StepCount:        u.StepCount,
		Cost:             a.tracker.TotalCost(),
	}
}

// Close persists the transcript if a store is configured.
func (a *Assistant) Close() error {
	if a.opts.store == nil {
		return nil
	}
	a.mu.Lock()
	trans := a.trans
	a.mu.Unlock()
	return a.opts.store.Save(context.Background(), trans)
}

// agentID returns the created agent's ID or ErrAgentNotCreated.
func (a *Assistant) agentID() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.agent == nil {
		return "", ErrAgentNotCreated
	}
	return a.agent.ID, nil
}

// send forwards one rendered prompt to the agent, records usage, and appends
// the exchange to the transcript.
func (a *Assistant) send(ctx context.Context, op, prompt string) (string, error) {
	id, err := a.agentID()
	if err != nil {
		return "", err
	}

	resp, err := a.client.Messages.CreateText(ctx, id, prompt)
	if err != nil {
		return "", err
	}

	a.tracker.Record(a.opts.model, pricing.Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
		StepCount:        resp.Usage.StepCount,
	})

	text, _ := resp.LastAssistantText()
	if text == "" {
		text = completionNotice
	}

	a.mu.Lock()
	a.trans.Append(op, prompt, text)
	a.mu.Unlock()

	return text, nil
}
