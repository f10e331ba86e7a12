// Package transcript records what a writing assistant did: every operation's
// prompt and the text the agent returned, in order.
//
// Available stores:
//   - [MemoryStore] keeps transcripts in memory (useful for testing).
//   - [FileStore] persists transcripts as JSON files on disk.
package transcript

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Step is one operation in a writing session: the rendered prompt that was
// sent and the assistant text that came back.
type Step struct {
	Op       string    `json:"op"`
	Prompt   string    `json:"prompt"`
	Response string    `json:"response"`
	At       time.Time `json:"at"`
}

// Transcript is the ordered record of one writing session against one agent.
type Transcript struct {
	ID        string    `json:"id"`
	Project   string    `json:"project,omitempty"`
	AgentID   string    `json:"agent_id,omitempty"`
	Steps     []Step    `json:"steps"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates an empty transcript with a fresh ID.
func New() *Transcript {
	now := time.Now()
	return &Transcript{
		ID:        "tr-" + uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds a step and bumps UpdatedAt.
func (t *Transcript) Append(op, prompt, response string) {
	now := time.Now()
	t.Steps = append(t.Steps, Step{Op: op, Prompt: prompt, Response: response, At: now})
	t.UpdatedAt = now
}

// Clone returns a deep copy with a new ID.
func (t *Transcript) Clone() *Transcript {
	steps := make([]Step, len(t.Steps))
	copy(steps, t.Steps)
	now := time.Now()
	return &Transcript{
		ID:        "tr-" + uuid.NewString(),
		Project:   t.Project,
		AgentID:   t.AgentID,
		Steps:     steps,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store defines the interface for transcript persistence backends.
type Store interface {
	Save(ctx context.Context, t *Transcript) error
	Load(ctx context.Context, id string) (*Transcript, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Transcript, error)
}
