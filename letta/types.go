package letta

import "time"

// CreateBlock describes a memory block to attach when creating an agent.
// Blocks are included in the agent's context window and can be overwritten
// later via Blocks.Modify.
type CreateBlock struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Value       string `json:"value"`
	Limit       int    `json:"limit,omitempty"`
	ReadOnly    bool   `json:"read_only,omitempty"`
}

// Block is a labeled memory slot attached to an agent.
type Block struct {
	ID          string `json:"id,omitempty"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Value       string `json:"value"`
	Limit       int    `json:"limit,omitempty"`
	ReadOnly    bool   `json:"read_only,omitempty"`
}

// CreateAgentRequest is the payload for Agents.Create.
type CreateAgentRequest struct {
	Name         string        `json:"name"`
	MemoryBlocks []CreateBlock `json:"memory_blocks,omitempty"`
	Model        string        `json:"model,omitempty"`
	Embedding    string        `json:"embedding,omitempty"`
	Tools        []string      `json:"tools,omitempty"`
	Description  string        `json:"description,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
}

// Agent is the server-side agent state. The server owns everything behind
// the ID; the client only ever holds this handle.
type Agent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Model       string    `json:"model,omitempty"`
	Embedding   string    `json:"embedding,omitempty"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// MessageCreate is a single user-visible message sent to an agent.
type MessageCreate struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message roles accepted by the server.
const (
	RoleUser   = "user"
	RoleSystem = "system"
)

// Message types returned by the server. A single request typically yields a
// batch: reasoning, tool calls/returns, and finally the assistant message.
const (
	MessageTypeAssistant  = "assistant_message"
	MessageTypeReasoning  = "reasoning_message"
	MessageTypeToolCall   = "tool_call_message"
	MessageTypeToolReturn = "tool_return_message"
)

// Message is one entry in the server's response batch.
type Message struct {
	ID          string    `json:"id,omitempty"`
	MessageType string    `json:"message_type"`
	Content     string    `json:"content,omitempty"`
	Reasoning   string    `json:"reasoning,omitempty"`
	Name        string    `json:"name,omitempty"`
	Date        time.Time `json:"date,omitempty"`
}

// UsageStatistics is the server-reported token accounting for one request.
type UsageStatistics struct {
	CompletionTokens int64 `json:"completion_tokens"`
	PromptTokens     int64 `json:"prompt_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
	StepCount        int64 `json:"step_count"`
}

// MessagesResponse is the result of Messages.Create.
type MessagesResponse struct {
	Messages []Message       `json:"messages"`
	Usage    UsageStatistics `json:"usage"`
}

// LastAssistantText returns the content of the last assistant message in the
// batch. If the batch holds no assistant message it falls back to the content
// of the last message, and ok reports false.
func (r *MessagesResponse) LastAssistantText() (text string, ok bool) {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].MessageType == MessageTypeAssistant {
			return r.Messages[i].Content, true
		}
	}
	if n := len(r.Messages); n > 0 {
		return r.Messages[n-1].Content, false
	}
	return "", false
}

// ModifyBlockRequest is the payload for Blocks.Modify. The value replaces the
// block wholesale; there is no merge.
type ModifyBlockRequest struct {
	Value    string `json:"value"`
	ReadOnly bool   `json:"read_only"`
}

// CreateToolRequest registers (or updates) a custom tool on the server.
type CreateToolRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	SourceCode  string         `json:"source_code,omitempty"`
	JSONSchema  map[string]any `json:"json_schema,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

// Tool is a server-registered tool.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateSourceRequest creates a document source for archival memory.
type CreateSourceRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	EmbeddingModel string `json:"embedding,omitempty"`
}

// Source is a server-side document source that can be attached to agents.
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UploadJob tracks a file upload into a source.
type UploadJob struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}
