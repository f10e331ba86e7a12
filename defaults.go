package scribe

// Model handles routed by the agent server. Which pair applies depends on how
// the client is configured: a token targets the hosted service, a base URL a
// self-hosted server.
const (
	// DefaultCloudModel is used when an API token is configured.
	DefaultCloudModel = "openai/gpt-4o-mini"

	// DefaultCloudEmbedding pairs with DefaultCloudModel.
	DefaultCloudEmbedding = "openai/text-embedding-3-small"

	// DefaultLocalModel is used against a self-hosted server.
	DefaultLocalModel = "deepseek/deepseek-chat"

	// DefaultLocalEmbedding pairs with DefaultLocalModel.
	DefaultLocalEmbedding = "ollama/nomic-embed-text:latest"
)

const (
	// DefaultAgentName prefixes generated agent names.
	DefaultAgentName = "writing-assistant"

	// DefaultStyle seeds the persona block when no style is configured.
	DefaultStyle = "Professional, clear, and logical, suited to academic and business writing."

	// DefaultWordCount is the target length for ExpandContent.
	DefaultWordCount = 500
)

// defaultTools are the server-side tools enabled on new agents.
var defaultTools = []string{"web_search"}

// Memory block labels the assistant manages on its agent.
const (
	BlockPersona       = "persona"
	BlockWritingSkills = "writing_skills"
	BlockProject       = "current_project"
)
