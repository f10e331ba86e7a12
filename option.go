package scribe

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scribekit/scribe/internal/config"
	"github.com/scribekit/scribe/internal/pricing"
	"github.com/scribekit/scribe/letta"
	"github.com/scribekit/scribe/transcript"
)

// Option configures an Assistant via the functional options pattern.
type Option func(*assistantOptions)

// assistantOptions holds all configurable fields set via Option functions.
type assistantOptions struct {
	baseURL        string
	token          string
	client         *letta.Client
	clientOpts     []letta.Option
	model          string
	embedding      string
	tools          []string
	style          string
	settingSources []string
	store          transcript.Store
	pricing        map[string]pricing.ModelPricing

	// deferred construction error, surfaced by CreateAgent
	presetErr error
}

// applyDefaults fills in zero-value fields. Model and embedding defaults
// follow the connection mode: token means hosted service, otherwise a
// self-hosted server.
func (o *assistantOptions) applyDefaults() {
	if o.model == "" {
		if o.token != "" {
			o.model = DefaultCloudModel
		} else {
			o.model = DefaultLocalModel
		}
	}
	if o.embedding == "" {
		if o.token != "" {
			o.embedding = DefaultCloudEmbedding
		} else {
			o.embedding = DefaultLocalEmbedding
		}
	}
	if o.tools == nil {
		o.tools = defaultTools
	}
	if o.style == "" {
		o.style = DefaultStyle
	}
	if o.pricing == nil {
		o.pricing = pricing.DefaultPricing
	}
}

// applySettings merges loaded settings into unresolved fields. Explicit
// options always win over settings files and the environment.
func (o *assistantOptions) applySettings(s *config.Settings) {
	if o.baseURL == "" && s.BaseURL != "" {
		o.baseURL = s.BaseURL
	}
	if o.token == "" && s.Token != "" {
		o.token = s.Token
	}
	if o.model == "" && s.Model != "" {
		o.model = s.Model
	}
	if o.embedding == "" && s.Embedding != "" {
		o.embedding = s.Embedding
	}
	if o.tools == nil && len(s.Tools) > 0 {
		o.tools = s.Tools
	}
	if o.style == "" && s.Style != "" {
		o.style = s.Style
	}
}

// resolveOptions applies all option functions, folds in settings, and fills
// defaults.
func resolveOptions(opts []Option) assistantOptions {
	var o assistantOptions
	for _, fn := range opts {
		fn(&o)
	}
	if len(o.settingSources) > 0 {
		if settings, err := config.LoadSettings(o.settingSources...); err == nil {
			o.applySettings(settings)
		}
	}
	o.applyDefaults()
	return o
}

// --- Connection ---

// WithBaseURL points the assistant at a self-hosted agent server.
func WithBaseURL(url string) Option {
	return func(o *assistantOptions) { o.baseURL = url }
}

// WithToken sets the API token for the hosted service.
func WithToken(token string) Option {
	return func(o *assistantOptions) { o.token = token }
}

// WithClient injects a preconfigured letta client. Connection options
// (WithBaseURL, WithToken, WithClientOptions) are ignored when set.
func WithClient(c *letta.Client) Option {
	return func(o *assistantOptions) { o.client = c }
}

// WithClientOptions forwards extra options to the underlying letta client.
func WithClientOptions(opts ...letta.Option) Option {
	return func(o *assistantOptions) { o.clientOpts = append(o.clientOpts, opts...) }
}

// --- Agent configuration ---

// WithModel sets the model handle the server routes agent turns through.
func WithModel(model string) Option {
	return func(o *assistantOptions) { o.model = model }
}

// WithEmbedding sets the embedding handle used for the agent's archival memory.
func WithEmbedding(embedding string) Option {
	return func(o *assistantOptions) { o.embedding = embedding }
}

// WithTools selects the server-side tools enabled on created agents.
func WithTools(names ...string) Option {
	return func(o *assistantOptions) { o.tools = names }
}

// WithStyle sets the writing style baked into the persona block.
func WithStyle(style string) Option {
	return func(o *assistantOptions) { o.style = style }
}

// WithStylePreset selects a built-in style by name (academic, business,
// journalism, casual). An unknown name is surfaced as ErrUnknownStylePreset
// by CreateAgent.
func WithStylePreset(name string) Option {
	return func(o *assistantOptions) {
		style, ok := config.GetStylePreset(name)
		if !ok {
			o.presetErr = fmt.Errorf("%w: %q", ErrUnknownStylePreset, name)
			return
		}
		o.style = style
	}
}

// --- Settings ---

// WithSettingSources loads base URL, token, model, and embedding from the
// given JSON settings files (plus LETTA_*/SCRIBE_* environment variables).
// Explicit options take precedence.
func WithSettingSources(paths ...string) Option {
	return func(o *assistantOptions) { o.settingSources = append(o.settingSources, paths...) }
}

// --- Recording ---

// WithTranscriptStore persists the session transcript on Close.
func WithTranscriptStore(store transcript.Store) Option {
	return func(o *assistantOptions) { o.store = store }
}

// WithPricing overrides the per-model pricing table used for cost tracking.
// Prices are USD per million tokens.
func WithPricing(table map[string]PricePerMTok) Option {
	return func(o *assistantOptions) {
		converted := make(map[string]pricing.ModelPricing, len(table))
		for model, p := range table {
			converted[model] = pricing.ModelPricing{
				PromptPerMTok:     p.Prompt,
				CompletionPerMTok: p.Completion,
			}
		}
		o.pricing = converted
	}
}

// PricePerMTok is a per-model price pair in USD per million tokens.
type PricePerMTok struct {
	Prompt     decimal.Decimal
	Completion decimal.Decimal
}
