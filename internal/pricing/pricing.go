// Package pricing accounts for server-reported token usage and its cost.
//
// The agent server does the model routing; all the client sees is the usage
// statistics attached to each messages response. This package turns those
// into a running cost estimate per configured model handle.
package pricing

import "github.com/shopspring/decimal"

// ModelPricing holds per-model token prices in USD per million tokens.
type ModelPricing struct {
	PromptPerMTok     decimal.Decimal
	CompletionPerMTok decimal.Decimal
}

var million = decimal.NewFromInt(1_000_000)

// Cost calculates the cost of one call given prompt and completion tokens.
func (p ModelPricing) Cost(promptTokens, completionTokens int64) decimal.Decimal {
	cost := decimal.NewFromInt(promptTokens).Mul(p.PromptPerMTok).Div(million)
	return cost.Add(decimal.NewFromInt(completionTokens).Mul(p.CompletionPerMTok).Div(million))
}

// DefaultPricing contains built-in pricing (USD per million tokens) for the
// model handles the examples route through. Keys use the server's
// provider/model handle format. Override via the WithPricing option.
var DefaultPricing = map[string]ModelPricing{
	"openai/gpt-4o-mini": {
		PromptPerMTok:     decimal.NewFromFloat(0.15),
		CompletionPerMTok: decimal.NewFromFloat(0.6),
	},
	"openai/gpt-4o": {
		PromptPerMTok:     decimal.NewFromFloat(2.5),
		CompletionPerMTok: decimal.NewFromFloat(10),
	},
	"deepseek/deepseek-chat": {
		PromptPerMTok:     decimal.NewFromFloat(0.27),
		CompletionPerMTok: decimal.NewFromFloat(1.1),
	},
}
