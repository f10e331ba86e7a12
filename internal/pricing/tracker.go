package pricing

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Usage holds token counts accumulated across calls.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
	StepCount        int64
}

// Tracker accumulates usage and cost across calls. Safe for concurrent use.
type Tracker struct {
	pricing map[string]ModelPricing

	mu         sync.Mutex
	totalCost  decimal.Decimal
	totalUsage Usage
}

// NewTracker creates a tracker backed by the given pricing table.
func NewTracker(pricing map[string]ModelPricing) *Tracker {
	return &Tracker{
		pricing:   pricing,
		totalCost: decimal.Zero,
	}
}

// Record adds one call's usage and updates the cumulative cost. Unknown
// models still have their tokens counted, just with no cost attached.
func (t *Tracker) Record(model string, usage Usage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalUsage.PromptTokens += usage.PromptTokens
	t.totalUsage.CompletionTokens += usage.CompletionTokens
	t.totalUsage.TotalTokens += usage.TotalTokens
	t.totalUsage.StepCount += usage.StepCount

	p, ok := t.pricing[model]
	if !ok {
		return
	}
	t.totalCost = t.totalCost.Add(p.Cost(usage.PromptTokens, usage.CompletionTokens))
}

// TotalCost returns the cumulative cost across all recorded calls.
func (t *Tracker) TotalCost() decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalCost
}

// TotalUsage returns the cumulative token usage across all recorded calls.
func (t *Tracker) TotalUsage() Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalUsage
}
