package metrics

import (
	"sync"

	"github.com/gptpipe/gptpipe/internal/provider"
)

// Usage accumulates token accounting reported by the endpoint and compares
// it with the local estimate.
type Usage struct {
	mu         sync.Mutex
	estimated  uint64
	prompt     uint64
	completion uint64
	total      uint64
}

// Record adds one response's usage together with the estimate made for it.
func (u *Usage) Record(estimate int, reported provider.Usage) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if estimate > 0 {
		u.estimated += uint64(estimate)
	}
	u.prompt += reported.PromptTokens
	u.completion += reported.CompletionTokens
	u.total += reported.TotalTokens
}

func (u *Usage) Totals() provider.Usage {
	u.mu.Lock()
	defer u.mu.Unlock()
	return provider.Usage{PromptTokens: u.prompt, CompletionTokens: u.completion, TotalTokens: u.total}
}

// Overestimate is the estimate minus the reported prompt tokens. Negative
// means the estimate was too low.
func (u *Usage) Overestimate() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return int64(u.estimated) - int64(u.prompt)
}
