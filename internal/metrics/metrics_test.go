package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gptpipe/gptpipe/internal/provider"
)

func TestUsageRecord(t *testing.T) {
	var u Usage
	u.Record(100, provider.Usage{PromptTokens: 60, CompletionTokens: 10, TotalTokens: 70})
	u.Record(20, provider.Usage{PromptTokens: 30, CompletionTokens: 5, TotalTokens: 35})

	assert.Equal(t, provider.Usage{PromptTokens: 90, CompletionTokens: 15, TotalTokens: 105}, u.Totals())
	assert.Equal(t, int64(30), u.Overestimate())
}

func TestUsageUnderestimate(t *testing.T) {
	var u Usage
	u.Record(2, provider.Usage{PromptTokens: 40})
	assert.Equal(t, int64(-38), u.Overestimate())
}
