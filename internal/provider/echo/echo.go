package echo

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gptpipe/gptpipe/internal/provider"
)

// Provider answers in-process by echoing the last user message.
type Provider struct{}

func New() *Provider { return &Provider{} }

func (p *Provider) Send(ctx context.Context, req *provider.ChatRequest, apiKey string) (*provider.RawResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp := provider.ChatResponse{Choices: []provider.Choice{}}
	if len(req.Messages) > 0 {
		last := req.Messages[len(req.Messages)-1]
		prompt := 0
		for _, m := range req.Messages {
			prompt += len(m.Content)
		}
		resp.Choices = append(resp.Choices, provider.Choice{
			Message: provider.Message{Role: provider.RoleAssistant, Content: "Echo: " + last.Content},
		})
		resp.Usage = provider.Usage{
			PromptTokens:     uint64(prompt),
			CompletionTokens: uint64(len(last.Content)),
			TotalTokens:      uint64(prompt + len(last.Content)),
		}
	}
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	return &provider.RawResponse{StatusCode: http.StatusOK, Status: http.StatusText(http.StatusOK), Body: body}, nil
}
