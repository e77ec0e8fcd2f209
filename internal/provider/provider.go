package provider

import (
	"context"
	"encoding/json"
	"fmt"
)

// Role tags a chat turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UnmarshalJSON rejects roles the endpoint is not expected to send.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch Role(s) {
	case RoleSystem, RoleUser, RoleAssistant:
		*r = Role(s)
		return nil
	}
	return fmt.Errorf("unknown role %q", s)
}

// Message represents a chat message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest mirrors the OpenAI chat completion request.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Usage is the token accounting reported by the endpoint.
type Usage struct {
	PromptTokens     uint64 `json:"prompt_tokens"`
	CompletionTokens uint64 `json:"completion_tokens"`
	TotalTokens      uint64 `json:"total_tokens"`
}

type Choice struct {
	Message Message `json:"message"`
}

// ChatResponse is the subset of the chat completion response we consume.
type ChatResponse struct {
	Usage   Usage    `json:"usage"`
	Choices []Choice `json:"choices"`
}

// RawResponse is a completed HTTP exchange before decoding.
type RawResponse struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Provider sends a chat request and returns the undecoded reply.
type Provider interface {
	Send(ctx context.Context, req *ChatRequest, apiKey string) (*RawResponse, error)
}
