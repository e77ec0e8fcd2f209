package provider

import (
	"encoding/json"
	"errors"
	"strings"
)

// wire shapes with pointers so missing required fields can be told apart
// from zero values.
type wireResponse struct {
	Usage   *wireUsage    `json:"usage"`
	Choices *[]wireChoice `json:"choices"`
}

type wireUsage struct {
	PromptTokens     *uint64 `json:"prompt_tokens"`
	CompletionTokens *uint64 `json:"completion_tokens"`
	TotalTokens      *uint64 `json:"total_tokens"`
}

type wireChoice struct {
	Message *wireMessage `json:"message"`
}

type wireMessage struct {
	Role    *Role   `json:"role"`
	Content *string `json:"content"`
}

func (w *wireUsage) usage() (Usage, error) {
	switch {
	case w.PromptTokens == nil:
		return Usage{}, errors.New("usage missing field prompt_tokens")
	case w.CompletionTokens == nil:
		return Usage{}, errors.New("usage missing field completion_tokens")
	case w.TotalTokens == nil:
		return Usage{}, errors.New("usage missing field total_tokens")
	}
	return Usage{
		PromptTokens:     *w.PromptTokens,
		CompletionTokens: *w.CompletionTokens,
		TotalTokens:      *w.TotalTokens,
	}, nil
}

// Decode parses a chat completion body. The usage block with all three
// counters, the choices array, and each choice's message role and content
// are required.
func Decode(body []byte) (*ChatResponse, error) {
	var w wireResponse
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if w.Usage == nil {
		return nil, &DecodeError{Err: errors.New("missing field usage")}
	}
	usage, err := w.Usage.usage()
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if w.Choices == nil {
		return nil, &DecodeError{Err: errors.New("missing field choices")}
	}
	resp := &ChatResponse{Usage: usage, Choices: make([]Choice, 0, len(*w.Choices))}
	for _, c := range *w.Choices {
		if c.Message == nil {
			return nil, &DecodeError{Err: errors.New("choice missing field message")}
		}
		if c.Message.Role == nil {
			return nil, &DecodeError{Err: errors.New("message missing field role")}
		}
		if c.Message.Content == nil {
			return nil, &DecodeError{Err: errors.New("message missing field content")}
		}
		resp.Choices = append(resp.Choices, Choice{Message: Message{
			Role:    *c.Message.Role,
			Content: *c.Message.Content,
		}})
	}
	return resp, nil
}

// Extract decodes body and returns the first choice's content, trimmed.
// An empty choices list is fatal.
func Extract(body []byte) (*ChatResponse, string, error) {
	resp, err := Decode(body)
	if err != nil {
		return nil, "", err
	}
	if len(resp.Choices) == 0 {
		return resp, "", &DecodeError{Err: ErrNoChoices}
	}
	return resp, strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
