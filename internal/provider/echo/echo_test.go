package echo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gptpipe/gptpipe/internal/provider"
)

func TestEchoLastMessage(t *testing.T) {
	req := &provider.ChatRequest{Model: "m", Messages: []provider.Message{
		{Role: provider.RoleSystem, Content: "DATA: x\nEND DATA\n\n"},
		{Role: provider.RoleUser, Content: "what is x"},
	}}

	raw, err := New().Send(context.Background(), req, "key")
	require.NoError(t, err)
	assert.Equal(t, 200, raw.StatusCode)

	_, answer, err := provider.Extract(raw.Body)
	require.NoError(t, err)
	assert.Equal(t, "Echo: what is x", answer)
}

func TestEchoNoMessages(t *testing.T) {
	raw, err := New().Send(context.Background(), &provider.ChatRequest{}, "")
	require.NoError(t, err)

	_, _, err = provider.Extract(raw.Body)
	assert.ErrorIs(t, err, provider.ErrNoChoices)
}
