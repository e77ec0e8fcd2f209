// Package prompt builds the chat request sent for one invocation.
package prompt

import (
	"strings"

	"github.com/gptpipe/gptpipe/internal/provider"
)

const (
	dataOpen  = "DATA: "
	dataClose = "\nEND DATA\n\n"
)

// DefaultSystemPrompt is appended after the wrapped input.
const DefaultSystemPrompt = "Consider the user's input on the given data. Respond directly to the question, " +
	"do not provide any other information. Respond in only one sentence if possible. " +
	"Hint: the data might often be the output of running a command-line program with the --help argument. " +
	"In this case, do not mention the name of the program."

// JoinArgs turns command-line words into the instruction text.
func JoinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// Build returns a system turn carrying the wrapped input and systemPrompt,
// followed by a user turn carrying instruction verbatim.
func Build(input, instruction, model, systemPrompt string) provider.ChatRequest {
	return provider.ChatRequest{
		Model: model,
		Messages: []provider.Message{
			{Role: provider.RoleSystem, Content: dataOpen + input + dataClose + systemPrompt},
			{Role: provider.RoleUser, Content: instruction},
		},
	}
}
