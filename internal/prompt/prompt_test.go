package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gptpipe/gptpipe/internal/provider"
)

func TestBuild(t *testing.T) {
	input := "Usage: tar [OPTION...] [FILE]...\n  -x, --extract\n"
	req := Build(input, "how do I extract", "small", "be brief")

	assert.Equal(t, "small", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, provider.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, provider.RoleUser, req.Messages[1].Role)
	assert.Equal(t, "how do I extract", req.Messages[1].Content)

	sys := req.Messages[0].Content
	assert.Equal(t, "DATA: "+input+"\nEND DATA\n\nbe brief", sys)
	open := strings.Index(sys, "DATA:")
	body := strings.Index(sys, input)
	end := strings.LastIndex(sys, "END DATA")
	assert.True(t, open < body && body+len(input) <= end)
}

func TestBuildEmpty(t *testing.T) {
	req := Build("", "", "m", DefaultSystemPrompt)
	require.Len(t, req.Messages, 2)
	assert.True(t, strings.HasPrefix(req.Messages[0].Content, "DATA: \nEND DATA"))
	assert.True(t, strings.HasSuffix(req.Messages[0].Content, DefaultSystemPrompt))
	assert.Empty(t, req.Messages[1].Content)
}

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "", JoinArgs(nil))
	assert.Equal(t, "what does -x do", JoinArgs([]string{"what", "does", "-x", "do"}))
	assert.Equal(t, "trim me", JoinArgs([]string{" ", "trim", "me", ""}))
}
