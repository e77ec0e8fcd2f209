package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckInput(t *testing.T) {
	assert.NoError(t, CheckInput(nil))
	assert.NoError(t, CheckInput([]byte("usage: grep [OPTION]... PATTERNS [FILE]...\n")))
	assert.NoError(t, CheckInput([]byte("naïve ✓")))
	assert.ErrorIs(t, CheckInput([]byte{0xff, 0xfe, 'a'}), ErrInvalidUTF8)
	assert.ErrorIs(t, CheckInput([]byte("ok\xc3")), ErrInvalidUTF8)
}
