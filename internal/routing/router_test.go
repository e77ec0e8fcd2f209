package routing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBoundary(t *testing.T) {
	assert.Equal(t, "S", Select(8000, 8000, "S", "L"))
	assert.Equal(t, "L", Select(8001, 8000, "S", "L"))
	assert.Equal(t, "S", Select(8, 8000, "S", "L"))
	assert.Equal(t, "S", Select(0, 0, "S", "L"))
}

func TestSelectMonotonic(t *testing.T) {
	const threshold = 100
	seenLarge := false
	for est := 0; est <= 300; est += 2 {
		got := Select(est, threshold, "S", "L")
		if seenLarge {
			require.Equal(t, "L", got, "estimate %d", est)
		}
		seenLarge = got == "L"
	}
	assert.True(t, seenLarge)
}

func TestRouterRoute(t *testing.T) {
	r, err := New(Tiers{Small: "small", Large: "large", Threshold: 8000})
	require.NoError(t, err)

	d := r.Route(8)
	assert.Equal(t, Decision{Model: "small", Estimate: 8}, d)

	d = r.Route(9000)
	assert.Equal(t, "large", d.Model)
	assert.True(t, d.Large)
}

func TestNewRejectsIncompleteTiers(t *testing.T) {
	_, err := New(Tiers{Small: "s", Threshold: 1})
	assert.Error(t, err)
	_, err = New(Tiers{Small: "s", Large: "l", Threshold: -1})
	assert.Error(t, err)
}

func TestLoadTiers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte("large_model: anthropic/claude-3-haiku\ntoken_threshold: 4000\n"), 0o600))

	got, err := LoadTiers(path, Tiers{Small: "s", Large: "l", Threshold: 8000})
	require.NoError(t, err)
	assert.Equal(t, Tiers{Small: "s", Large: "anthropic/claude-3-haiku", Threshold: 4000}, got)
}

func TestLoadTiersErrors(t *testing.T) {
	base := Tiers{Small: "s", Large: "l"}
	_, err := LoadTiers(filepath.Join(t.TempDir(), "missing.yaml"), base)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token_threshold: [1"), 0o600))
	got, err := LoadTiers(path, base)
	assert.Error(t, err)
	assert.Equal(t, base, got)
}
