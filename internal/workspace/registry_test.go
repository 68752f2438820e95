package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OpenLookupDiscard(t *testing.T) {
	reg := NewRegistry(time.Hour)

	ws := reg.Open("a")
	require.NotNil(t, ws)
	assert.Same(t, ws, reg.Open("a"))

	got, ok := reg.Lookup("a")
	require.True(t, ok)
	assert.Same(t, ws, got)

	_, ok = reg.Lookup("b")
	assert.False(t, ok)

	reg.Discard("a")
	_, ok = reg.Lookup("a")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	reg := NewRegistry(time.Hour)
	reg.Open("a").AppendMessage("user", "hi")

	assert.Len(t, reg.Open("a").Transcript(), 1)
	assert.Empty(t, reg.Open("b").Transcript())
}

func TestRegistry_EvictsIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	reg := NewRegistry(time.Hour)
	reg.now = func() time.Time { return now }

	reg.Open("old")
	now = now.Add(30 * time.Minute)
	reg.Open("young")

	now = now.Add(45 * time.Minute)
	_, ok := reg.Lookup("old")
	assert.False(t, ok, "idle for 75m")

	_, ok = reg.Lookup("young")
	assert.True(t, ok, "idle for 45m")
}

func TestRegistry_ZeroTTLNeverEvicts(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	reg := NewRegistry(0)
	reg.now = func() time.Time { return now }

	reg.Open("a")
	now = now.Add(1000 * time.Hour)
	_, ok := reg.Lookup("a")
	assert.True(t, ok)
}
