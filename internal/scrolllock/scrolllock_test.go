package scrolllock

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNestedAcquireKeepsLock(t *testing.T) {
	t.Parallel()

	m := New()
	var edges []bool
	m.OnChange(func(locked bool) { edges = append(edges, locked) })

	first := m.Acquire()
	second := m.Acquire()
	require.Equal(t, 2, m.Count())

	second()
	require.True(t, m.Locked())
	require.Equal(t, 1, m.Count())

	first()
	require.False(t, m.Locked())
	require.Equal(t, []bool{true, false}, edges)
}

func TestDoubleReleaseIsIgnored(t *testing.T) {
	t.Parallel()

	m := New()
	outer := m.Acquire()
	inner := m.Acquire()

	inner()
	inner()
	require.True(t, m.Locked())
	require.Equal(t, 1, m.Count())

	outer()
	outer()
	require.Zero(t, m.Count())
}

func TestCountNeverNegative(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	m := New()
	var tokens []Release
	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			tokens = append(tokens, m.Acquire())
		} else if len(tokens) > 0 {
			tokens[rng.Intn(len(tokens))]()
		}
		require.GreaterOrEqual(t, m.Count(), 0)
		require.Equal(t, m.Count() > 0, m.Locked())
	}
	for _, release := range tokens {
		release()
	}
	require.Zero(t, m.Count())
	require.False(t, m.Locked())
}
