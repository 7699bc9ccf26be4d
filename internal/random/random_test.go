package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64(), "Streams with equal seeds should match")
	}
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	assert.NoError(t, err)
}

func TestBernoulli_Extremes(t *testing.T) {
	rng := New(1)

	for i := 0; i < 50; i++ {
		assert.True(t, Bernoulli(1, rng), "p=1 should always succeed")
		assert.False(t, Bernoulli(0, rng), "p=0 should never succeed")
	}
}

func TestBernoulli_PanicsOutOfRange(t *testing.T) {
	rng := New(1)

	assert.Panics(t, func() { Bernoulli(-0.1, rng) })
	assert.Panics(t, func() { Bernoulli(1.1, rng) })
}

func TestBeta_PanicsOutOfRange(t *testing.T) {
	rng := New(1)

	assert.Panics(t, func() { Beta(0, 5, rng) })
	assert.Panics(t, func() { Beta(1, 5, rng) })
	assert.Panics(t, func() { Beta(0.5, 0, rng) })
}

func TestBetaRange_StaysInBounds(t *testing.T) {
	rng := New(3)

	for i := 0; i < 1000; i++ {
		v := BetaRange(0.5, 5, 30, 80, rng)
		require.GreaterOrEqual(t, v, 30.0)
		require.LessOrEqual(t, v, 80.0)
	}
}

func TestBeta_MeanTracksParameter(t *testing.T) {
	rng := New(11)

	const n = 5000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Beta(0.8, 5, rng)
	}

	assert.InDelta(t, 0.8, sum/n, 0.03, "Sample mean should sit near the requested mean")
}

func TestDiffProbability(t *testing.T) {
	tests := []struct {
		diff float64
		want float64
	}{
		{diff: -9, want: 0},
		{diff: 0, want: 0.5},
		{diff: 9, want: 1},
		{diff: -20, want: 0},
		{diff: 20, want: 1},
		{diff: 3, want: 12.0 / 18.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, DiffProbability(tt.diff), 1e-9, "diff=%v", tt.diff)
	}
}

func TestClampMean(t *testing.T) {
	assert.Equal(t, 0.01, ClampMean(0))
	assert.Equal(t, 0.99, ClampMean(1.5))
	assert.Equal(t, 0.4, ClampMean(0.4))
}

func TestPick_StaysInRange(t *testing.T) {
	rng := New(5)

	for i := 0; i < 200; i++ {
		idx := Pick(4, rng)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 4)
	}
}
