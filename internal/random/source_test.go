package random

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeded_DeterministicPerSeed(t *testing.T) {
	ctx := context.Background()

	a := NewSeededWith(42)
	b := NewSeededWith(42)

	for i := 0; i < 10; i++ {
		va, err := a.Float(ctx)
		require.NoError(t, err)
		vb, err := b.Float(ctx)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}

func TestSeeded_RangeAndVariation(t *testing.T) {
	ctx := context.Background()
	src, err := NewSeeded()
	require.NoError(t, err)

	seen := map[float64]bool{}
	for i := 0; i < 100; i++ {
		v, err := src.Float(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		seen[v] = true
	}
	// A uniform source repeating itself 100 times would be broken
	assert.Greater(t, len(seen), 1)
}

func TestSeeded_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewSeededWith(1)
	_, err := src.Float(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFixed_ReturnsValuesInOrder(t *testing.T) {
	ctx := context.Background()
	src := NewFixed(0.1, 0.3, 0.7)

	for _, want := range []float64{0.1, 0.3, 0.7} {
		got, err := src.Float(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFixed_PanicsWhenExhausted(t *testing.T) {
	ctx := context.Background()
	src := NewFixed(0.5)

	_, err := src.Float(ctx)
	require.NoError(t, err)

	assert.Panics(t, func() {
		src.Float(ctx) //nolint:errcheck
	})
}

func TestFailing_AlwaysUnavailable(t *testing.T) {
	_, err := Failing{}.Float(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewSeed_Varies(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
