// Package random provides the randomness sources used to resolve battles.
//
// A Source yields uniform floats in [0,1). Production deployments either
// call the random.org decimal-fractions API (Client) or use a locally
// seeded generator (Seeded); tests use a Fixed sequence. A failing source
// fails the battle - there is no fallback value, since substituting one
// would bias outcomes.
package random

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// ErrUnavailable indicates the randomness source failed or timed out.
var ErrUnavailable = errors.New("randomness source unavailable")

// Source yields uniform random floats in [0,1).
// Implemented by Client (random.org), Seeded (local) and Fixed (tests).
type Source interface {
	Float(ctx context.Context) (float64, error)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seeded is a local pseudo-random source.
//
// Thread-safety: Seeded is safe for concurrent use via internal mutex.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a local source seeded from crypto/rand.
func NewSeeded() (*Seeded, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededWith(seed), nil
}

// NewSeededWith creates a local source with an explicit seed.
// Given the same seed, the sequence of floats is deterministic.
func NewSeededWith(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Float returns the next pseudo-random value in [0,1).
func (s *Seeded) Float(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64(), nil
}

// Fixed returns predetermined values for testing.
//
// This enables deterministic battle resolution in tests. Panics when all
// values have been consumed - a fail-fast signal that a test drew more
// random numbers than it planned for.
//
// Thread-safety: Fixed is safe for concurrent use via internal mutex.
type Fixed struct {
	mu     sync.Mutex
	values []float64
	idx    int
}

// NewFixed creates a source that returns values in order.
//
// Example:
//
//	src := NewFixed(0.1, 0.3)
//	src.Float(ctx) // 0.1
//	src.Float(ctx) // 0.3
//	src.Float(ctx) // panic: all values exhausted
func NewFixed(values ...float64) *Fixed {
	return &Fixed{values: values}
}

// Float returns the next predetermined value.
func (f *Fixed) Float(ctx context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.idx >= len(f.values) {
		panic("random.Fixed: all values exhausted")
	}
	v := f.values[f.idx]
	f.idx++
	return v, nil
}

// Failing always returns ErrUnavailable. Used to exercise the
// source-failure path in tests.
type Failing struct{}

// Float implements Source.
func (Failing) Float(ctx context.Context) (float64, error) {
	return 0, ErrUnavailable
}
